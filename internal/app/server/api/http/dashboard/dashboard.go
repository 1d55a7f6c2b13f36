package dashboard

import (
	"context"
	"net/http"

	"safewatch/internal/app/server/api/http/apierr"
	"safewatch/internal/domain/stats"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Dashboard(ctx context.Context, opts stats.FeedOptions) (stats.Dashboard, error)
}

type input struct {
	Chronological bool `query:"chronological" doc:"Упорядочить ленту активности по времени"`
}

type output struct {
	Body stats.Dashboard
}

type Handler struct {
	service    Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard",
		Summary:     "Сводка смены",
		Description: "Итоги, счетчики за сегодня, уровень инцидентов, часы смены и лента последней активности.",
		Tags:        []string{"dashboard"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) get(ctx context.Context, in *input) (*output, error) {
	d, err := h.service.Dashboard(ctx, stats.FeedOptions{Chronological: in.Chronological})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: d}, nil
}
