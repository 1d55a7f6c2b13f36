package round

import (
	"context"

	"safewatch/internal/app/server/api/http/apierr"
	"safewatch/internal/domain/round"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	CreateRound(ctx context.Context, req round.CreateRequest) (round.Round, error)
	Rounds(ctx context.Context, today bool) ([]round.Round, error)
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
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.todayOp(), h.today)
	huma.Register(api, h.createOp(), h.create)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	rounds, err := h.service.Rounds(ctx, input.Today)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: rounds}, nil
}

func (h *Handler) today(ctx context.Context, _ *struct{}) (*listOutput, error) {
	return h.list(ctx, &listInput{Today: true})
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	r, err := h.service.CreateRound(ctx, round.CreateRequest{
		Area:     input.Body.Area,
		Notes:    input.Body.Notes,
		Location: input.Body.Location,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &createOutput{Body: r}, nil
}
