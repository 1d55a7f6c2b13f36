package incident

import (
	"context"

	"safewatch/internal/app/server/api/http/apierr"
	"safewatch/internal/domain/incident"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	ReportIncident(ctx context.Context, req incident.ReportRequest) (incident.Incident, error)
	Incidents(ctx context.Context, today bool) ([]incident.Incident, error)
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
	huma.Register(api, h.reportOp(), h.report)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	incidents, err := h.service.Incidents(ctx, input.Today)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: incidents}, nil
}

func (h *Handler) today(ctx context.Context, _ *struct{}) (*listOutput, error) {
	return h.list(ctx, &listInput{Today: true})
}

func (h *Handler) report(ctx context.Context, input *reportInput) (*reportOutput, error) {
	inc, err := h.service.ReportIncident(ctx, incident.ReportRequest{
		Type:        input.Body.Type,
		Description: input.Body.Description,
		Severity:    incident.Severity(input.Body.Severity),
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &reportOutput{Body: inc}, nil
}
