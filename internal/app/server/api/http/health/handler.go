package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	driver     string
	log        *slog.Logger
	middleware huma.Middlewares
	now        func() time.Time
}

func NewHandler(driver string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		driver:     driver,
		log:        log,
		middleware: middleware,
		now:        time.Now,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: h.driver,
			Time:    h.now(),
		},
	}, nil
}
