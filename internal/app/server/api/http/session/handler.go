package session

import (
	"context"

	"safewatch/internal/app/server/api/http/apierr"
	"safewatch/internal/domain/profile"
	"safewatch/internal/notify"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Login(ctx context.Context, req profile.LoginRequest) (string, error)
	Logout(ctx context.Context) error
	Username(ctx context.Context) (string, bool, error)
	Profile(ctx context.Context) (profile.Profile, error)
	Alerts(ctx context.Context) (profile.AlertSettings, error)
	Emergency(ctx context.Context) (notify.Alert, error)
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
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.profileOp(), h.profile)
	huma.Register(api, h.emergencyOp(), h.emergency)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	name, err := h.service.Login(ctx, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &loginOutput{
		Body: loginResponse{Username: name, GuardID: profile.GuardID(name)},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	if err := h.service.Logout(ctx); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &logoutOutput{}, nil
}

func (h *Handler) profile(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	username, _, err := h.service.Username(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	p, err := h.service.Profile(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	alerts, err := h.service.Alerts(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &profileOutput{
		Body: profileResponse{
			Profile:  p,
			GuardID:  profile.GuardID(username),
			Initials: profile.Initials(p.Name),
			Alerts:   alerts,
		},
	}, nil
}

func (h *Handler) emergency(ctx context.Context, _ *struct{}) (*emergencyOutput, error) {
	alert, err := h.service.Emergency(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &emergencyOutput{
		Body: emergencyResponse{
			Status:   "Alerta enviada",
			Guard:    alert.Guard,
			Zone:     alert.Zone,
			RaisedAt: alert.RaisedAt,
		},
	}, nil
}
