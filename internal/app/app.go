// Package app wires configuration, storage, the record store and notifiers
// into the operations the CLI and the HTTP API expose.
package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"safewatch/internal/config"
	"safewatch/internal/domain/incident"
	"safewatch/internal/domain/profile"
	"safewatch/internal/domain/round"
	"safewatch/internal/domain/stats"
	"safewatch/internal/infrastructure/storage"
	"safewatch/internal/infrastructure/storage/memory"
	"safewatch/internal/infrastructure/storage/postgres"
	"safewatch/internal/infrastructure/storage/redis"
	"safewatch/internal/infrastructure/storage/sqlite"
	"safewatch/internal/notify"
	"safewatch/internal/store"
)

var ErrNotLoggedIn = errors.New("no hay sesión iniciada")

type App struct {
	config   *config.Config
	log      *slog.Logger
	kv       storage.KV
	store    *store.Store
	notifier notify.Notifier
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	kv, err := openStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return NewWith(cfg, log, kv, buildNotifier(cfg, log), nil), nil
}

// NewWith собирает приложение из готовых зависимостей; nil clock - time.Now
func NewWith(cfg *config.Config, log *slog.Logger, kv storage.KV, n notify.Notifier, clock store.Clock) *App {
	return &App{
		config:   cfg,
		log:      log,
		kv:       kv,
		store:    store.New(kv, log, clock),
		notifier: n,
	}
}

func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case storage.DriverMemory:
		return memory.New(), nil
	case storage.DriverSQLite:
		s, err := sqlite.New(cfg.Storage.DataPath)
		if err != nil {
			log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
			return memory.New(), nil
		}
		return s, nil
	case storage.DriverRedis:
		s, err := redis.New(ctx, redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
			Prefix:   cfg.Storage.RedisPrefix,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к Redis: %w", err)
		}
		return s, nil
	case storage.DriverPostgres:
		s, err := postgres.New(ctx, cfg.Storage, nil, log)
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к PostgreSQL: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnknownDriver, cfg.Storage.Driver)
	}
}

func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	notifiers := notify.Multi{notify.NewLogNotifier(log)}
	if cfg.Telegram.Enabled() {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Warn("Telegram недоступен, алерты только в лог", "error", err)
		} else {
			notifiers = append(notifiers, tg)
		}
	}
	return notifiers
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Close() error {
	return a.kv.Close()
}

// Login validates the form and records the username. The password is
// checked for shape only and never stored.
func (a *App) Login(ctx context.Context, req profile.LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if err := a.store.SetUsername(ctx, req.Username); err != nil {
		return "", err
	}
	a.log.Info("guard logged in", "username", req.Username)
	return req.Username, nil
}

// Logout wipes every record and the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.ClearAll(ctx); err != nil {
		return err
	}
	a.log.Info("guard logged out")
	return nil
}

func (a *App) Username(ctx context.Context) (string, bool, error) {
	return a.store.Username(ctx)
}

// RequireSession returns the username or ErrNotLoggedIn.
func (a *App) RequireSession(ctx context.Context) (string, error) {
	name, ok, err := a.store.Username(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotLoggedIn
	}
	return name, nil
}

func (a *App) CreateRound(ctx context.Context, req round.CreateRequest) (round.Round, error) {
	r, err := round.New(req, a.store.Now())
	if err != nil {
		return round.Round{}, err
	}
	if err := a.store.AppendRound(ctx, r); err != nil {
		a.log.Error("failed to save round", "error", err)
		return round.Round{}, err
	}
	a.log.Debug("round saved", "id", r.ID, "area", r.Area)
	return r, nil
}

// ReportIncident saves the incident and, for high severity with incident
// alerts enabled, notifies the security desk. A failed notification does not
// fail the report.
func (a *App) ReportIncident(ctx context.Context, req incident.ReportRequest) (incident.Incident, error) {
	inc, err := incident.New(req, a.store.Now())
	if err != nil {
		return incident.Incident{}, err
	}
	if err := a.store.AppendIncident(ctx, inc); err != nil {
		a.log.Error("failed to save incident", "error", err)
		return incident.Incident{}, err
	}
	a.log.Debug("incident saved", "id", inc.ID, "severity", inc.Severity)

	if inc.Severity == incident.SeverityHigh {
		a.notifyCritical(ctx, inc)
	}

	return inc, nil
}

func (a *App) notifyCritical(ctx context.Context, inc incident.Incident) {
	alerts, err := a.Alerts(ctx)
	if err != nil || !alerts.Incidents {
		return
	}
	alert, err := a.alert(ctx)
	if err != nil {
		return
	}
	alert.Title = "INCIDENTE CRÍTICO"
	alert.Detail = inc.Type + ": " + inc.Description
	if err := a.notifier.Notify(ctx, alert); err != nil {
		a.log.Warn("critical incident notification failed", "error", err)
	}
}

func (a *App) Rounds(ctx context.Context, today bool) ([]round.Round, error) {
	if today {
		return a.store.RoundsToday(ctx)
	}
	return a.store.Rounds(ctx)
}

func (a *App) Incidents(ctx context.Context, today bool) ([]incident.Incident, error) {
	if today {
		return a.store.IncidentsToday(ctx)
	}
	return a.store.Incidents(ctx)
}

func (a *App) Dashboard(ctx context.Context, opts stats.FeedOptions) (stats.Dashboard, error) {
	rounds, err := a.store.Rounds(ctx)
	if err != nil {
		return stats.Dashboard{}, err
	}
	incidents, err := a.store.Incidents(ctx)
	if err != nil {
		return stats.Dashboard{}, err
	}
	return stats.BuildDashboard(rounds, incidents, a.store.Now(), opts), nil
}

func (a *App) Profile(ctx context.Context) (profile.Profile, error) {
	username, _, err := a.store.Username(ctx)
	if err != nil {
		return profile.Profile{}, err
	}
	data, err := a.store.UserData(ctx)
	if err != nil {
		return profile.Profile{}, err
	}
	return profile.Resolve(username, data), nil
}

// EditProfile merges u into the stored profile. A new name also becomes the
// session username.
func (a *App) EditProfile(ctx context.Context, u profile.Update) (profile.Profile, error) {
	var updated profile.Profile
	_, err := a.store.UpdateUserData(ctx, func(username string, data *profile.UserData) error {
		merged, err := profile.Merge(profile.Resolve(username, *data), u)
		if err != nil {
			return err
		}
		updated = merged
		data.Profile = &merged
		return nil
	})
	if err != nil {
		return profile.Profile{}, err
	}
	if u.Name != nil && updated.Name != "" {
		if err := a.store.SetUsername(ctx, updated.Name); err != nil {
			return profile.Profile{}, err
		}
	}
	return updated, nil
}

func (a *App) Alerts(ctx context.Context) (profile.AlertSettings, error) {
	data, err := a.store.UserData(ctx)
	if err != nil {
		return profile.AlertSettings{}, err
	}
	return profile.ResolveAlerts(data), nil
}

func (a *App) UpdateAlerts(ctx context.Context, u profile.AlertsUpdate) (profile.AlertSettings, error) {
	data, err := a.store.UpdateUserData(ctx, func(_ string, data *profile.UserData) error {
		settings := profile.MergeAlerts(profile.ResolveAlerts(*data), u)
		data.Alerts = &settings
		return nil
	})
	if err != nil {
		return profile.AlertSettings{}, err
	}
	return *data.Alerts, nil
}

// Emergency sends an emergency alert on behalf of the current guard.
func (a *App) Emergency(ctx context.Context) (notify.Alert, error) {
	alert, err := a.alert(ctx)
	if err != nil {
		return notify.Alert{}, err
	}
	if err := a.notifier.Notify(ctx, alert); err != nil {
		return alert, fmt.Errorf("envío de alerta: %w", err)
	}
	return alert, nil
}

func (a *App) alert(ctx context.Context) (notify.Alert, error) {
	username, _, err := a.store.Username(ctx)
	if err != nil {
		return notify.Alert{}, err
	}
	p, err := a.Profile(ctx)
	if err != nil {
		return notify.Alert{}, err
	}
	return notify.Alert{
		Guard:    p.Name,
		GuardID:  profile.GuardID(username),
		Zone:     p.Zone,
		Phone:    p.Phone,
		RaisedAt: a.store.Now(),
	}, nil
}
