// GET    /api/v1/health            # Состояние сервиса
// POST   /api/v1/session           # Начать смену
// DELETE /api/v1/session           # Завершить смену (очистка данных)
// GET    /api/v1/profile           # Профиль и алерты
// POST   /api/v1/emergency         # Тревога
// GET    /api/v1/rounds            # Обходы (?today=true)
// POST   /api/v1/rounds            # Новый обход
// GET    /api/v1/rounds/today      # Обходы за сегодня
// GET    /api/v1/incidents         # Инциденты (?today=true)
// POST   /api/v1/incidents         # Новый инцидент
// GET    /api/v1/incidents/today   # Инциденты за сегодня
// GET    /api/v1/dashboard         # Сводка смены

package api

import (
	"context"
	"time"

	"safewatch/internal/app"
	dashboardAPI "safewatch/internal/app/server/api/http/dashboard"
	healthAPI "safewatch/internal/app/server/api/http/health"
	incidentAPI "safewatch/internal/app/server/api/http/incident"
	"safewatch/internal/app/server/api/http/middleware"
	"safewatch/internal/app/server/api/http/middleware/logger"
	"safewatch/internal/app/server/api/http/middleware/ratelimit"
	roundAPI "safewatch/internal/app/server/api/http/round"
	sessionAPI "safewatch/internal/app/server/api/http/session"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

const visitorTTL = 3 * time.Minute

type Handlers struct {
	Health    *healthAPI.Handler
	Session   *sessionAPI.Handler
	Round     *roundAPI.Handler
	Incident  *incidentAPI.Handler
	Dashboard *dashboardAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register. Очистка
// лимитера работает, пока ctx не отменен.
func New(ctx context.Context, a *app.App, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	cfg := a.Config()
	limiter := ratelimit.New(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, visitorTTL, log)
	go limiter.Run(time.Minute, ctx.Done())
	mux.Use(limiter.Middleware)

	config := huma.DefaultConfig("SafeWatch API", "1.0.0")
	if cfg.IsProd() {
		// В prod без интерактивной документации, спецификация остается
		config.DocsPath = ""
	}
	API := humachi.New(mux, config)

	h := handlers(a, log)
	h.Health.SetupRoutes(API)
	h.Session.SetupRoutes(API)
	h.Round.SetupRoutes(API)
	h.Incident.SetupRoutes(API)
	h.Dashboard.SetupRoutes(API)

	return mux
}

func handlers(a *app.App, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(a.Config().Storage.Driver, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	sessionHandler := sessionAPI.NewHandler(a, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	roundHandler := roundAPI.NewHandler(a, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	incidentHandler := incidentAPI.NewHandler(a, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	dashboardHandler := dashboardAPI.NewHandler(a, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:    healthHandler,
		Session:   sessionHandler,
		Round:     roundHandler,
		Incident:  incidentHandler,
		Dashboard: dashboardHandler,
	}
}
