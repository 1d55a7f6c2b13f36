package cmd

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"safewatch/internal/app"
	"safewatch/internal/config"
	"safewatch/internal/infrastructure/storage"
	"safewatch/internal/infrastructure/storage/memory"
	"safewatch/internal/notify"
)

func TestNewHTTPServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := &config.Config{
		Env:     config.EnvLocal,
		Storage: config.Storage{Driver: storage.DriverMemory},
		Server:  config.Server{RunAddress: "localhost:0", RateLimitRPS: 100, RateLimitBurst: 100},
	}
	a := app.NewWith(c, logger, memory.New(), notify.Multi{notify.NewLogNotifier(logger)}, time.Now)
	t.Cleanup(func() { _ = a.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var srv *http.Server
	require.NotPanics(t, func() { srv = newHTTPServer(ctx, a, logger) })
	assert.Equal(t, "localhost:0", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Paths      map[string]map[string]json.RawMessage `json:"paths"`
		Components struct {
			Schemas map[string]json.RawMessage `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	routes := map[string][]string{
		"/api/v1/health":          {"get"},
		"/api/v1/session":         {"post", "delete"},
		"/api/v1/profile":         {"get"},
		"/api/v1/emergency":       {"post"},
		"/api/v1/rounds":          {"get", "post"},
		"/api/v1/rounds/today":    {"get"},
		"/api/v1/incidents":       {"get", "post"},
		"/api/v1/incidents/today": {"get"},
		"/api/v1/dashboard":       {"get"},
	}
	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, path)
		}
	}

	assert.Contains(t, doc.Components.Schemas, "CreateRoundRequest")
	assert.Contains(t, doc.Components.Schemas, "ReportIncidentRequest")
}
