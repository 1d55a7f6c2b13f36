package app

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"safewatch/internal/config"
	"safewatch/internal/domain/incident"
	"safewatch/internal/domain/profile"
	"safewatch/internal/domain/round"
	"safewatch/internal/domain/stats"
	"safewatch/internal/domain/validation"
	"safewatch/internal/infrastructure/storage"
	"safewatch/internal/infrastructure/storage/memory"
	"safewatch/internal/infrastructure/storage/sqlite"
	"safewatch/internal/notify"
)

var now = time.Date(2026, time.October, 17, 23, 0, 0, 0, time.Local)

type recorder struct {
	alerts []notify.Alert
	err    error
}

func (r *recorder) Notify(_ context.Context, a notify.Alert) error {
	r.alerts = append(r.alerts, a)
	return r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T) (*App, *recorder) {
	t.Helper()
	rec := &recorder{}
	cfg := &config.Config{Env: config.EnvLocal, Storage: config.Storage{Driver: storage.DriverMemory}}
	a := NewWith(cfg, discardLogger(), memory.New(), rec, func() time.Time { return now })
	t.Cleanup(func() { _ = a.Close() })
	return a, rec
}

func TestApp_LoginLogout(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	_, err := a.RequireSession(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = a.Login(ctx, profile.LoginRequest{Username: "jp", Password: "1234"})
	assert.ErrorIs(t, err, validation.ErrValidation)

	name, err := a.Login(ctx, profile.LoginRequest{Username: "  jperez ", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "jperez", name)

	got, err := a.RequireSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jperez", got)

	_, err = a.CreateRound(ctx, round.CreateRequest{Area: "Lobby", Notes: "Todo en orden"})
	require.NoError(t, err)

	require.NoError(t, a.Logout(ctx))
	_, err = a.RequireSession(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	rounds, err := a.Rounds(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, rounds)
}

func TestApp_CreateRound(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	r, err := a.CreateRound(ctx, round.CreateRequest{
		Area:     "Estacionamiento",
		Notes:    "Portón cerrado",
		Location: &round.Coordinates{Lat: -33.4489, Lng: -70.6693},
	})
	require.NoError(t, err)
	assert.Equal(t, "17/10/2026, 23:00", r.Date)
	assert.Equal(t, "Lat: -33.448900, Lng: -70.669300", r.Location)

	_, err = a.CreateRound(ctx, round.CreateRequest{Area: "Lobby", Notes: "ok"})
	assert.ErrorIs(t, err, validation.ErrValidation)

	rounds, err := a.Rounds(ctx, true)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, r, rounds[0])
}

func TestApp_ReportIncident_Critical(t *testing.T) {
	ctx := context.Background()
	a, rec := newTestApp(t)
	_, err := a.Login(ctx, profile.LoginRequest{Username: "jperez", Password: "1234"})
	require.NoError(t, err)

	inc, err := a.ReportIncident(ctx, incident.ReportRequest{Type: "Robo", Description: "Robo de herramientas", Severity: "high"})
	require.NoError(t, err)
	assert.Equal(t, incident.SeverityHigh, inc.Severity)
	require.Len(t, rec.alerts, 1)
	assert.Equal(t, "INCIDENTE CRÍTICO", rec.alerts[0].Title)
	assert.Equal(t, "Robo: Robo de herramientas", rec.alerts[0].Detail)
	assert.Equal(t, "G-JPE1025", rec.alerts[0].GuardID)

	// Baja gravedad no notifica
	_, err = a.ReportIncident(ctx, incident.ReportRequest{Type: "Ruido", Description: "Ruido en el patio"})
	require.NoError(t, err)
	assert.Len(t, rec.alerts, 1)

	// Alertas de incidentes desactivadas
	off := false
	_, err = a.UpdateAlerts(ctx, profile.AlertsUpdate{Incidents: &off})
	require.NoError(t, err)
	_, err = a.ReportIncident(ctx, incident.ReportRequest{Type: "Intrusión", Description: "Puerta forzada", Severity: incident.SeverityHigh})
	require.NoError(t, err)
	assert.Len(t, rec.alerts, 1)

	// Ошибка уведомления не ломает сохранение
	on := true
	_, err = a.UpdateAlerts(ctx, profile.AlertsUpdate{Incidents: &on})
	require.NoError(t, err)
	rec.err = errors.New("telegram down")
	_, err = a.ReportIncident(ctx, incident.ReportRequest{Type: "Fuego", Description: "Humo en bodega", Severity: incident.SeverityHigh})
	require.NoError(t, err)

	incidents, err := a.Incidents(ctx, false)
	require.NoError(t, err)
	assert.Len(t, incidents, 4)
	assert.Equal(t, "Fuego", incidents[0].Type)
}

func TestApp_Dashboard(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	for _, area := range []string{"A", "B"} {
		_, err := a.CreateRound(ctx, round.CreateRequest{Area: area, Notes: "Sin novedad"})
		require.NoError(t, err)
	}
	_, err := a.ReportIncident(ctx, incident.ReportRequest{Type: "Ruido", Description: "Ruido en el patio", Severity: incident.SeverityMedium})
	require.NoError(t, err)

	d, err := a.Dashboard(ctx, stats.FeedOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, d.TotalRounds)
	assert.Equal(t, 2, d.RoundsToday)
	assert.Equal(t, 1, d.IncidentsToday)
	assert.Equal(t, stats.LevelWarning, d.IncidentLevel)
	assert.InDelta(t, 1.0, d.ShiftHours, 1e-9)
	require.Len(t, d.Activity, 3)
	assert.Equal(t, "Ronda en B", d.Activity[0].Description)
	assert.Equal(t, "Ahora mismo", d.Activity[0].Time)
	assert.Equal(t, stats.PriorityMedium, d.Activity[2].Priority)
}

func TestApp_Profile(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	p, err := a.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultFullName, p.Name)

	_, err = a.Login(ctx, profile.LoginRequest{Username: "jperez", Password: "1234"})
	require.NoError(t, err)
	p, err = a.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jperez", p.Name)
	assert.Equal(t, profile.DefaultZone, p.Zone)

	bad := "no-es-correo"
	_, err = a.EditProfile(ctx, profile.Update{Email: &bad})
	assert.ErrorIs(t, err, validation.ErrValidation)

	name, email := "Juan Pérez", "jp@example.com"
	p, err = a.EditProfile(ctx, profile.Update{Name: &name, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", p.Name)
	assert.Equal(t, profile.DefaultPhone, p.Phone)

	username, err := a.RequireSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", username)

	// Профиль и алерты живут в одном блобе и не затирают друг друга
	sys := true
	alerts, err := a.UpdateAlerts(ctx, profile.AlertsUpdate{System: &sys})
	require.NoError(t, err)
	assert.Equal(t, profile.AlertSettings{Rounds: true, Incidents: true, System: true}, alerts)

	p, err = a.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jp@example.com", p.Email)
}

func TestApp_ProfileAndAlerts_Concurrent(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)

	phone := "+56 9 8765 4321"
	sys := true
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := a.EditProfile(ctx, profile.Update{Phone: &phone})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := a.UpdateAlerts(ctx, profile.AlertsUpdate{System: &sys})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := a.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, phone, p.Phone)

	alerts, err := a.Alerts(ctx)
	require.NoError(t, err)
	assert.True(t, alerts.System)
}

func TestApp_Emergency(t *testing.T) {
	ctx := context.Background()
	a, rec := newTestApp(t)
	_, err := a.Login(ctx, profile.LoginRequest{Username: "jperez", Password: "1234"})
	require.NoError(t, err)

	alert, err := a.Emergency(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jperez", alert.Guard)
	assert.Equal(t, now, alert.RaisedAt)
	require.Len(t, rec.alerts, 1)
	assert.Empty(t, rec.alerts[0].Title)

	rec.err = errors.New("offline")
	_, err = a.Emergency(ctx)
	assert.ErrorContains(t, err, "offline")
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()
	log := discardLogger()

	kv, err := openStorage(ctx, &config.Config{Storage: config.Storage{Driver: storage.DriverMemory}}, log)
	require.NoError(t, err)
	assert.IsType(t, &memory.Storage{}, kv)

	path := filepath.Join(t.TempDir(), "data", "safewatch.db")
	kv, err = openStorage(ctx, &config.Config{Storage: config.Storage{Driver: storage.DriverSQLite, DataPath: path}}, log)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Storage{}, kv)
	require.NoError(t, kv.Close())

	_, err = openStorage(ctx, &config.Config{Storage: config.Storage{Driver: "etcd"}}, log)
	assert.ErrorIs(t, err, storage.ErrUnknownDriver)
}

func TestBuildNotifier(t *testing.T) {
	n := buildNotifier(&config.Config{}, discardLogger())
	multi, ok := n.(notify.Multi)
	require.True(t, ok)
	assert.Len(t, multi, 1)
}
