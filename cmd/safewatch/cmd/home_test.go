package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"safewatch/internal/domain/stats"
)

func TestRenderHome(t *testing.T) {
	color.NoColor = true
	d := stats.Dashboard{
		GeneratedAt:    time.Date(2026, time.October, 17, 23, 40, 0, 0, time.Local),
		TotalRounds:    4,
		TotalIncidents: 3,
		RoundsToday:    2,
		IncidentsToday: 1,
		IncidentLevel:  stats.LevelDanger,
		IncidentTrend:  stats.IncidentTrend(3),
		ShiftHours:     1.7,
		Activity: []stats.ActivityItem{
			{Kind: stats.KindRound, Description: "Ronda en Edificio A", Time: "Hace 5 min", Priority: stats.PriorityLow},
			{Kind: stats.KindIncident, Description: "Incidente: Robo", Time: "Hace 1 h", Priority: stats.PriorityHigh},
		},
	}

	var out bytes.Buffer
	renderHome(&out, "jperez", d)

	s := out.String()
	assert.Contains(t, s, "Hola, jperez")
	assert.Contains(t, s, "17/10/2026 23:40")
	assert.Contains(t, s, "Total incidentes: 3 ↑")
	assert.Contains(t, s, "Horas de turno:  1.7")
	assert.Contains(t, s, "[Ronda] Ronda en Edificio A · Hace 5 min (baja)")
	assert.Contains(t, s, "[Incidente] Incidente: Robo · Hace 1 h (alta)")
}

func TestRenderHome_Empty(t *testing.T) {
	var out bytes.Buffer
	renderHome(&out, "Guardia", stats.Dashboard{})
	assert.Contains(t, out.String(), "Sin actividad registrada")
}

func TestCommandsRegistered(t *testing.T) {
	for _, path := range [][]string{
		{"auth", "login"}, {"auth", "logout"},
		{"round", "create"}, {"round", "list"},
		{"incident", "report"}, {"incident", "list"},
		{"profile", "show"}, {"profile", "edit"}, {"profile", "alerts"},
		{"home"}, {"emergency"}, {"serve"},
	} {
		c, _, err := rootCmd.Find(path)
		assert.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], c.Name())
	}
}
