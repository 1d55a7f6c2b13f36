package stats

import (
	"time"

	"safewatch/internal/domain/incident"
	"safewatch/internal/domain/round"
)

// Incident level thresholds for the dashboard card.
const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// IncidentLevel grades the incident total: none is success, up to two is a
// warning, more is danger.
func IncidentLevel(total int) string {
	switch {
	case total == 0:
		return LevelSuccess
	case total <= 2:
		return LevelWarning
	default:
		return LevelDanger
	}
}

// Trend is the small indicator under the incident total.
type Trend struct {
	Class string `json:"class"`
	Icon  string `json:"icon"`
}

// IncidentTrend is stable with no incidents, trend-down above five and
// trend-up otherwise.
func IncidentTrend(total int) Trend {
	switch {
	case total == 0:
		return Trend{Class: "stable", Icon: "pulse"}
	case total > 5:
		return Trend{Class: "trend-down", Icon: "trending-down"}
	default:
		return Trend{Class: "trend-up", Icon: "trending-up"}
	}
}

// Dashboard is everything the home and profile pages derive from the store.
type Dashboard struct {
	GeneratedAt    time.Time      `json:"generated_at"`
	TotalRounds    int            `json:"total_rounds"`
	TotalIncidents int            `json:"total_incidents"`
	RoundsToday    int            `json:"rounds_today"`
	IncidentsToday int            `json:"incidents_today"`
	IncidentLevel  string         `json:"incident_level"`
	IncidentTrend  Trend          `json:"incident_trend"`
	ShiftHours     float64        `json:"shift_hours"`
	Activity       []ActivityItem `json:"activity"`
}

// BuildDashboard aggregates both collections as of now.
func BuildDashboard(rounds []round.Round, incidents []incident.Incident, now time.Time, opts FeedOptions) Dashboard {
	return Dashboard{
		GeneratedAt:    now,
		TotalRounds:    len(rounds),
		TotalIncidents: len(incidents),
		RoundsToday:    len(FilterToday(rounds, now)),
		IncidentsToday: len(FilterToday(incidents, now)),
		IncidentLevel:  IncidentLevel(len(incidents)),
		IncidentTrend:  IncidentTrend(len(incidents)),
		ShiftHours:     ShiftHours(now),
		Activity:       BuildFeed(rounds, incidents, now, opts),
	}
}
