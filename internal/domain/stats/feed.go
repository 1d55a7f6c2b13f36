package stats

import (
	"sort"
	"strings"
	"time"

	"safewatch/internal/domain/incident"
	"safewatch/internal/domain/round"
	"safewatch/internal/domain/timestamp"
)

const (
	FeedRounds    = 3
	FeedIncidents = 2
	FeedLimit     = 5
)

type Kind string

const (
	KindRound    Kind = "ronda"
	KindIncident Kind = "incidente"
	KindSystem   Kind = "sistema"
)

// Icon is the leading icon of a feed row.
func (k Kind) Icon() string {
	switch k {
	case KindRound:
		return "footsteps"
	case KindIncident:
		return "warning"
	default:
		return "notifications"
	}
}

// TypeIcon is the small icon next to the type label.
func (k Kind) TypeIcon() string {
	switch k {
	case KindRound:
		return "location"
	case KindIncident:
		return "alert-circle"
	default:
		return "cog"
	}
}

// Label is the human name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindRound:
		return "Ronda"
	case KindIncident:
		return "Incidente"
	default:
		return "Sistema"
	}
}

type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baja"
)

// Icon is the priority marker; unknown priorities get "help".
func (p Priority) Icon() string {
	switch p {
	case PriorityHigh:
		return "alert"
	case PriorityMedium:
		return "time"
	case PriorityLow:
		return "checkmark"
	default:
		return "help"
	}
}

// ActivityItem is one row of the home dashboard's recent activity list.
type ActivityItem struct {
	Kind         Kind     `json:"kind"`
	Description  string   `json:"description"`
	Time         string   `json:"time"`
	ID           string   `json:"id,omitempty"`
	Priority     Priority `json:"priority,omitempty"`
	Icon         string   `json:"icon"`
	TypeIcon     string   `json:"type_icon"`
	PriorityIcon string   `json:"priority_icon"`
}

func newItem(kind Kind, description, at, id string, p Priority) ActivityItem {
	return ActivityItem{
		Kind:         kind,
		Description:  description,
		Time:         at,
		ID:           id,
		Priority:     p,
		Icon:         kind.Icon(),
		TypeIcon:     kind.TypeIcon(),
		PriorityIcon: p.Icon(),
	}
}

// EffectivePriority falls back to media when the item carries none.
func (a ActivityItem) EffectivePriority() Priority {
	if a.Priority == "" {
		return PriorityMedium
	}
	return a.Priority
}

// FeedOptions tunes BuildFeed.
type FeedOptions struct {
	// Chronological interleaves rounds and incidents newest first instead of
	// listing the rounds before the incidents.
	Chronological bool
}

// SeverityPriority maps an incident severity onto a feed priority. Unknown
// severities are treated as media.
func SeverityPriority(s incident.Severity) Priority {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "alta", "high":
		return PriorityHigh
	case "media", "medium":
		return PriorityMedium
	case "baja", "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// BuildFeed merges the newest rounds and incidents into at most FeedLimit
// items. Both inputs are expected most-recent-first.
func BuildFeed(rounds []round.Round, incidents []incident.Incident, now time.Time, opts FeedOptions) []ActivityItem {
	rounds = rounds[:min(len(rounds), FeedRounds)]
	incidents = incidents[:min(len(incidents), FeedIncidents)]

	items := make([]ActivityItem, 0, len(rounds)+len(incidents))
	dates := make([]string, 0, cap(items))

	for _, r := range rounds {
		items = append(items, newItem(KindRound, "Ronda en "+r.Area, RelativeTime(r.Date, now), r.ID, PriorityLow))
		dates = append(dates, r.Date)
	}
	for _, inc := range incidents {
		items = append(items, newItem(KindIncident, "Incidente: "+inc.Type, RelativeTime(inc.Date, now), inc.ID, SeverityPriority(inc.Severity)))
		dates = append(dates, inc.Date)
	}

	if opts.Chronological {
		sortNewestFirst(items, dates, now.Location())
	}

	return items[:min(len(items), FeedLimit)]
}

// sortNewestFirst orders items by their parsed dates; unparseable dates go
// last and ties keep their original order.
func sortNewestFirst(items []ActivityItem, dates []string, loc *time.Location) {
	type keyed struct {
		item ActivityItem
		at   time.Time
		ok   bool
	}
	ks := make([]keyed, len(items))
	for i := range items {
		t, err := timestamp.Parse(dates[i], loc)
		ks[i] = keyed{item: items[i], at: t, ok: err == nil}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].ok != ks[j].ok {
			return ks[i].ok
		}
		return ks[i].at.After(ks[j].at)
	})

	for i := range ks {
		items[i] = ks[i].item
	}
}
