package stats

import (
	"time"

	"safewatch/internal/domain/timestamp"
)

// Dated is implemented by every persisted record.
type Dated interface {
	Stamp() string
}

// FilterToday keeps the items dated on the same local calendar day as now,
// preserving order. Items with an unparseable date are dropped.
func FilterToday[T Dated](items []T, now time.Time) []T {
	loc := now.Location()
	out := make([]T, 0, len(items))
	for _, it := range items {
		t, err := timestamp.Parse(it.Stamp(), loc)
		if err != nil {
			continue
		}
		if timestamp.SameDay(t, now, loc) {
			out = append(out, it)
		}
	}
	return out
}
