package stats

import (
	"fmt"
	"time"

	"safewatch/internal/domain/timestamp"
)

const (
	LabelInvalidDate = "Fecha inválida"
	LabelJustNow     = "Ahora mismo"
)

// RelativeTime converts a stored date string into the label shown in the
// activity feed. Dates in the future count as zero elapsed.
func RelativeTime(date string, now time.Time) string {
	t, err := timestamp.Parse(date, now.Location())
	if err != nil {
		return LabelInvalidDate
	}
	return relativeLabel(now.Sub(t))
}

func relativeLabel(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}

	mins := int64(elapsed / time.Minute)
	hours := int64(elapsed / time.Hour)
	days := hours / 24

	switch {
	case mins < 1:
		return LabelJustNow
	case mins < 60:
		return fmt.Sprintf("Hace %d min", mins)
	case hours < 24:
		return fmt.Sprintf("Hace %d h", hours)
	default:
		return fmt.Sprintf("Hace %d d", days)
	}
}
