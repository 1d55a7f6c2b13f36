package stats

import (
	"math"
	"time"
)

const (
	ShiftStartHour = 22
	ShiftEndHour   = 6
	ShiftLength    = 8 * time.Hour
)

// ShiftStart returns the start of the overnight shift now belongs to: 22:00
// of the previous day before 06:00, otherwise 22:00 of the current day.
func ShiftStart(now time.Time) time.Time {
	y, m, d := now.Date()
	start := time.Date(y, m, d, ShiftStartHour, 0, 0, 0, now.Location())
	if now.Hour() < ShiftEndHour {
		start = start.AddDate(0, 0, -1)
	}
	return start
}

// ShiftHours is the number of hours worked in the current shift, clamped to
// [0, 8] and rounded to one decimal. Daytime hours (06:00-22:00) report 0.
func ShiftHours(now time.Time) float64 {
	elapsed := now.Sub(ShiftStart(now)).Hours()
	elapsed = math.Max(0, math.Min(ShiftLength.Hours(), elapsed))
	return math.Round(elapsed*10) / 10
}
