// Package timestamp produces and parses the human date strings stored on
// rounds and incidents.
package timestamp

import (
	"errors"
	"strings"
	"time"
)

// Layout is the format records are created with: day/month/year, hour:minute.
const Layout = "02/01/2006, 15:04"

var ErrInvalid = errors.New("invalid timestamp")

// accepted layouts, tried in order; the ones without a zone are read in the
// caller's location.
var layouts = []string{
	Layout,
	"02/01/2006 15:04",
	"02/01/2006, 15:04:05",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// Format renders t the way new records are stamped.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a stored date string. Zone-less layouts are interpreted in loc.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalid
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalid
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
