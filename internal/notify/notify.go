// Package notify delivers emergency alerts raised by a guard.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// Alert is one emergency raised from the CLI or the API.
type Alert struct {
	// Title defaults to DefaultTitle
	Title    string
	Detail   string
	Guard    string
	GuardID  string
	Zone     string
	Phone    string
	RaisedAt time.Time
}

const DefaultTitle = "ALERTA DE EMERGENCIA"

// Text renders the alert for human channels.
func (a Alert) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚨 %s\n", a.heading())
	if a.Detail != "" {
		fmt.Fprintf(&b, "%s\n", a.Detail)
	}
	fmt.Fprintf(&b, "Guardia: %s (%s)\nZona: %s\nTeléfono: %s\nHora: %s",
		a.Guard, a.GuardID, a.Zone, a.Phone, a.RaisedAt.Format("02/01/2006 15:04:05"))
	return b.String()
}

func (a Alert) heading() string {
	if a.Title == "" {
		return DefaultTitle
	}
	return a.Title
}

type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}

// LogNotifier records the alert in the application log.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notify")}
}

func (n *LogNotifier) Notify(_ context.Context, a Alert) error {
	n.log.Warn("alert raised",
		"title", a.heading(),
		"detail", a.Detail,
		"guard", a.Guard,
		"guard_id", a.GuardID,
		"zone", a.Zone,
		"raised_at", a.RaisedAt,
	)
	return nil
}

// Multi fans an alert out to every notifier. All of them are tried; the
// errors are joined.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, a Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
