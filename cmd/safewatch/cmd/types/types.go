// Package types holds what the command packages share: the key the App is
// stored under in the command context and a few prompt helpers.
package types

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"safewatch/internal/app"
	"safewatch/internal/domain/validation"
	"safewatch/internal/store"
)

type contextKey string

const ClientAppKey contextKey = "app"

var ErrNoApp = errors.New("приложение не инициализировано")

// WithApp returns ctx carrying a.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, ClientAppKey, a)
}

// App extracts the App put in the command context by the root command.
func App(cmd *cobra.Command) (*app.App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(ClientAppKey).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return a, nil
}

// Session is App plus a check that a guard is logged in.
func Session(cmd *cobra.Command) (*app.App, string, error) {
	a, err := App(cmd)
	if err != nil {
		return nil, "", err
	}
	name, err := a.RequireSession(cmd.Context())
	if errors.Is(err, app.ErrNotLoggedIn) {
		return nil, "", fmt.Errorf("%w: ejecute 'safewatch auth login'", err)
	}
	if err != nil {
		return nil, "", UserError(err)
	}
	return a, name, nil
}

// JSONOutput reports whether the global --json flag is set.
func JSONOutput(cmd *cobra.Command) bool {
	v, err := cmd.Root().PersistentFlags().GetBool("json")
	return err == nil && v
}

// PrintJSON writes v indented to w.
func PrintJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// UserError keeps validation messages and hides persistence details.
func UserError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validation.ErrValidation) {
		if msg := validation.Message(err); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	if errors.Is(err, store.ErrStorage) {
		return errors.New(store.MsgStorage)
	}
	return err
}

// Confirm asks a yes/no question. Anything but s/si/sí/y/yes is a no.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [s/N]: ", question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

// Prompt reads one trimmed line after printing label.
func Prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
