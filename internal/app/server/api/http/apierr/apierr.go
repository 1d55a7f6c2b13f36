// Package apierr maps application errors to huma status errors.
package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"safewatch/internal/domain/validation"
	"safewatch/internal/store"
)

// From returns a 422 carrying the guard-facing message for validation errors
// and a generic 500 for everything else. The detail of the latter is logged.
func From(log *slog.Logger, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validation.ErrValidation) {
		msg := validation.Message(err)
		if msg == "" {
			msg = err.Error()
		}
		return huma.Error422UnprocessableEntity(msg)
	}
	log.Error("request failed", slog.String("error", err.Error()))
	return huma.Error500InternalServerError(store.MsgStorage)
}
