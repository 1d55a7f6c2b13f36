package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"safewatch/cmd/safewatch/cmd/types"
	"safewatch/internal/app"
	"safewatch/internal/app/server/api"
)

const shutdownTimeout = 10 * time.Second

// newHTTPServer собирает сервер со всеми обработчиками API
func newHTTPServer(ctx context.Context, a *app.App, log *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              a.Config().Server.RunAddress,
		Handler:           api.New(ctx, a, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levantar la API HTTP",
	Long: `Expone las mismas operaciones por HTTP en RUN_ADDRESS. La documentación
OpenAPI queda en /docs.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := types.App(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := newHTTPServer(ctx, a, log)

		errCh := make(chan error, 1)
		go func() {
			log.Info("HTTP server started", "address", cfg.Server.RunAddress, "storage", cfg.Storage.Driver)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("servidor HTTP: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
