package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/davidbz/synexis/internal/http"
	"github.com/davidbz/synexis/internal/media"
	"github.com/davidbz/synexis/internal/observability"
)

const shutdownTimeout = 30 * time.Second

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Serve chat completions over HTTP",
	Description: `Serve loads configuration from the environment (and .env), builds the engine
selected by ENGINE_BACKEND and serves POST /v1/chat/completions, GET /health and GET /metrics.`,
	Action: func(c *cli.Context) error {
		container := buildContainer()
		if err := initLogger(container); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return container.Invoke(func(server *http.Server, backend media.Backend) error {
			defer closeRedis(backend)

			errs := make(chan error, 1)
			go func() {
				errs <- server.Start()
			}()

			select {
			case err := <-errs:
				return err
			case <-ctx.Done():
			}

			observability.FromContext(ctx).Info("shutdown signal received")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
			return <-errs
		})
	},
}
