package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/scribble/internal/bootstrap"
	"github.com/osse101/scribble/internal/server"
)

const shutdownTimeout = 10 * time.Second

// ServeCommand runs the HTTP API until interrupted
type ServeCommand struct{ e *env }

func (c *ServeCommand) Name() string        { return "serve" }
func (c *ServeCommand) Description() string { return "Serve the HTTP API on $PORT" }

func (c *ServeCommand) Run(ctx context.Context, _ []string) error {
	cfg := c.e.app.Config
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.Version, c.e.app.Services)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv)
	return nil
}
