// Package launcher runs a presentation layer on top of a fully configured board.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
)

// RunFunc is the presentation layer. It owns the board until it returns or
// ctx is cancelled.
type RunFunc func(ctx context.Context, a *app.App) error

// Launch loads the configuration, starts file logging, opens the board and
// hands it to run. The board is closed when run returns.
func Launch(run RunFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return LaunchWithConfig(cfg, run)
}

// LaunchWithConfig is Launch with an explicit configuration
func LaunchWithConfig(cfg *config.Config, run RunFunc) (err error) {
	// Initialize logging to file before anything else
	logFile, err := logging.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if cerr := application.Close(); cerr != nil {
			slog.Error("error closing board", "error", cerr)
		}
	}()

	if err := run(ctx, application); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("error running program: %w", err)
	}

	if ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
	}
	return nil
}
