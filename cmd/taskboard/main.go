// Package main is the taskboard entry point. It loads configuration, wires
// all dependencies using samber/do v2, and runs the cobra command tree. The
// serve command keeps the local board API running until SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/taskboard/internal/adapters/cli"
	"github.com/jsamuelsen11/taskboard/internal/adapters/identity"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
)

const (
	defaultProfile      = "local"
	otelShutdownTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables win.
	_ = godotenv.Load()

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	env, err := do.Invoke[*cli.Env](injector)
	if err != nil {
		return fmt.Errorf("resolving commands: %w", err)
	}

	// Resolve the stored identity before any command asks for the session.
	idp := do.MustInvoke[*identity.TokenProvider](injector)
	defer idp.Close()
	sessions := do.MustInvoke[*app.SessionProvider](injector)
	sessions.Start()
	defer sessions.Stop()
	_, _ = idp.Resolve(ctx)

	board := do.MustInvoke[*app.BoardController](injector)
	defer board.Wait()

	return cli.NewRootCommand(env).ExecuteContext(ctx)
}
