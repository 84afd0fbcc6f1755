package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/taskboard/internal/adapters/cli"
	"github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/taskboard/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard/internal/adapters/identity"
	"github.com/jsamuelsen11/taskboard/internal/adapters/notify"
	"github.com/jsamuelsen11/taskboard/internal/adapters/render"
	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/health"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard/internal/ports"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	taskAPIName           = "task-api"
	serverShutdownTimeout = 15 * time.Second
)

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, taskAPIName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TaskClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTaskClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*identity.TokenProvider, error) {
		return identity.New(cfg.Auth, logger)
	})

	do.Provide(injector, func(i do.Injector) (*app.SessionProvider, error) {
		idp := do.MustInvoke[*identity.TokenProvider](i)
		return app.NewSessionProvider(idp, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*notify.Recorder, error) {
		return notify.NewRecorder(notify.DefaultLimit), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Notifier, error) {
		stderr := render.New(os.Stderr, render.WithColor(cfg.Board.Color))
		return notify.Multi{
			notify.NewConsole(stderr, logger),
			do.MustInvoke[*notify.Recorder](i),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.BoardController, error) {
		return app.NewBoardController(
			do.MustInvoke[*acl.TaskClient](i),
			do.MustInvoke[*app.SessionProvider](i),
			do.MustInvoke[ports.Notifier](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(cfg.Server.HealthTimeout)
		registry.Register(do.MustInvoke[*acl.TaskClient](i))
		registry.Register(do.MustInvoke[*app.SessionProvider](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		board := do.MustInvoke[*app.BoardController](i)
		sessions := do.MustInvoke[*app.SessionProvider](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Board:         handlers.NewBoardHandler(board, nil),
			Task:          handlers.NewTaskHandler(board, nil),
			Session:       handlers.NewSessionHandler(sessions, do.MustInvoke[*identity.TokenProvider](i)),
			Notifications: handlers.NewNotificationHandler(do.MustInvoke[*notify.Recorder](i)),
			Health:        handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger, sessions),
			chimw.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*cli.Env, error) {
		return &cli.Env{
			Board:    do.MustInvoke[*app.BoardController](i),
			Sessions: do.MustInvoke[*app.SessionProvider](i),
			Identity: do.MustInvoke[*identity.TokenProvider](i),
			Logger:   logger,
			Color:    cfg.Board.Color,
			Serve: func(ctx context.Context) error {
				return serve(ctx, i, logger)
			},
		}, nil
	})
}

// serve runs the local board API until ctx is cancelled. The board follows
// the session for as long as the server runs.
func serve(ctx context.Context, i do.Injector, logger *slog.Logger) error {
	server, err := do.Invoke[*adapthttp.Server](i)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	board := do.MustInvoke[*app.BoardController](i)
	unbind := board.Bind(ctx)
	defer unbind()

	if err := server.Listen(); err != nil {
		return err
	}
	logger.Info("board API listening", slog.String("addr", server.Addr()))

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}
