package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vidafit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidafit-backend/internal/config"
	"github.com/heartmarshall/vidafit-backend/internal/notify"
	"github.com/heartmarshall/vidafit-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations when enabled, and serves the operational
// endpoints until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttrs(),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return New(logger, cfg, pool).Run(ctx)
}

// database is what the application needs from the connection pool.
type database interface {
	postgres.DB
	Ping(ctx context.Context) error
}

// App owns the domain core, the event dispatcher and the HTTP server.
type App struct {
	log    *slog.Logger
	cfg    *config.Config
	core   *Core
	events *notify.Dispatcher
	server *http.Server
}

// New assembles the application over db. Nothing is started until Run.
func New(log *slog.Logger, cfg *config.Config, db database) *App {
	events := notify.NewDispatcher(log, cfg.Notify, notify.NewLogHandler(log))
	health := rest.NewHealthHandler(db, events, BuildVersion())

	return &App{
		log:    log,
		cfg:    cfg,
		core:   NewCore(log, db, events, cfg),
		events: events,
		server: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      rest.NewRouter(log, health),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Core returns the domain services.
func (a *App) Core() *Core {
	return a.core
}

// Run listens on the configured address and blocks until ctx is cancelled
// or the server fails. Queued events are delivered before it returns.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.events.Run(gctx)
	})

	g.Go(func() error {
		a.log.InfoContext(gctx, "http server listening", slog.String("addr", ln.Addr().String()))
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.log.Info("shutting down")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		return nil
	})

	return g.Wait()
}
