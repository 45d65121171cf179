// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/realestate-crm/internal/adapters/http"
	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/store/memory"
	"github.com/jsamuelsen11/realestate-crm/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/realestate-crm/internal/app"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/clock"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/config"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/health"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/logging"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/telemetry"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
	migrateTimeout        = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue[ports.Clock](injector, clock.System())

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*storeHandle](injector)
	for _, c := range store.checkers {
		registry.Register(c)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := store.close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// storeHandle is the selected store adapter plus what main needs to manage
// its lifecycle.
type storeHandle struct {
	store    ports.Store
	checkers []ports.HealthChecker
	close    func() error
}

func openStore(
	cfg *config.Config,
	clk ports.Clock,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (*storeHandle, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return &storeHandle{
			store: memory.New(clk),
			close: func() error { return nil },
		}, nil

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.Store.Postgres, clk, logger)
		if err != nil {
			return nil, err
		}
		pg := postgres.New(db, cfg.Store.CircuitBreaker, metrics, logger)

		if cfg.Store.Postgres.AutoMigrate {
			ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
			defer cancel()
			if err := pg.Migrate(ctx); err != nil {
				_ = pg.Close()
				return nil, fmt.Errorf("migrating schema: %w", err)
			}
		}

		return &storeHandle{
			store:    pg,
			checkers: []ports.HealthChecker{pg, pg.Breaker()},
			close:    pg.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storeHandle, error) {
		clk := do.MustInvoke[ports.Clock](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return openStore(cfg, clk, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.Store, error) {
		return do.MustInvoke[*storeHandle](i).store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PropertyService, error) {
		return app.NewPropertyService(do.MustInvoke[ports.Store](i), do.MustInvoke[ports.Clock](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ClientService, error) {
		return app.NewClientService(do.MustInvoke[ports.Store](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		return app.NewTaskService(do.MustInvoke[ports.Store](i), do.MustInvoke[ports.Clock](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CollaboratorService, error) {
		return app.NewCollaboratorService(do.MustInvoke[ports.Store](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		return app.NewDashboardService(
			do.MustInvoke[ports.PropertyService](i),
			do.MustInvoke[ports.ClientService](i),
			do.MustInvoke[ports.TaskService](i),
			do.MustInvoke[ports.CollaboratorService](i),
			app.DashboardOptions{
				UpcomingDays: cfg.Dashboard.UpcomingDays,
				MaxWorkers:   cfg.Dashboard.MaxWorkers,
			},
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Property: handlers.NewPropertyHandler(do.MustInvoke[ports.PropertyService](i)),
			Client:   handlers.NewClientHandler(do.MustInvoke[ports.ClientService](i)),
			Task: handlers.NewTaskHandler(
				do.MustInvoke[ports.TaskService](i),
				do.MustInvoke[ports.Clock](i),
				cfg.Dashboard.UpcomingDays,
			),
			Collaborator: handlers.NewCollaboratorHandler(do.MustInvoke[ports.CollaboratorService](i)),
			Dashboard:    handlers.NewDashboardHandler(do.MustInvoke[ports.DashboardService](i)),
			Health:       handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		mws := []func(nethttp.Handler) nethttp.Handler{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.RateLimit(cfg.Server.RateLimit),
		}
		// A zero request timeout leaves handlers bounded only by WriteTimeout.
		if cfg.Server.RequestTimeout > 0 {
			mws = append(mws, middleware.Timeout(cfg.Server.RequestTimeout))
		}
		return adapthttp.NewRouter(h, mws...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
