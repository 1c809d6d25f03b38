package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/iresident/internal/resident/http"
	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/internal/resident/store"
	"github.com/aussiebroadwan/iresident/internal/resident/store/drivers/postgres"
	"github.com/aussiebroadwan/iresident/internal/resident/store/drivers/sqlite"
	"github.com/aussiebroadwan/iresident/pkg/events"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/slogx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	serviceName = "resident-service"
)

// Application encapsulates the resident service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db             store.Store
	events         events.Publisher
	metrics        *httpx.Metrics
	shutdownTracer func(context.Context) error

	// Services
	rolesService       *service.RolesService
	usersService       *service.UsersService
	visitorsService    *service.VisitorsService
	vehiclesService    *service.VehiclesService
	invitationsService *service.InvitationsService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()

	shutdownTracer, err := setupTracing(ctx, cfg, BuildVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.shutdownTracer = shutdownTracer

	if err := app.initDatabase(ctx); err != nil {
		_ = app.shutdownTracer(ctx)
		return nil, err
	}

	if err := app.initEvents(); err != nil {
		_ = app.db.Close()
		_ = app.shutdownTracer(ctx)
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wrapped HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.server.Handler
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("resident service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.Shutdown()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the server, then releases the publisher, tracer and store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down resident service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.events.Close(); err != nil {
		app.logger.Error("error closing event publisher", "error", err)
	}

	if err := app.shutdownTracer(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("resident service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, postgres.Config{
			URL:      app.cfg.DatabaseURL,
			MaxConns: app.cfg.DBMaxConns,
			MinConns: app.cfg.DBMinConns,
		})
	default:
		db, err = sqlite.NewStore(app.cfg.sqliteDSN())
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initEvents connects to the configured bus, otherwise events are dropped.
func (app *Application) initEvents() error {
	switch {
	case app.cfg.NATSURL != "":
		pub, err := events.NewNATSPublisher(app.cfg.NATSURL, serviceName)
		if err != nil {
			return err
		}
		app.events = pub
		app.logger.Info("invitation events enabled", "transport", "nats")
	case app.cfg.AMQPURL != "":
		pub, err := events.NewAMQPPublisher(app.cfg.AMQPURL, app.cfg.AMQPExchange, serviceName)
		if err != nil {
			return err
		}
		app.events = pub
		app.logger.Info("invitation events enabled", "transport", "amqp", "exchange", app.cfg.AMQPExchange)
	default:
		app.events = events.Nop{}
	}
	return nil
}

func (app *Application) initServices() {
	app.rolesService = &service.RolesService{Store: app.db}
	app.usersService = &service.UsersService{Store: app.db}
	app.visitorsService = &service.VisitorsService{Store: app.db}
	app.vehiclesService = &service.VehiclesService{Store: app.db}
	app.invitationsService = &service.InvitationsService{
		Store:  app.db,
		Events: app.events,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.RolesService = app.rolesService
	router.UsersService = app.usersService
	router.VisitorsService = app.visitorsService
	router.VehiclesService = app.vehiclesService
	router.InvitationsService = app.invitationsService

	app.metrics = httpx.NewMetrics("resident")
	router.Metrics = app.metrics
	router.CORSOrigins = app.cfg.CORSAllowedOrigins
	router.Limits = app.limits()
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// limits applies the per-minute overrides on top of the default profiles.
func (app *Application) limits() httpapi.Limits {
	l := httpapi.DefaultLimits()
	override := func(dst *httpx.RateLimitConfig, perMinute int) {
		if perMinute <= 0 {
			return
		}
		// Keep the profile's burst-to-rate ratio.
		dst.Burst = max(dst.Burst*perMinute/dst.RequestsPerWindow, 1)
		dst.RequestsPerWindow = perMinute
		dst.Window = time.Minute
	}
	override(&l.Strict, app.cfg.StrictRatePerMinute)
	override(&l.Write, app.cfg.WriteRatePerMinute)
	override(&l.Read, app.cfg.ReadRatePerMinute)
	return l
}
