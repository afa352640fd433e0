package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // STATS_TIMEZONE on hosts without a zoneinfo database

	"stats-service/internal/config"
	"stats-service/internal/telemetry"

	eventsHttp "stats-service/internal/events/adapters/http/fiber"
	eventsMemory "stats-service/internal/events/adapters/memory"
	eventsRepoPg "stats-service/internal/events/adapters/postgres"
	eventsProm "stats-service/internal/events/adapters/prometheus"
	eventsSQLite "stats-service/internal/events/adapters/sqlite"
	eventsPorts "stats-service/internal/events/core/ports"
	eventsUsecase "stats-service/internal/events/core/usecase"

	statsHttp "stats-service/internal/stats/adapters/http/fiber"
	statsRepoPg "stats-service/internal/stats/adapters/postgres"
	statsPorts "stats-service/internal/stats/core/ports"
	statsUsecase "stats-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "stats-service/docs"
)

// @title Stats Service API
// @version 1.0
// @description Event-sourced counters with point-in-time values and period reports.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// eventStore joins the write and read ports of one backend.
type eventStore struct {
	eventsPorts.EventRepositoryPort
	statsPorts.EventReaderPort
}

// openStore returns the configured backend and a closer for it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (eventsProm.EventStore, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Warn("using in-memory store; events are lost on restart")
		return eventsMemory.NewStore(), io.NopCloser(nil), nil

	case config.DriverSQLite:
		store, err := eventsSQLite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("sqlite store opened", slog.String("path", cfg.SQLitePath))
		return store, store, nil

	default:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}

		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxIdleConns)
		db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := eventsRepoPg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		logger.Info("postgres store opened")
		return eventStore{
			EventRepositoryPort: eventsRepoPg.NewEventRepository(db),
			EventReaderPort:     statsRepoPg.NewEventReader(statsRepoPg.NewSQLDB(db)),
		}, db, nil
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend, closer, err := openStore(startCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	shutdownTracing, err := telemetry.Setup(startCtx, "stats-service", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracing shutdown error", slog.Any("error", err))
		}
	}()

	store := eventsProm.NewInstrumentedStore(backend, prometheus.DefaultRegisterer)

	// Usecases
	recordEventUC := eventsUsecase.NewRecordEventUseCase(store, nil)
	statsUC := statsUsecase.NewStatsUseCase(store, cfg.Calendar(), nil)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "stats-service",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	eventsHttp.NewEventHandler(recordEventUC, logger).Register(app)
	statsHttp.NewStatsHandler(statsUC, logger).Register(app)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTPAddr)
	}()

	logger.Info("server started",
		slog.String("addr", cfg.HTTPAddr),
		slog.String("store", cfg.StoreDriver),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return fmt.Errorf("fiber stopped: %w", err)
	case <-quit:
	}

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("fiber shutdown error", slog.Any("error", err))
	}

	logger.Info("server exiting")
	return nil
}
