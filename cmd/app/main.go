package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/seed"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "logistics",
		Short:        "Shipment, trip and fleet management service",
		SilenceUsage: true,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and scheduled jobs",
			RunE: func(c *cobra.Command, _ []string) error {
				return run(c.Context(), serve)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(c *cobra.Command, _ []string) error {
				return run(c.Context(), migrate)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Load vehicle types and transport companies",
			RunE: func(c *cobra.Command, _ []string) error {
				return run(c.Context(), seedReferenceData)
			},
		},
	)
	return root
}

type app struct {
	cfg    cmd.Config
	logger *otelzap.Logger
	db     *gorm.DB
}

// run loads configuration, opens the database and calls fn with a context cancelled on
// SIGINT or SIGTERM.
func run(parent context.Context, fn func(context.Context, app) error) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		logger.Error("database is unavailable", zap.Error(err))
		return err
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	return fn(ctx, app{cfg: cfg, logger: logger, db: db})
}

func migrate(ctx context.Context, a app) error {
	if err := postgres.Migrate(ctx, a.db); err != nil {
		return err
	}
	a.logger.Info("schema migrated")
	return nil
}

func seedReferenceData(ctx context.Context, a app) error {
	summary, err := seed.NewSeeder(a.db, a.logger.Logger).Seed(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("reference data seeded",
		zap.Int("vehicleTypes", summary.VehicleTypes),
		zap.Int("transportCompanies", summary.TransportCompanies),
		zap.Int("failed", summary.Failed),
	)
	return nil
}

func serve(ctx context.Context, a app) error {
	if a.cfg.OTelEnabled {
		_, shutdown, err := telemetry.InitTracer(ctx, a.cfg.OTelEndpoint, a.cfg.ServiceName, a.cfg.ServiceVersion)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				a.logger.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(registry)

	publisher := newPublisher(a)
	defer func() {
		if err := publisher.Close(); err != nil {
			a.logger.Warn("event publisher close failed", zap.Error(err))
		}
	}()

	root := cmd.NewCompositionRoot(a.db, publisher, metrics, clockz.RealClock, a.logger.Logger)
	server := httpadapter.NewServer(root.HTTPCommands(), root.HTTPQueries(), metrics)

	e, err := httpadapter.NewRouter(ctx, server, httpadapter.RouterConfig{
		Logger:   a.logger,
		Metrics:  metrics,
		Gatherer: registry,
		Tracer:   telemetry.Tracer(a.cfg.ServiceName),
		LogLevel: a.cfg.LogLevel,
		Health:   root.Ping,
	})
	if err != nil {
		return err
	}

	jobManager := jobs.NewJobManager(jobs.NewRouteStatisticsJob(
		root.CreateRefreshRouteStatisticsCommandHandler(),
		a.cfg.RouteStatsSchedule,
		metrics,
		a.logger.Logger,
	))
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", zap.String("port", a.cfg.HTTPPort))
		serverErr <- e.Start("0.0.0.0:" + a.cfg.HTTPPort)
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

func newPublisher(a app) eventPublisher {
	if !a.cfg.KafkaEnabled() {
		a.logger.Info("no kafka brokers configured, domain events are dropped")
		return kafka.NopPublisher{}
	}
	return kafka.NewEventPublisher(a.cfg.KafkaBrokers, a.cfg.KafkaTopic, a.logger.Logger)
}
