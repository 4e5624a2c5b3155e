// Package main serves the journal over HTTP.
//
// Build metadata is injected with ldflags:
//
//	go build -ldflags "-X main.Version=1.2.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%FT%TZ)" ./cmd/service
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/mindnotes/internal/adapters/http"
	"github.com/jsamuelsen/mindnotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mindnotes/internal/adapters/storage/jsonfile"
	"github.com/jsamuelsen/mindnotes/internal/app"
	"github.com/jsamuelsen/mindnotes/internal/platform/config"
	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
	"github.com/jsamuelsen/mindnotes/internal/platform/telemetry"
	"github.com/jsamuelsen/mindnotes/internal/ports"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// readinessCheckTimeout bounds each document check behind /-/ready.
const readinessCheckTimeout = 2 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mindnotes-service: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadProfile()
	if err != nil {
		return err
	}

	logger := logging.New(logging.ConfigFrom(&cfg.Log, cfg.App.Name, cfg.App.Version))
	logging.SetDefault(logger)

	logger.Info("starting journal service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		Insecure:     cfg.Telemetry.Insecure,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		// The signal context is done by now; flush on a fresh one.
		if err := tel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	notes := jsonfile.OpenNoteStore(ctx, jsonfile.NoteStoreConfig{Path: cfg.Storage.NotesPath, Logger: logger})
	quotes := jsonfile.OpenQuoteStore(ctx, jsonfile.QuoteStoreConfig{Path: cfg.Storage.QuotesPath, Logger: logger})

	registry := ports.NewHealthRegistry(ports.WithCheckTimeout(readinessCheckTimeout))
	for _, c := range []ports.HealthChecker{notes, quotes} {
		if err := registry.Register(c); err != nil {
			return fmt.Errorf("registering %s readiness check: %w", c.Name(), err)
		}
	}

	serviceName := cfg.Telemetry.ServiceName
	if serviceName == "" {
		serviceName = cfg.App.Name
	}

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:            logger,
		ServiceName:       serviceName,
		Timeout:           cfg.Server.RequestTimeout,
		HealthHandler:     handlers.NewHealthHandler(registry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		NoteHandler:       handlers.NewNoteHandler(app.NewNoteService(app.NoteServiceConfig{Notes: notes, Logger: logger})),
		QuoteHandler:      handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{Quotes: quotes, Logger: logger})),
		StatisticsHandler: handlers.NewStatisticsHandler(app.NewStatisticsService(notes, logger)),
	})

	failed, err := server.Start()
	if err != nil {
		return err
	}

	logger.Info("serving journal",
		slog.String("notes", notes.Path()),
		slog.String("quotes", quotes.Path()),
	)

	select {
	case err, ok := <-failed:
		if ok {
			return err
		}

		return nil
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.Duration("grace", cfg.Server.ShutdownTimeout))
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(drainCtx)
}
