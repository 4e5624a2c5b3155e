//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	apphttp "github.com/jsamuelsen/mindnotes/internal/adapters/http"
	"github.com/jsamuelsen/mindnotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mindnotes/internal/adapters/storage/jsonfile"
	"github.com/jsamuelsen/mindnotes/internal/app"
	"github.com/jsamuelsen/mindnotes/internal/domain"
	"github.com/jsamuelsen/mindnotes/internal/platform/config"
	"github.com/jsamuelsen/mindnotes/internal/ports"
)

// journalDay is the fixed clock for every in-process journal: ordinal day
// 739908, so the quote of the day is index 3 of five quotes.
var journalDay = time.Date(2026, time.October, 19, 21, 7, 42, 0, time.Local)

func init() {
	gin.SetMode(gin.TestMode)
}

// journal is the HTTP service wired the way cmd/service wires it, over
// documents in dir and listening on a free loopback port.
type journal struct {
	dir    string
	server *apphttp.Server
	errCh  <-chan error
}

func (j *journal) notesPath() string  { return filepath.Join(j.dir, "notes.json") }
func (j *journal) quotesPath() string { return filepath.Join(j.dir, "quotes.json") }

func (j *journal) baseURL() string { return "http://" + j.server.Addr() }

// startJournal serves the documents in dir. A nil seed uses the default
// quotes when no quotes document exists.
func startJournal(dir string, seed []domain.Quote) (*journal, error) {
	j := &journal{dir: dir}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	clock := ports.ClockFunc(func() time.Time { return journalDay })

	notes := jsonfile.OpenNoteStore(ctx, jsonfile.NoteStoreConfig{Path: j.notesPath(), Logger: logger})
	quotes := jsonfile.OpenQuoteStore(ctx, jsonfile.QuoteStoreConfig{Path: j.quotesPath(), Seed: seed, Logger: logger})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(notes); err != nil {
		return nil, err
	}

	if err := registry.Register(quotes); err != nil {
		return nil, err
	}

	j.server = apphttp.New(&config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		RequestTimeout:  2 * time.Second,
		MaxRequestSize:  config.DefaultMaxRequestSize,
	}, logger)

	apphttp.SetupRouter(j.server.Engine(), apphttp.RouterConfig{
		Logger:            logger,
		ServiceName:       "mindnotes-integration",
		Timeout:           2 * time.Second,
		HealthHandler:     handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "none", "none")),
		NoteHandler:       handlers.NewNoteHandler(app.NewNoteService(app.NoteServiceConfig{Notes: notes, Clock: clock, Logger: logger})),
		QuoteHandler:      handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{Quotes: quotes, Clock: clock, Logger: logger})),
		StatisticsHandler: handlers.NewStatisticsHandler(app.NewStatisticsService(notes, logger)),
	})

	errCh, err := j.server.Start()
	if err != nil {
		return nil, fmt.Errorf("starting journal: %w", err)
	}

	j.errCh = errCh

	return j, nil
}

func (j *journal) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return j.server.Shutdown(ctx)
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	return string(data), nil
}
