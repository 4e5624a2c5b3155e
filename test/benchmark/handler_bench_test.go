package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apphttp "github.com/jsamuelsen/mindnotes/internal/adapters/http"
	"github.com/jsamuelsen/mindnotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mindnotes/internal/adapters/storage/jsonfile"
	"github.com/jsamuelsen/mindnotes/internal/app"
	"github.com/jsamuelsen/mindnotes/internal/domain"
	"github.com/jsamuelsen/mindnotes/internal/ports"
)

// journalSize is the number of notes in the benchmark journal.
const journalSize = 1000

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func sampleNotes(n int) []domain.Note {
	moods := domain.Moods()
	notes := make([]domain.Note, n)

	for i := range notes {
		notes[i] = domain.Note{
			Text:      fmt.Sprintf("Day %d: walked, read, slept %d hours", i, i%9),
			Mood:      moods[i%len(moods)],
			CreatedAt: fmt.Sprintf("2026-10-19 %02d:%02d", i%24, i%60),
		}
	}

	return notes
}

type benchJournal struct {
	router *gin.Engine
}

// newBenchJournal serves a journal of journalSize notes through the full
// middleware chain.
func newBenchJournal(b *testing.B) *benchJournal {
	b.Helper()

	ctx := context.Background()
	logger := discardLogger()
	dir := b.TempDir()

	if err := jsonfile.Save(ctx, filepath.Join(dir, "notes.json"), map[string][]domain.Note{"notes": sampleNotes(journalSize)}); err != nil {
		b.Fatal(err)
	}

	notes := jsonfile.OpenNoteStore(ctx, jsonfile.NoteStoreConfig{Path: filepath.Join(dir, "notes.json"), Logger: logger})
	quotes := jsonfile.OpenQuoteStore(ctx, jsonfile.QuoteStoreConfig{Path: filepath.Join(dir, "quotes.json"), Logger: logger})

	registry := ports.NewHealthRegistry()
	_ = registry.Register(notes)
	_ = registry.Register(quotes)

	router := gin.New()
	apphttp.SetupRouter(router, apphttp.RouterConfig{
		Logger:            logger,
		ServiceName:       "mindnotes-bench",
		Timeout:           5 * time.Second,
		HealthHandler:     handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc123", "2026-10-19T00:00:00Z")),
		NoteHandler:       handlers.NewNoteHandler(app.NewNoteService(app.NoteServiceConfig{Notes: notes, Logger: logger})),
		QuoteHandler:      handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{Quotes: quotes, Logger: logger})),
		StatisticsHandler: handlers.NewStatisticsHandler(app.NewStatisticsService(notes, logger)),
	})

	return &benchJournal{router: router}
}

func (j *benchJournal) serve(b *testing.B, method, target, body string) {
	b.Helper()

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		var reader io.Reader = http.NoBody
		if body != "" {
			reader = strings.NewReader(body)
		}

		req := httptest.NewRequest(method, target, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}

		w := httptest.NewRecorder()
		j.router.ServeHTTP(w, req)

		if w.Code >= http.StatusBadRequest {
			b.Fatalf("%s %s: status %d: %s", method, target, w.Code, w.Body.String())
		}
	}
}

// BenchmarkLiveness measures the liveness probe through the middleware chain.
func BenchmarkLiveness(b *testing.B) {
	newBenchJournal(b).serve(b, http.MethodGet, "/-/live", "")
}

// BenchmarkReadiness includes both document health checks.
func BenchmarkReadiness(b *testing.B) {
	newBenchJournal(b).serve(b, http.MethodGet, "/-/ready", "")
}

// BenchmarkListNotes serves the first page of the journal.
func BenchmarkListNotes(b *testing.B) {
	newBenchJournal(b).serve(b, http.MethodGet, "/api/v1/notes?limit=100", "")
}

// BenchmarkSearchNotes is a linear scan over every note.
func BenchmarkSearchNotes(b *testing.B) {
	newBenchJournal(b).serve(b, http.MethodGet, "/api/v1/notes?q=SLEPT+8", "")
}

// BenchmarkStatistics tallies moods and hours over every note.
func BenchmarkStatistics(b *testing.B) {
	newBenchJournal(b).serve(b, http.MethodGet, "/api/v1/statistics", "")
}

// BenchmarkQuoteOfTheDay reads the quote collection and picks by day.
func BenchmarkQuoteOfTheDay(b *testing.B) {
	newBenchJournal(b).serve(b, http.MethodGet, "/api/v1/quotes/today", "")
}

// BenchmarkAddNote includes rewriting the whole notes document, which grows
// by one note per iteration.
func BenchmarkAddNote(b *testing.B) {
	newBenchJournal(b).serve(b, http.MethodPost, "/api/v1/notes", `{"text":"Short walk after lunch","mood":"happy"}`)
}

// BenchmarkComputeStatistics measures the aggregation alone.
func BenchmarkComputeStatistics(b *testing.B) {
	notes := sampleNotes(journalSize)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := domain.ComputeStatistics(notes); err != nil {
			b.Fatal(err)
		}
	}
}
