package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mindnotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/mindnotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mindnotes/internal/adapters/storage/jsonfile"
	"github.com/jsamuelsen/mindnotes/internal/app"
	"github.com/jsamuelsen/mindnotes/internal/domain"
	"github.com/jsamuelsen/mindnotes/internal/platform/config"
	"github.com/jsamuelsen/mindnotes/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serverConfig(port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           port,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 10,
	}
}

// journalRouter wires the full middleware chain over stores in a temp dir.
func journalRouter(t *testing.T, timeout time.Duration) *gin.Engine {
	t.Helper()

	dir := t.TempDir()
	ctx := t.Context()
	logger := discardLogger()

	notes := jsonfile.OpenNoteStore(ctx, jsonfile.NoteStoreConfig{Path: filepath.Join(dir, "notes.json"), Logger: logger})
	quotes := jsonfile.OpenQuoteStore(ctx, jsonfile.QuoteStoreConfig{
		Path:   filepath.Join(dir, "quotes.json"),
		Seed:   []domain.Quote{{Content: "Stay kind"}},
		Logger: logger,
	})

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(notes))
	require.NoError(t, registry.Register(quotes))

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:            logger,
		ServiceName:       "mindnotes-test",
		Timeout:           timeout,
		HealthHandler:     handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "abc123", "2026-10-19")),
		NoteHandler:       handlers.NewNoteHandler(app.NewNoteService(app.NoteServiceConfig{Notes: notes, Logger: logger})),
		QuoteHandler:      handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{Quotes: quotes, Logger: logger})),
		StatisticsHandler: handlers.NewStatisticsHandler(app.NewStatisticsService(notes, logger)),
	})

	return engine
}

func TestServerNew(t *testing.T) {
	cfg := serverConfig(8080)
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
	assert.Equal(t, cfg.ReadTimeout, srv.srv.ReadHeaderTimeout)
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(serverConfig(0), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	errCh, err := srv.Start()
	require.NoError(t, err)
	assert.NotEqual(t, "127.0.0.1:0", srv.Addr(), "bound port is reported")

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	select {
	case _, ok := <-errCh:
		assert.False(t, ok, "error channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for server to stop")
	}
}

func TestServerStart_PortInUse(t *testing.T) {
	first := New(serverConfig(0), discardLogger())
	_, err := first.Start()
	require.NoError(t, err)

	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, port, _ := strings.Cut(first.Addr(), ":")

	second := New(serverConfig(0), discardLogger())
	second.srv.Addr = "127.0.0.1:" + port

	_, err = second.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listening on")
}

func TestMaxBodySize(t *testing.T) {
	srv := New(serverConfig(0), discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": len(body)})
	})

	t.Run("under limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("short note")))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2<<10))))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestSetupRouter_Routes(t *testing.T) {
	engine := journalRouter(t, 5*time.Second)

	routes := map[string]bool{}
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/build",
		"GET /-/metrics",
		"GET /api/v1/notes",
		"POST /api/v1/notes",
		"DELETE /api/v1/notes/:number",
		"GET /api/v1/statistics",
		"GET /api/v1/quotes",
		"GET /api/v1/quotes/today",
		"POST /api/v1/quotes",
		"DELETE /api/v1/quotes",
	} {
		assert.True(t, routes[want], "missing route: %s", want)
	}
}

func TestSetupRouter_JournalRoundTrip(t *testing.T) {
	engine := journalRouter(t, 5*time.Second)

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}

		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		return w
	}

	w := do(http.MethodPost, "/api/v1/notes", `{"text":"First entry","mood":"sad"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))

	w = do(http.MethodGet, "/api/v1/statistics", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats dto.StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)

	w = do(http.MethodDelete, "/api/v1/notes/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(http.MethodGet, "/api/v1/statistics", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSetupRouter_Health(t *testing.T) {
	engine := journalRouter(t, 0)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/ready", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "notes-document")
	assert.Contains(t, w.Body.String(), "quotes-document")
}

func TestSetupRouter_UnknownRoute(t *testing.T) {
	engine := journalRouter(t, 0)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeRouteNotFound, resp.Error.Code)
}

func TestSetupRouter_NilHandlers(t *testing.T) {
	engine := gin.New()

	require.NotPanics(t, func() {
		SetupRouter(engine, RouterConfig{Logger: discardLogger(), ServiceName: "mindnotes-test"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRouter_RecoveryWrapsRequestID(t *testing.T) {
	engine := journalRouter(t, 0)
	engine.GET("/api/v1/explode", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/explode", nil)
	req.Header.Set("X-Request-ID", "req-recovered-1")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-recovered-1", w.Header().Get("X-Request-ID"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.Equal(t, "req-recovered-1", resp.TraceID, "the ID middleware ran inside recovery")
}
