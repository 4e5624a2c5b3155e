package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mindnotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/mindnotes/internal/adapters/storage/jsonfile"
	"github.com/jsamuelsen/mindnotes/internal/app"
	"github.com/jsamuelsen/mindnotes/internal/domain"
	"github.com/jsamuelsen/mindnotes/internal/mocks"
	"github.com/jsamuelsen/mindnotes/internal/ports"
)

const seededNotes = `{
    "notes": [
        {"text": "Buy milk", "mood": "😃 Happy", "created_at": "2026-10-19 09:05"},
        {"text": "Call mom", "mood": "😐 Neutral", "created_at": "2026-10-19 09:40"},
        {"text": "buy bread", "mood": "😔 Sad", "created_at": "2026-10-19 14:12"}
    ]
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func eveningClock() ports.Clock {
	at := time.Date(2026, time.October, 19, 21, 7, 42, 0, time.Local)
	return ports.ClockFunc(func() time.Time { return at })
}

type journalFixture struct {
	router     *gin.Engine
	notesPath  string
	quotesPath string
}

// newJournalFixture serves the journal API over stores in a temp directory.
// notesJSON is written as the notes document when non-empty.
func newJournalFixture(t *testing.T, notesJSON string, quotes []domain.Quote) *journalFixture {
	t.Helper()

	dir := t.TempDir()
	f := &journalFixture{
		notesPath:  filepath.Join(dir, "notes.json"),
		quotesPath: filepath.Join(dir, "quotes.json"),
	}

	if notesJSON != "" {
		require.NoError(t, os.WriteFile(f.notesPath, []byte(notesJSON), 0o600))
	}

	ctx := t.Context()
	notes := jsonfile.OpenNoteStore(ctx, jsonfile.NoteStoreConfig{Path: f.notesPath, Logger: discardLogger()})
	quoteStore := jsonfile.OpenQuoteStore(ctx, jsonfile.QuoteStoreConfig{Path: f.quotesPath, Seed: quotes, Logger: discardLogger()})

	f.router = newAPIRouter(
		app.NewNoteService(app.NoteServiceConfig{Notes: notes, Clock: eveningClock(), Logger: discardLogger()}),
		app.NewQuoteService(app.QuoteServiceConfig{Quotes: quoteStore, Clock: eveningClock(), Logger: discardLogger()}),
		app.NewStatisticsService(notes, discardLogger()),
	)

	return f
}

func newAPIRouter(notes *app.NoteService, quotes *app.QuoteService, stats *app.StatisticsService) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	NewNoteHandler(notes).RegisterNoteRoutes(api)
	NewQuoteHandler(quotes).RegisterQuoteRoutes(api)
	NewStatisticsHandler(stats).RegisterStatisticsRoutes(api)

	return router
}

func (f *journalFixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func TestNoteHandler_ListNotes(t *testing.T) {
	f := newJournalFixture(t, seededNotes, nil)

	w := f.do(t, http.MethodGet, "/api/v1/notes", "")
	require.Equal(t, http.StatusOK, w.Code)

	page := decode[dto.PaginatedResponse[dto.NoteResponse]](t, w)
	require.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.Total)
	assert.False(t, page.HasMore)
	assert.Equal(t, dto.NoteResponse{
		Number:    1,
		Text:      "Buy milk",
		Mood:      "😃 Happy",
		MoodName:  "Happy",
		CreatedAt: "2026-10-19 09:05",
	}, page.Items[0])
}

func TestNoteHandler_ListNotes_Search(t *testing.T) {
	f := newJournalFixture(t, seededNotes, nil)

	tests := []struct {
		name        string
		query       string
		wantNumbers []int
	}{
		{"case-insensitive keyword", "?q=BUY", []int{1, 3}},
		{"single match keeps its number", "?q=bread", []int{3}},
		{"no match", "?q=yoga", []int{}},
		{"paged", "?limit=2", []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodGet, "/api/v1/notes"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			page := decode[dto.PaginatedResponse[dto.NoteResponse]](t, w)

			got := make([]int, len(page.Items))
			for i, n := range page.Items {
				got[i] = n.Number
			}

			assert.Equal(t, tt.wantNumbers, got)
		})
	}
}

func TestNoteHandler_ListNotes_BadQuery(t *testing.T) {
	f := newJournalFixture(t, seededNotes, nil)

	w := f.do(t, http.MethodGet, "/api/v1/notes?limit=500", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/notes?cursor=bogus!", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteHandler_AddNote(t *testing.T) {
	f := newJournalFixture(t, seededNotes, nil)

	w := f.do(t, http.MethodPost, "/api/v1/notes", `{"text":"  Went running  ","mood":"overloaded"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	note := decode[dto.NoteResponse](t, w)
	assert.Equal(t, 4, note.Number)
	assert.Equal(t, "Went running", note.Text)
	assert.Equal(t, string(domain.MoodOverloaded), note.Mood)
	assert.Equal(t, "2026-10-19 21:07", note.CreatedAt)

	raw, err := os.ReadFile(f.notesPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Went running")
}

func TestNoteHandler_AddNote_DefaultMood(t *testing.T) {
	f := newJournalFixture(t, "", nil)

	w := f.do(t, http.MethodPost, "/api/v1/notes", `{"text":"Quiet day"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	note := decode[dto.NoteResponse](t, w)
	assert.Equal(t, 1, note.Number)
	assert.Equal(t, "Neutral", note.MoodName)
}

func TestNoteHandler_AddNote_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  string
		wantField string
	}{
		{"blank text", `{"text":"   "}`, dto.ErrorCodeValidation, "text"},
		{"unknown mood", `{"text":"hi","mood":"Bored"}`, dto.ErrorCodeValidation, "mood"},
		{"malformed body", `{"text":`, dto.ErrorCodeBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newJournalFixture(t, "", nil)

			w := f.do(t, http.MethodPost, "/api/v1/notes", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			if tt.wantField != "" {
				assert.Contains(t, resp.Error.Details, tt.wantField)
			}

			_, err := os.Stat(f.notesPath)
			assert.ErrorIs(t, err, os.ErrNotExist, "nothing is written for a rejected note")
		})
	}
}

func TestNoteHandler_AddNote_Unavailable(t *testing.T) {
	repo := mocks.NewMockNoteRepository(t)
	repo.EXPECT().Append(mock.Anything, mock.Anything).
		Return(0, domain.Unavailable("notes document", "read-only file system"))

	notes := app.NewNoteService(app.NoteServiceConfig{Notes: repo, Clock: eveningClock(), Logger: discardLogger()})
	router := gin.New()
	NewNoteHandler(notes).RegisterNoteRoutes(router.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notes", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrorCodeUnavailable, decode[dto.ErrorResponse](t, w).Error.Code)
}

func TestNoteHandler_DeleteNote(t *testing.T) {
	f := newJournalFixture(t, seededNotes, nil)

	w := f.do(t, http.MethodDelete, "/api/v1/notes/2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	deleted := decode[dto.DeletedNoteResponse](t, w)
	assert.Equal(t, 2, deleted.Deleted.Number)
	assert.Equal(t, "Call mom", deleted.Deleted.Text)

	w = f.do(t, http.MethodGet, "/api/v1/notes", "")
	page := decode[dto.PaginatedResponse[dto.NoteResponse]](t, w)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Buy milk", page.Items[0].Text)
	assert.Equal(t, "buy bread", page.Items[1].Text)
	assert.Equal(t, 2, page.Items[1].Number)
}

func TestNoteHandler_DeleteNote_InvalidNumber(t *testing.T) {
	for _, number := range []string{"0", "4", "-1", "two", "1.5"} {
		t.Run(number, func(t *testing.T) {
			f := newJournalFixture(t, seededNotes, nil)

			w := f.do(t, http.MethodDelete, "/api/v1/notes/"+number, "")
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
			assert.Contains(t, resp.Error.Details, "number")

			raw, err := os.ReadFile(f.notesPath)
			require.NoError(t, err)
			assert.Equal(t, seededNotes, string(raw), "document untouched")
		})
	}
}

func TestStatisticsHandler_GetStatistics(t *testing.T) {
	f := newJournalFixture(t, seededNotes, nil)

	w := f.do(t, http.MethodGet, "/api/v1/statistics", "")
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode[dto.StatisticsResponse](t, w)
	assert.Equal(t, 3, stats.Total)
	require.Len(t, stats.Moods, 5)

	counts := map[string]int{}
	for _, m := range stats.Moods {
		counts[m.Name] = m.Count
	}

	assert.Equal(t, map[string]int{"Happy": 1, "Neutral": 1, "Sad": 1, "Angry": 0, "Overloaded": 0}, counts)
	require.NotNil(t, stats.MostActiveHour)
	assert.Equal(t, 9, *stats.MostActiveHour)
	assert.True(t, strings.HasPrefix(stats.Summary, "Mood statistics:\n😃 Happy: 1\n"))
}

func TestStatisticsHandler_EmptyJournal(t *testing.T) {
	f := newJournalFixture(t, "", nil)

	w := f.do(t, http.MethodGet, "/api/v1/statistics", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, dto.ErrorCodeEmpty, resp.Error.Code)
	assert.Equal(t, "no notes to analyze yet", resp.Error.Message)
}

func TestQuoteHandler_ListQuotes_Seeded(t *testing.T) {
	f := newJournalFixture(t, "", nil)

	w := f.do(t, http.MethodGet, "/api/v1/quotes", "")
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[dto.QuoteListResponse](t, w)
	assert.Equal(t, len(domain.DefaultQuotes()), list.Total)
}

func TestQuoteHandler_QuoteOfTheDay(t *testing.T) {
	quotes := []domain.Quote{{Content: "A"}, {Content: "B"}, {Content: "C"}, {Content: "D"}, {Content: "E"}}
	f := newJournalFixture(t, "", quotes)

	for range 2 {
		w := f.do(t, http.MethodGet, "/api/v1/quotes/today", "")
		require.Equal(t, http.StatusOK, w.Code)

		today := decode[dto.QuoteOfTheDayResponse](t, w)
		assert.Equal(t, "D", today.Text, "day 739908 selects index 3")
		assert.False(t, today.Placeholder)
	}
}

func TestQuoteHandler_QuoteOfTheDay_Empty(t *testing.T) {
	f := newJournalFixture(t, "", []domain.Quote{})

	w := f.do(t, http.MethodGet, "/api/v1/quotes/today", "")
	require.Equal(t, http.StatusOK, w.Code)

	today := decode[dto.QuoteOfTheDayResponse](t, w)
	assert.Equal(t, domain.EmptyQuotesPlaceholder, today.Text)
	assert.True(t, today.Placeholder)
}

func TestQuoteHandler_AddAndDelete(t *testing.T) {
	f := newJournalFixture(t, "", []domain.Quote{{Content: "Stay kind"}})

	w := f.do(t, http.MethodPost, "/api/v1/quotes", `{"text":"  Keep going  "}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Keep going", decode[dto.QuoteResponse](t, w).Text)

	w = f.do(t, http.MethodDelete, "/api/v1/quotes", `{"text":"Stay kind"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/quotes", "")
	list := decode[dto.QuoteListResponse](t, w)
	assert.Equal(t, []dto.QuoteResponse{{Text: "Keep going"}}, list.Quotes)

	raw, err := os.ReadFile(f.quotesPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"quotes\": [\n        \"Keep going\"\n    ]\n}\n", string(raw))
}

func TestQuoteHandler_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		seed       []domain.Quote
		method     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"blank quote", nil, http.MethodPost, `{"text":"  "}`, http.StatusBadRequest, dto.ErrorCodeValidation},
		{"delete from empty collection", []domain.Quote{}, http.MethodDelete, `{"text":"x"}`, http.StatusUnprocessableEntity, dto.ErrorCodeEmpty},
		{"delete unmatched", []domain.Quote{{Content: "Stay kind"}}, http.MethodDelete, `{"text":"stay kind"}`, http.StatusNotFound, dto.ErrorCodeNotFound},
		{"delete needs exact whitespace", []domain.Quote{{Content: "Stay kind"}}, http.MethodDelete, `{"text":"Stay kind "}`, http.StatusNotFound, dto.ErrorCodeNotFound},
		{"delete without text", []domain.Quote{{Content: "Stay kind"}}, http.MethodDelete, `{}`, http.StatusBadRequest, dto.ErrorCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newJournalFixture(t, "", tt.seed)

			w := f.do(t, tt.method, "/api/v1/quotes", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantCode, decode[dto.ErrorResponse](t, w).Error.Code)

			_, err := os.Stat(f.quotesPath)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestRegisterJournalRoutes(t *testing.T) {
	f := newJournalFixture(t, "", nil)

	routes := map[string]bool{}
	for _, r := range f.router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
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
