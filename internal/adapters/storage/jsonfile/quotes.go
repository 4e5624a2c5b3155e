package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen/mindnotes/internal/domain"
)

// DefaultQuotesPath is the quotes document location relative to the working directory.
const DefaultQuotesPath = "quotes.json"

// quotesDocument is the on-disk shape: {"quotes": ["...", ...]}.
type quotesDocument struct {
	Quotes []string `json:"quotes"`
}

func (d quotesDocument) complete() bool {
	return d.Quotes != nil
}

// QuoteStore holds the quote collection in memory and rewrites the quotes
// document after every mutation.
type QuoteStore struct {
	mu     sync.Mutex
	path   string
	quotes []string
	logger *slog.Logger
}

// QuoteStoreConfig configures a QuoteStore.
type QuoteStoreConfig struct {
	// Path is the quotes document. Defaults to DefaultQuotesPath.
	Path string

	// Seed is used when the document is missing or malformed.
	// Defaults to domain.DefaultQuotes().
	Seed []domain.Quote

	Logger *slog.Logger
}

// OpenQuoteStore loads the quotes document or falls back to the seed quotes.
func OpenQuoteStore(ctx context.Context, cfg QuoteStoreConfig) *QuoteStore {
	path := cfg.Path
	if path == "" {
		path = DefaultQuotesPath
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seed := cfg.Seed
	if seed == nil {
		seed = domain.DefaultQuotes()
	}

	doc := Load(ctx, path, quotesDocument{Quotes: contents(seed)})

	logger.InfoContext(ctx, "quotes loaded",
		slog.String("path", path),
		slog.Int("count", len(doc.Quotes)),
	)

	return &QuoteStore{
		path:   path,
		quotes: doc.Quotes,
		logger: logger.With(slog.String("component", "jsonfile.QuoteStore")),
	}
}

// Path returns the backing document path.
func (s *QuoteStore) Path() string {
	return s.path
}

// List returns a copy of all quotes in stored order.
func (s *QuoteStore) List(_ context.Context) ([]domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Quote, len(s.quotes))
	for i, q := range s.quotes {
		out[i] = domain.Quote{Content: q}
	}

	return out, nil
}

// Append adds quote and persists the whole collection.
func (s *QuoteStore) Append(ctx context.Context, quote domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, len(s.quotes), len(s.quotes)+1)
	copy(next, s.quotes)
	next = append(next, quote.Content)

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.quotes = next

	return nil
}

// Remove deletes the first quote equal to text. Matching is exact:
// case-sensitive and untrimmed.
func (s *QuoteStore) Remove(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.quotes, text)
	if idx < 0 {
		return domain.NotFound("quote", "")
	}

	next := slices.Delete(slices.Clone(s.quotes), idx, idx+1)

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.quotes = next

	return nil
}

// Name identifies the store in health reports.
func (s *QuoteStore) Name() string {
	return "quotes-document"
}

// Check reports whether the quotes document can be written.
func (s *QuoteStore) Check(_ context.Context) error {
	return checkWritable(s.path)
}

func (s *QuoteStore) persist(ctx context.Context, quotes []string) error {
	if err := Save(ctx, s.path, quotesDocument{Quotes: quotes}); err != nil {
		s.logger.ErrorContext(ctx, "saving quotes failed", slog.Any("error", err))

		return fmt.Errorf("saving quotes: %w", domain.Unavailable("quotes document", err.Error()))
	}

	return nil
}

func contents(quotes []domain.Quote) []string {
	out := make([]string, len(quotes))
	for i, q := range quotes {
		out[i] = q.Content
	}

	return out
}
