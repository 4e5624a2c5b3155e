package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/mindnotes/internal/domain"
	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
	"github.com/jsamuelsen/mindnotes/internal/ports"
)

// QuoteService orchestrates quote use cases and the quote of the day.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	quotes ports.QuoteRepository
	clock  ports.Clock
	exec   *Executor
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Quotes ports.QuoteRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Quotes == nil {
		panic("app: QuoteServiceConfig.Quotes is required")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.QuoteService"))

	return &QuoteService{
		quotes: cfg.Quotes,
		clock:  clock,
		exec:   NewExecutor(logger),
		logger: logger,
	}
}

// ListQuotes returns the quote collection in stored order.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.quotes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	return quotes, nil
}

// QuoteOfTheDay returns today's quote, or the placeholder text when the
// collection is empty.
func (s *QuoteService) QuoteOfTheDay(ctx context.Context) (string, error) {
	quotes, err := s.ListQuotes(ctx)
	if err != nil {
		return "", err
	}

	return domain.QuoteOfTheDay(quotes, s.clock.Now()), nil
}

// AddQuote appends the trimmed text. Blank text is a validation error.
func (s *QuoteService) AddQuote(ctx context.Context, text string) (domain.Quote, error) {
	cmd := Command[string, domain.Quote, domain.Quote, domain.Quote]{
		Name: "add_quote",
		Validate: func(_ context.Context, text string) error {
			if strings.TrimSpace(text) == "" {
				return domain.Invalid("text", "must not be empty")
			}

			return nil
		},
		Perform: func(_ context.Context, text string) (domain.Quote, error) {
			return domain.NewQuote(text)
		},
		Persist: func(ctx context.Context, _ string, quote domain.Quote) error {
			return s.quotes.Append(ctx, quote)
		},
	}

	return Execute(ctx, s.exec, cmd, text)
}

// DeleteQuote removes the first quote equal to text. Matching is exact,
// case-sensitive and untrimmed. An empty collection yields domain.ErrNoQuotes
// and an unmatched text a not-found error.
func (s *QuoteService) DeleteQuote(ctx context.Context, text string) error {
	cmd := Command[string, string, string, struct{}]{
		Name: "delete_quote",
		Validate: func(ctx context.Context, _ string) error {
			quotes, err := s.quotes.List(ctx)
			if err != nil {
				return fmt.Errorf("listing quotes: %w", err)
			}

			if len(quotes) == 0 {
				return domain.ErrNoQuotes
			}

			return nil
		},
		Perform: func(_ context.Context, text string) (string, error) {
			return text, nil
		},
		Verify: func(ctx context.Context, _ string, text string) (string, error) {
			quotes, err := s.quotes.List(ctx)
			if err != nil {
				return "", fmt.Errorf("listing quotes: %w", err)
			}

			for _, q := range quotes {
				if q.Content == text {
					return text, nil
				}
			}

			logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "no quote matches",
				slog.String(logging.AttrQuoteText, text),
				slog.Int("quotes", len(quotes)),
			)

			return "", domain.NotFound("quote", "")
		},
		Persist: func(ctx context.Context, _ string, text string) error {
			return s.quotes.Remove(ctx, text)
		},
	}

	_, err := Execute(ctx, s.exec, cmd, text)

	return err
}
