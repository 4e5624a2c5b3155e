package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/mindnotes/internal/domain"
	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
	"github.com/jsamuelsen/mindnotes/internal/ports"
)

// StatisticsService tallies moods and activity hours over the note collection.
type StatisticsService struct {
	notes  ports.NoteRepository
	logger *slog.Logger
}

// NewStatisticsService creates a statistics service reading from notes.
func NewStatisticsService(notes ports.NoteRepository, logger *slog.Logger) *StatisticsService {
	if logger == nil {
		logger = slog.Default()
	}

	return &StatisticsService{
		notes:  notes,
		logger: logger.With(slog.String("component", "app.StatisticsService")),
	}
}

// Statistics computes the mood counts and most active hour.
// An empty journal yields domain.ErrNothingToAnalyze.
func (s *StatisticsService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	stats, err := domain.ComputeStatistics(notes)
	if err != nil {
		return nil, err
	}

	if counted := countedNotes(stats); counted != len(notes) {
		logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "notes with unknown mood skipped",
			slog.Int("skipped", len(notes)-counted),
		)
	}

	return stats, nil
}

func countedNotes(stats *domain.Statistics) int {
	total := 0
	for _, mc := range stats.MoodCounts {
		total += mc.Count
	}

	return total
}
