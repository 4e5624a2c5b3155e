// Package app contains the journal's use cases. Services depend on port
// interfaces, run every mutation through the command pipeline in
// executor.go and return domain errors for adapters to map.
//
// What does NOT belong here:
//   - Dialogs, key bindings, HTTP status codes (adapters)
//   - Document encoding and file handling (storage adapter)
//   - Mood, timestamp and tally rules (domain)
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

// NoteService orchestrates adding, listing, searching and deleting notes.
type NoteService struct {
	notes  ports.NoteRepository
	clock  ports.Clock
	exec   *Executor
	logger *slog.Logger
}

// NoteServiceConfig contains the note service dependencies.
type NoteServiceConfig struct {
	Notes  ports.NoteRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// NewNoteService creates a note service. Notes is required; Clock defaults
// to the wall clock and Logger to slog.Default().
func NewNoteService(cfg NoteServiceConfig) *NoteService {
	if cfg.Notes == nil {
		panic("app: NoteServiceConfig.Notes is required")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.NoteService"))

	return &NoteService{
		notes:  cfg.Notes,
		clock:  clock,
		exec:   NewExecutor(logger),
		logger: logger,
	}
}

// AddNoteInput is the entry form content.
type AddNoteInput struct {
	Text string
	Mood domain.Mood
}

// AddNote stamps the text with the current time and appends it.
// Blank text or an unknown mood is a validation error and nothing is stored.
func (s *NoteService) AddNote(ctx context.Context, in AddNoteInput) (domain.NumberedNote, error) {
	var number int

	cmd := Command[AddNoteInput, domain.Note, domain.Note, domain.NumberedNote]{
		Name: "add_note",
		Validate: func(_ context.Context, in AddNoteInput) error {
			if strings.TrimSpace(in.Text) == "" {
				return domain.Invalid("text", "must not be empty")
			}

			if !in.Mood.IsKnown() {
				return domain.InvalidValue("mood", "unknown mood", string(in.Mood))
			}

			return nil
		},
		Perform: func(_ context.Context, in AddNoteInput) (domain.Note, error) {
			return domain.NewNote(in.Text, in.Mood, s.clock.Now())
		},
		Persist: func(ctx context.Context, _ AddNoteInput, note domain.Note) (err error) {
			number, err = s.notes.Append(ctx, note)
			return err
		},
		Respond: func(_ context.Context, _ AddNoteInput, note domain.Note) (domain.NumberedNote, error) {
			return domain.NumberedNote{Number: number, Note: note}, nil
		},
	}

	return Execute(ctx, s.exec, cmd, in)
}

// ListNotes returns every note numbered from 1 in insertion order.
func (s *NoteService) ListNotes(ctx context.Context) ([]domain.NumberedNote, error) {
	all, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	out := make([]domain.NumberedNote, len(all))
	for i, n := range all {
		out[i] = domain.NumberedNote{Number: i + 1, Note: n}
	}

	return out, nil
}

// Search returns the notes whose text contains keyword, ignoring case, in
// their original order. Each result keeps its number in the full collection.
// A blank keyword is no search at all and yields nil.
func (s *NoteService) Search(ctx context.Context, keyword string) ([]domain.NumberedNote, error) {
	if keyword == "" {
		return nil, nil
	}

	all, err := s.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.NumberedNote, 0, len(all))
	for _, n := range all {
		if n.Note.Matches(keyword) {
			matches = append(matches, n)
		}
	}

	logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "notes searched",
		slog.String(logging.AttrKeyword, keyword),
		slog.Int("matches", len(matches)),
		slog.Int("total", len(all)),
	)

	return matches, nil
}

// ResolveNote turns a 1-based number into a reference to the note currently
// at that position. Numbers outside [1, count] are a validation error.
func (s *NoteService) ResolveNote(ctx context.Context, number int) (domain.NoteRef, error) {
	all, err := s.notes.List(ctx)
	if err != nil {
		return domain.NoteRef{}, fmt.Errorf("listing notes: %w", err)
	}

	if number < 1 || number > len(all) {
		return domain.NoteRef{}, domain.InvalidValue("number", "out of range", number)
	}

	return domain.NoteRef{Number: number, Note: all[number-1]}, nil
}

// DeleteNote removes the referenced note. If the collection changed since
// the reference was resolved, nothing is removed and a conflict is returned.
func (s *NoteService) DeleteNote(ctx context.Context, ref domain.NoteRef) error {
	cmd := Command[domain.NoteRef, domain.NoteRef, domain.NoteRef, struct{}]{
		Name: "delete_note",
		Validate: func(_ context.Context, ref domain.NoteRef) error {
			if ref.Number < 1 {
				return domain.InvalidValue("number", "out of range", ref.Number)
			}

			return nil
		},
		Perform: func(_ context.Context, ref domain.NoteRef) (domain.NoteRef, error) {
			return ref, nil
		},
		Verify: func(ctx context.Context, _ domain.NoteRef, ref domain.NoteRef) (domain.NoteRef, error) {
			current, err := s.ResolveNote(ctx, ref.Number)
			if err != nil || current.Note != ref.Note {
				return domain.NoteRef{}, domain.Conflict("note",
					fmt.Sprintf("note %d is no longer the selected note", ref.Number))
			}

			return current, nil
		},
		Persist: func(ctx context.Context, _ domain.NoteRef, ref domain.NoteRef) error {
			return s.notes.Remove(ctx, ref)
		},
	}

	_, err := Execute(ctx, s.exec, cmd, ref)

	return err
}

// DeleteNumber resolves number and deletes the note in one step. Callers
// that reach it have already confirmed the deletion.
func (s *NoteService) DeleteNumber(ctx context.Context, number int) (domain.Note, error) {
	ref, err := s.ResolveNote(ctx, number)
	if err != nil {
		return domain.Note{}, err
	}

	if err := s.DeleteNote(ctx, ref); err != nil {
		return domain.Note{}, err
	}

	return ref.Note, nil
}
