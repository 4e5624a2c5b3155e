package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen/mindnotes/internal/domain"
)

// DefaultNotesPath is the notes document location relative to the working directory.
const DefaultNotesPath = "notes.json"

// notesDocument is the on-disk shape: {"notes": [...]}.
type notesDocument struct {
	Notes []domain.Note `json:"notes"`
}

func (d notesDocument) complete() bool {
	return d.Notes != nil
}

// NoteStore holds the note collection in memory and rewrites the notes
// document after every mutation. It implements ports.NoteRepository and
// ports.HealthChecker.
type NoteStore struct {
	mu     sync.Mutex
	path   string
	notes  []domain.Note
	logger *slog.Logger
}

// NoteStoreConfig configures a NoteStore.
type NoteStoreConfig struct {
	// Path is the notes document. Defaults to DefaultNotesPath.
	Path string

	// Logger is used when the request context carries none.
	Logger *slog.Logger
}

// OpenNoteStore loads the notes document, falling back to an empty
// collection when it is missing or malformed. Nothing is written until the
// first mutation.
func OpenNoteStore(ctx context.Context, cfg NoteStoreConfig) *NoteStore {
	path := cfg.Path
	if path == "" {
		path = DefaultNotesPath
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc := Load(ctx, path, notesDocument{Notes: []domain.Note{}})

	logger.InfoContext(ctx, "notes loaded",
		slog.String("path", path),
		slog.Int("count", len(doc.Notes)),
	)

	return &NoteStore{
		path:   path,
		notes:  doc.Notes,
		logger: logger.With(slog.String("component", "jsonfile.NoteStore")),
	}
}

// Path returns the backing document path.
func (s *NoteStore) Path() string {
	return s.path
}

// List returns a copy of all notes in insertion order.
func (s *NoteStore) List(_ context.Context) ([]domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.notes), nil
}

// Append adds note, persists the whole collection and returns the note's
// number, taken under the same lock as the write.
func (s *NoteStore) Append(ctx context.Context, note domain.Note) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Note, len(s.notes), len(s.notes)+1)
	copy(next, s.notes)
	next = append(next, note)

	if err := s.persist(ctx, next); err != nil {
		return 0, err
	}

	s.notes = next

	return len(next), nil
}

// Remove deletes the note at ref's position if it is still ref.Note.
func (s *NoteStore) Remove(ctx context.Context, ref domain.NoteRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := ref.Index()
	if idx < 0 || idx >= len(s.notes) {
		return domain.Conflict("note", fmt.Sprintf("position %d no longer exists", ref.Number))
	}

	if s.notes[idx] != ref.Note {
		return domain.Conflict("note", fmt.Sprintf("position %d holds a different note", ref.Number))
	}

	next := slices.Delete(slices.Clone(s.notes), idx, idx+1)

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.notes = next

	return nil
}

// Name identifies the store in health reports.
func (s *NoteStore) Name() string {
	return "notes-document"
}

// Check reports whether the notes document can be written.
func (s *NoteStore) Check(_ context.Context) error {
	return checkWritable(s.path)
}

func (s *NoteStore) persist(ctx context.Context, notes []domain.Note) error {
	if err := Save(ctx, s.path, notesDocument{Notes: notes}); err != nil {
		s.logger.ErrorContext(ctx, "saving notes failed", slog.Any("error", err))

		return fmt.Errorf("saving notes: %w", domain.Unavailable("notes document", err.Error()))
	}

	return nil
}
