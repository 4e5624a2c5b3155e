// Package ports defines interfaces for the journal's external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for cancellation and logging
//   - Return domain types, never storage documents
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/mindnotes/internal/domain"
)

// NoteRepository owns the ordered note collection.
// Every mutation is persisted before the method returns; a failed write
// leaves the in-memory collection unchanged.
type NoteRepository interface {
	// List returns a copy of all notes in insertion order.
	List(ctx context.Context) ([]domain.Note, error)

	// Append adds a note at the end of the collection and returns its
	// 1-based number. Returns domain.ErrUnavailable if the document cannot
	// be written.
	Append(ctx context.Context, note domain.Note) (int, error)

	// Remove deletes the note a reference points at.
	// Returns domain.ErrConflict if the note at ref's position is no longer
	// ref.Note, and domain.ErrUnavailable if the document cannot be written.
	Remove(ctx context.Context, ref domain.NoteRef) error
}

// QuoteRepository owns the ordered quote collection.
type QuoteRepository interface {
	// List returns a copy of all quotes in stored order.
	List(ctx context.Context) ([]domain.Quote, error)

	// Append adds a quote at the end of the collection.
	// Returns domain.ErrUnavailable if the document cannot be written.
	Append(ctx context.Context, quote domain.Quote) error

	// Remove deletes the first quote whose content equals text exactly.
	// Returns domain.ErrNotFound when no quote matches.
	Remove(ctx context.Context, text string) error
}

// Clock supplies the current local time. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the local time zone.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
