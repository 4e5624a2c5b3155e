// Package domain contains the journal's entities and business rules.
// Its errors describe journal failures only; the HTTP and terminal
// adapters decide how each kind is shown.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of failure. Match them with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("unavailable")

	// ErrNothingToAnalyze: statistics were requested for an empty journal.
	ErrNothingToAnalyze = errors.New("no notes to analyze yet")

	// ErrNoQuotes: a quote deletion was attempted on an empty collection.
	ErrNoQuotes = errors.New("no quotes to delete")
)

// Error is a failed operation on a journal entity or document.
//
//	quote "Stay kind" not found
//	note conflict: position 3 no longer exists
//	notes document unavailable: disk full
type Error struct {
	Kind   error
	Entity string
	Ref    string
	Reason string
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Entity)

	if e.Ref != "" {
		fmt.Fprintf(&b, " %q", e.Ref)
	}

	b.WriteByte(' ')
	b.WriteString(e.Kind.Error())

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Kind }

// NotFound reports that no entity matches ref. An empty ref is omitted.
func NotFound(entity, ref string) error {
	return &Error{Kind: ErrNotFound, Entity: entity, Ref: ref}
}

// Conflict reports that the collection changed under a resolved reference.
func Conflict(entity, reason string) error {
	return &Error{Kind: ErrConflict, Entity: entity, Reason: reason}
}

// Unavailable reports that a document could not be read or written.
func Unavailable(document, reason string) error {
	return &Error{Kind: ErrUnavailable, Entity: document, Reason: reason}
}

// ValidationError is input the journal refuses. Field names the offending
// input for API error details.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func InvalidValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func IsNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool         { return errors.Is(err, ErrConflict) }
func IsValidation(err error) bool       { return errors.Is(err, ErrValidation) }
func IsUnavailable(err error) bool      { return errors.Is(err, ErrUnavailable) }
func IsNothingToAnalyze(err error) bool { return errors.Is(err, ErrNothingToAnalyze) }
func IsNoQuotes(err error) bool         { return errors.Is(err, ErrNoQuotes) }
