package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds_AreDistinct(t *testing.T) {
	kinds := []error{ErrNotFound, ErrConflict, ErrValidation, ErrUnavailable, ErrNothingToAnalyze, ErrNoQuotes}

	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
		want string
	}{
		{"quote not found", NotFound("quote", "Stay hungry."), ErrNotFound, `quote "Stay hungry." not found`},
		{"not found without ref", NotFound("note", ""), ErrNotFound, "note not found"},
		{"moved note", Conflict("note", "position 3 no longer exists"), ErrConflict, "note conflict: position 3 no longer exists"},
		{"conflict without reason", Conflict("note", ""), ErrConflict, "note conflict"},
		{"full disk", Unavailable("notes document", "disk full"), ErrUnavailable, "notes document unavailable: disk full"},
		{"unavailable without reason", Unavailable("quotes document", ""), ErrUnavailable, "quotes document unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.kind)

			var journalErr *Error
			require.ErrorAs(t, fmt.Errorf("wrapped: %w", tt.err), &journalErr)
			assert.Equal(t, tt.kind, journalErr.Kind)
		})
	}
}

func TestError_Fields(t *testing.T) {
	var journalErr *Error
	require.ErrorAs(t, NotFound("quote", "Keep going"), &journalErr)

	assert.Equal(t, "quote", journalErr.Entity)
	assert.Equal(t, "Keep going", journalErr.Ref)
	assert.Empty(t, journalErr.Reason)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"with field", Invalid("text", "must not be empty"), "validation failed for text: must not be empty"},
		{"without field", Invalid("", "bad input"), "validation failed: bad input"},
		{"with value", InvalidValue("number", "out of range", 7), "validation failed for number: out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrValidation)
		})
	}

	var validationErr *ValidationError
	require.ErrorAs(t, fmt.Errorf("deleting note: %w", fmt.Errorf("resolving: %w", InvalidValue("number", "out of range", 7))), &validationErr)
	assert.Equal(t, "number", validationErr.Field)
	assert.Equal(t, 7, validationErr.Value)
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", NotFound("quote", "x"), IsNotFound, true},
		{"validation is not not-found", Invalid("text", "empty"), IsNotFound, false},
		{"conflict", Conflict("note", "stale"), IsConflict, true},
		{"validation", Invalid("text", "empty"), IsValidation, true},
		{"unavailable", Unavailable("notes document", "io"), IsUnavailable, true},
		{"unavailable is not conflict", Unavailable("notes document", "io"), IsConflict, false},
		{"empty journal", ErrNothingToAnalyze, IsNothingToAnalyze, true},
		{"nil", nil, IsNothingToAnalyze, false},
		{"no quotes wrapped", fmt.Errorf("deleting quote: %w", ErrNoQuotes), IsNoQuotes, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}
