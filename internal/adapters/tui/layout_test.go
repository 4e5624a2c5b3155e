package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mindnotes/internal/domain"
)

var testCards = CardDimensions{Width: 40, Height: 5, Spacing: 1}

func numbered(texts ...string) []domain.NumberedNote {
	out := make([]domain.NumberedNote, len(texts))
	for i, text := range texts {
		out[i] = domain.NumberedNote{
			Number: i + 1,
			Note:   domain.Note{Text: text, Mood: domain.MoodHappy, CreatedAt: "2026-10-19 09:05"},
		}
	}

	return out
}

func TestScrollExtent(t *testing.T) {
	tests := []struct {
		name  string
		cards int
		dims  CardDimensions
		want  int
	}{
		{"no cards", 0, testCards, 0},
		{"one card has no gap", 1, testCards, 5},
		{"gaps between cards", 3, testCards, 17},
		{"zero spacing", 4, CardDimensions{Width: 40, Height: 6}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrollExtent(tt.cards, tt.dims))
		})
	}
}

func TestLayoutNotes_ExtentMatchesRenderedHeight(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		texts := make([]string, n)
		for i := range texts {
			texts[i] = "entry"
		}

		layout := LayoutNotes(numbered(texts...), testCards, defaultStyles(), "")

		assert.Equal(t, n, layout.Cards)
		assert.Equal(t, ScrollExtent(n, testCards), layout.ContentHeight)
		assert.Equal(t, layout.ContentHeight, lipgloss.Height(layout.Content), "cards=%d", n)
	}
}

func TestLayoutNotes_CardContent(t *testing.T) {
	notes := numbered("Buy milk", "Call mom")
	notes[1].Note.Mood = domain.MoodSad

	layout := LayoutNotes(notes, testCards, defaultStyles(), "")

	assert.Contains(t, layout.Content, "1. [2026-10-19 09:05] 😃 Happy")
	assert.Contains(t, layout.Content, "2. [2026-10-19 09:05] 😔 Sad")
	assert.Contains(t, layout.Content, "Buy milk")
	assert.Less(t, strings.Index(layout.Content, "Buy milk"), strings.Index(layout.Content, "Call mom"))
}

func TestLayoutNotes_LongTextStaysInsideCard(t *testing.T) {
	long := strings.Repeat("rainy day thoughts ", 40)

	layout := LayoutNotes(numbered(long), testCards, defaultStyles(), "")

	assert.Equal(t, testCards.Height, lipgloss.Height(layout.Content))
	assert.Equal(t, testCards.Width, lipgloss.Width(layout.Content))
	assert.Contains(t, layout.Content, "…")
}

func TestLayoutNotes_Empty(t *testing.T) {
	t.Run("full list shows nothing", func(t *testing.T) {
		layout := LayoutNotes(nil, testCards, defaultStyles(), "")

		assert.Empty(t, layout.Content)
		assert.Zero(t, layout.ContentHeight)
	})

	t.Run("search shows the empty text", func(t *testing.T) {
		layout := LayoutNotes(nil, testCards, defaultStyles(), msgNoNotesFound)

		require.Contains(t, layout.Content, "No notes found.")
		assert.Zero(t, layout.Cards)
		assert.Equal(t, lipgloss.Height(layout.Content), layout.ContentHeight)
	})
}

func TestCardHeader(t *testing.T) {
	n := domain.NumberedNote{
		Number: 12,
		Note:   domain.Note{Text: "x", Mood: domain.MoodOverloaded, CreatedAt: "2026-01-02 03:04"},
	}

	assert.Equal(t, "12. [2026-01-02 03:04] 🤩 Overloaded", CardHeader(n))
}
