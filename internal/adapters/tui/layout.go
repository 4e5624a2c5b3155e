package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/mindnotes/internal/domain"
)

// CardDimensions sizes a note card in terminal cells. Width and Height
// include the border.
type CardDimensions struct {
	Width   int
	Height  int
	Spacing int
}

// Layout is one full render of the note list.
type Layout struct {
	Content string
	Cards   int
	// ContentHeight is the scroll extent: every card plus the gaps between
	// them, or the height of the empty-state text.
	ContentHeight int
}

// LayoutNotes stacks one fixed-size card per note. With no notes the
// content is empty, or emptyText when it is set.
func LayoutNotes(notes []domain.NumberedNote, dims CardDimensions, st styles, emptyText string) Layout {
	if len(notes) == 0 {
		if emptyText == "" {
			return Layout{}
		}

		content := st.empty.Render(emptyText)

		return Layout{Content: content, ContentHeight: lipgloss.Height(content)}
	}

	gap := strings.Repeat("\n", dims.Spacing)

	var b strings.Builder

	for i, n := range notes {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(gap)
		}

		b.WriteString(renderCard(n, dims, st))
	}

	return Layout{
		Content:       b.String(),
		Cards:         len(notes),
		ContentHeight: ScrollExtent(len(notes), dims),
	}
}

// ScrollExtent is the height of n stacked cards.
func ScrollExtent(n int, dims CardDimensions) int {
	if n <= 0 {
		return 0
	}

	return n*dims.Height + (n-1)*dims.Spacing
}

// CardHeader is the first line of a card: number, timestamp and mood.
func CardHeader(n domain.NumberedNote) string {
	return fmt.Sprintf("%d. [%s] %s", n.Number, n.Note.CreatedAt, n.Note.Mood)
}

func renderCard(n domain.NumberedNote, dims CardDimensions, st styles) string {
	inner := max(dims.Width-4, 1)
	rows := max(dims.Height-2, 1)

	header := st.cardHeader.Render(CardHeader(n))
	body := lipgloss.NewStyle().Width(inner).Render(header + "\n" + n.Note.Text)

	lines := strings.Split(body, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
		lines[rows-1] = ellipsize(lines[rows-1], inner)
	}

	return st.card.
		Width(dims.Width - 2).
		Height(rows).
		Render(strings.Join(lines, "\n"))
}

// ellipsize marks a line cut off by the card height.
func ellipsize(line string, width int) string {
	line = strings.TrimRight(line, " ")
	if lipgloss.Width(line) >= width {
		runes := []rune(line)
		line = string(runes[:max(len(runes)-1, 0)])
	}

	return line + "…"
}
