package domain

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the minute-precision format of Note.CreatedAt.
const TimestampLayout = "2006-01-02 15:04"

// Note is one journal entry. Notes are never modified after creation.
type Note struct {
	// Text is the trimmed, non-empty body.
	Text string `json:"text"`

	// Mood is one of the five mood labels.
	Mood Mood `json:"mood"`

	// CreatedAt is the local creation time formatted with TimestampLayout.
	CreatedAt string `json:"created_at"`
}

// NewNote validates text and builds a note stamped with now, truncated to the minute.
func NewNote(text string, mood Mood, now time.Time) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, Invalid("text", "must not be empty")
	}

	if !mood.IsKnown() {
		return Note{}, InvalidValue("mood", "unknown mood", string(mood))
	}

	return Note{
		Text:      text,
		Mood:      mood,
		CreatedAt: FormatTimestamp(now),
	}, nil
}

// FormatTimestamp renders t in its own location with minute precision.
// Callers pass local time; seconds are dropped by the layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Hour returns the hour-of-day stored at offsets 11-12 of CreatedAt.
func (n Note) Hour() (int, bool) {
	if len(n.CreatedAt) < 13 {
		return 0, false
	}

	hour, err := strconv.Atoi(n.CreatedAt[11:13])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	return hour, true
}

// Matches reports whether keyword occurs in the note text, ignoring case.
// Mood and timestamp are not searched.
func (n Note) Matches(keyword string) bool {
	return strings.Contains(strings.ToLower(n.Text), strings.ToLower(keyword))
}

// NumberedNote pairs a note with its 1-based position in the full collection.
type NumberedNote struct {
	Number int
	Note   Note
}

// NoteRef is a resolved deletion target: the position the user chose and
// the note that sat there when it was resolved.
type NoteRef struct {
	Number int
	Note   Note
}

// Index returns the 0-based slice index of the reference.
func (r NoteRef) Index() int {
	return r.Number - 1
}
