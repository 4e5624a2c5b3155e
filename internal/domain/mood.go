package domain

import "strings"

// Mood is the label attached to a note. The stored form is the glyph,
// a space, and the name, e.g. "😐 Neutral".
type Mood string

// The five moods a note can carry.
const (
	MoodHappy      Mood = "😃 Happy"
	MoodNeutral    Mood = "😐 Neutral"
	MoodSad        Mood = "😔 Sad"
	MoodAngry      Mood = "😡 Angry"
	MoodOverloaded Mood = "🤩 Overloaded"
)

// DefaultMood is preselected in the entry form.
const DefaultMood = MoodNeutral

// moods is the fixed display and reporting order.
var moods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodAngry, MoodOverloaded}

// Moods returns the five moods in display order.
func Moods() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)

	return out
}

// Name returns the label without its glyph ("Neutral").
func (m Mood) Name() string {
	if _, name, ok := strings.Cut(string(m), " "); ok {
		return name
	}

	return string(m)
}

// Glyph returns the emoji prefix of the label.
func (m Mood) Glyph() string {
	if glyph, _, ok := strings.Cut(string(m), " "); ok {
		return glyph
	}

	return ""
}

// IsKnown reports whether m is one of the five moods.
func (m Mood) IsKnown() bool {
	for _, known := range moods {
		if m == known {
			return true
		}
	}

	return false
}

// ParseMood accepts either a full label ("😃 Happy") or a bare name in any
// case ("happy"). An empty string yields DefaultMood.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMood, nil
	}

	for _, m := range moods {
		if s == string(m) || strings.EqualFold(s, m.Name()) {
			return m, nil
		}
	}

	return "", InvalidValue("mood", "must be one of Happy, Neutral, Sad, Angry, Overloaded", s)
}
