package domain

import (
	"fmt"
	"strings"
)

// MoodCount is the number of notes tagged with one mood.
type MoodCount struct {
	Mood  Mood
	Count int
}

// Statistics summarizes a journal.
type Statistics struct {
	// MoodCounts holds all five moods in display order, zero counts included.
	MoodCounts []MoodCount

	// MostActiveHour is the hour of day (0-23) with the most notes.
	MostActiveHour int

	// HourKnown is false when no note carried a parseable hour.
	HourKnown bool

	// Total is the number of notes analyzed.
	Total int
}

// ComputeStatistics tallies moods and creation hours.
//
// The most active hour is the one with the strictly highest tally; on a tie
// the hour seen first in note order wins. Notes with an unknown mood are not
// counted in MoodCounts, and notes with a malformed timestamp do not
// contribute to the hour tally.
func ComputeStatistics(notes []Note) (*Statistics, error) {
	if len(notes) == 0 {
		return nil, ErrNothingToAnalyze
	}

	counts := make(map[Mood]int, len(moods))
	for _, n := range notes {
		if n.Mood.IsKnown() {
			counts[n.Mood]++
		}
	}

	var (
		hourTally = make(map[int]int)
		firstSeen []int
	)

	for _, n := range notes {
		hour, ok := n.Hour()
		if !ok {
			continue
		}

		if _, seen := hourTally[hour]; !seen {
			firstSeen = append(firstSeen, hour)
		}

		hourTally[hour]++
	}

	stats := &Statistics{
		MoodCounts: make([]MoodCount, 0, len(moods)),
		Total:      len(notes),
	}

	for _, m := range moods {
		stats.MoodCounts = append(stats.MoodCounts, MoodCount{Mood: m, Count: counts[m]})
	}

	best := -1
	for _, hour := range firstSeen {
		if hourTally[hour] > best {
			best = hourTally[hour]
			stats.MostActiveHour = hour
			stats.HourKnown = true
		}
	}

	return stats, nil
}

// Count returns the tally for m, or zero.
func (s *Statistics) Count(m Mood) int {
	for _, mc := range s.MoodCounts {
		if mc.Mood == m {
			return mc.Count
		}
	}

	return 0
}

// Summary renders the multi-line report shown to the user.
func (s *Statistics) Summary() string {
	var b strings.Builder

	b.WriteString("Mood statistics:\n")

	for _, mc := range s.MoodCounts {
		fmt.Fprintf(&b, "%s: %d\n", mc.Mood, mc.Count)
	}

	if s.HourKnown {
		fmt.Fprintf(&b, "\nMost active hour: %d:00\n", s.MostActiveHour)
	}

	return b.String()
}
