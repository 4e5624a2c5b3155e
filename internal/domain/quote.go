package domain

import (
	"strings"
	"time"
)

// EmptyQuotesPlaceholder is shown as the quote of the day when the collection is empty.
const EmptyQuotesPlaceholder = "Add some quotes to see them here!"

// unixEpochOrdinal is the proleptic Gregorian ordinal of 1970-01-01
// (0001-01-01 is day 1).
const unixEpochOrdinal = 719163

const secondsPerDay = 24 * 60 * 60

// Quote is a user-maintained motivational quote. It carries no metadata;
// duplicates are allowed and equality is exact text equality.
type Quote struct {
	// Content is the text of the quote.
	Content string
}

// NewQuote trims text and rejects blank input.
func NewQuote(text string) (Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Quote{}, Invalid("text", "must not be empty")
	}

	return Quote{Content: text}, nil
}

// DefaultQuotes returns the seed collection used when no quotes document exists.
func DefaultQuotes() []Quote {
	return []Quote{
		{Content: "The best way to get started is to quit talking and begin doing."},
		{Content: "Don’t let yesterday take up too much of today."},
		{Content: "It’s not whether you get knocked down, it’s whether you get up."},
		{Content: "If you are working on something exciting, it will keep you motivated."},
		{Content: "Success is not in what you have, but who you are."},
	}
}

// OrdinalDay returns the proleptic Gregorian day number of t's calendar date
// in t's location, with 0001-01-01 as day 1.
func OrdinalDay(t time.Time) int64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	// Midnight UTC is an exact multiple of a day, so the division is exact
	// for dates on both sides of the epoch.
	return midnight.Unix()/secondsPerDay + unixEpochOrdinal
}

// QuoteOfTheDay picks quotes[OrdinalDay(now) mod len(quotes)]. The same quote
// is returned all day; adding or removing quotes may change it.
func QuoteOfTheDay(quotes []Quote, now time.Time) string {
	if len(quotes) == 0 {
		return EmptyQuotesPlaceholder
	}

	index := OrdinalDay(now) % int64(len(quotes))
	if index < 0 {
		index += int64(len(quotes))
	}

	return quotes[index].Content
}
