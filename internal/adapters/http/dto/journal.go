package dto

import (
	"github.com/jsamuelsen/mindnotes/internal/domain"
)

// NoteRequest is the body of POST /notes. An empty mood means Neutral.
type NoteRequest struct {
	Text string `json:"text" validate:"required,notempty,max=10000"`
	Mood string `json:"mood" validate:"omitempty,mood"`
}

// ListNotesRequest is the query of GET /notes.
type ListNotesRequest struct {
	PaginationRequest

	// Q is an optional search keyword.
	Q string `form:"q" validate:"max=200"`
}

// AddQuoteRequest is the body of POST /quotes.
type AddQuoteRequest struct {
	Text string `json:"text" validate:"required,notempty,max=2000"`
}

// DeleteQuoteRequest is the body of DELETE /quotes. Text must match a stored
// quote exactly, so it is not trimmed.
type DeleteQuoteRequest struct {
	Text string `json:"text" validate:"required"`
}

// NoteResponse is one numbered note.
type NoteResponse struct {
	Number    int    `json:"number"`
	Text      string `json:"text"`
	Mood      string `json:"mood"`
	MoodName  string `json:"moodName"`
	CreatedAt string `json:"createdAt"`
}

// NewNoteResponse converts a numbered note.
func NewNoteResponse(n domain.NumberedNote) NoteResponse {
	return NoteResponse{
		Number:    n.Number,
		Text:      n.Note.Text,
		Mood:      string(n.Note.Mood),
		MoodName:  n.Note.Mood.Name(),
		CreatedAt: n.Note.CreatedAt,
	}
}

// NewNoteResponses converts numbered notes, keeping their order.
func NewNoteResponses(notes []domain.NumberedNote) []NoteResponse {
	out := make([]NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = NewNoteResponse(n)
	}

	return out
}

// DeletedNoteResponse echoes the note removed by DELETE /notes/:number.
type DeletedNoteResponse struct {
	Deleted NoteResponse `json:"deleted"`
}

// QuoteResponse is one quote.
type QuoteResponse struct {
	Text string `json:"text"`
}

// QuoteListResponse is the whole quote collection in stored order.
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
}

// NewQuoteListResponse converts the quote collection.
func NewQuoteListResponse(quotes []domain.Quote) QuoteListResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = QuoteResponse{Text: q.Content}
	}

	return QuoteListResponse{Quotes: out, Total: len(out)}
}

// QuoteOfTheDayResponse is the body of GET /quotes/today. Placeholder is
// true when the collection is empty and Text is the hint to add quotes.
type QuoteOfTheDayResponse struct {
	Text        string `json:"text"`
	Placeholder bool   `json:"placeholder"`
}

// NewQuoteOfTheDayResponse wraps the selected text.
func NewQuoteOfTheDayResponse(text string) QuoteOfTheDayResponse {
	return QuoteOfTheDayResponse{
		Text:        text,
		Placeholder: text == domain.EmptyQuotesPlaceholder,
	}
}

// MoodCountResponse is the tally of one mood.
type MoodCountResponse struct {
	Mood  string `json:"mood"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatisticsResponse is the body of GET /statistics. MostActiveHour is
// omitted when no note carried a readable hour.
type StatisticsResponse struct {
	Total          int                 `json:"total"`
	Moods          []MoodCountResponse `json:"moods"`
	MostActiveHour *int                `json:"mostActiveHour,omitempty"`
	Summary        string              `json:"summary"`
}

// NewStatisticsResponse converts computed statistics.
func NewStatisticsResponse(s *domain.Statistics) StatisticsResponse {
	moods := make([]MoodCountResponse, len(s.MoodCounts))
	for i, mc := range s.MoodCounts {
		moods[i] = MoodCountResponse{
			Mood:  string(mc.Mood),
			Name:  mc.Mood.Name(),
			Count: mc.Count,
		}
	}

	resp := StatisticsResponse{
		Total:   s.Total,
		Moods:   moods,
		Summary: s.Summary(),
	}

	if s.HourKnown {
		hour := s.MostActiveHour
		resp.MostActiveHour = &hour
	}

	return resp
}
