package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Keys of attributes that hold journal content. Their values are masked in
// every log destination, so log files never repeat what the user wrote.
const (
	AttrNoteText  = "note_text"
	AttrQuoteText = "quote_text"
	AttrKeyword   = "keyword"
)

var bearerPattern = regexp.MustCompile(`(?i)^bearer\s+\S+$`)

func redactOptions(extra ...masq.Option) []masq.Option {
	opts := []masq.Option{
		masq.WithFieldName(AttrNoteText),
		masq.WithFieldName(AttrQuoteText),
		masq.WithFieldName(AttrKeyword),

		// Headers and credentials a proxy in front of the API might forward.
		masq.WithFieldName("authorization"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(bearerPattern),
	}

	return append(opts, extra...)
}

// NewReplaceAttr returns a slog ReplaceAttr that masks journal content and
// credentials, plus whatever extra adds.
func NewReplaceAttr(extra ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(redactOptions(extra...)...)
}
