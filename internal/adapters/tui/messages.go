package tui

import (
	"errors"

	"github.com/jsamuelsen/mindnotes/internal/domain"
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogWarning
	dialogConfirm
)

// dialog is a modal message. Confirm dialogs wait for yes or no; the others
// close on any of enter, esc or space.
type dialog struct {
	kind  dialogKind
	title string
	body  string
}

func info(title, body string) *dialog    { return &dialog{kind: dialogInfo, title: title, body: body} }
func warning(title, body string) *dialog { return &dialog{kind: dialogWarning, title: title, body: body} }

// Dialog texts.
const (
	titleSaved         = "Saved"
	msgNoteSaved       = "Your note has been added!"
	titleEmptyNote     = "Empty Note"
	msgEmptyNote       = "Please enter some text for the note."
	titleInvalid       = "Invalid"
	msgInvalidNumber   = "Invalid note number."
	titleConfirmDelete = "Confirm Delete"
	msgConfirmDelete   = "Are you sure you want to delete this note?"
	titleDeleted       = "Deleted"
	msgNoteDeleted     = "Note deleted successfully."
	titleStatistics    = "Statistics"
	msgNothingToShow   = "No notes to analyze yet."
	titleSuccess       = "Success"
	msgQuoteSaved      = "Your quote has been added!"
	titleEmptyQuote    = "Empty Quote"
	msgEmptyQuote      = "You must enter a quote."
	titleInfo          = "Info"
	msgNoQuotes        = "No quotes to delete."
	titleNotFound      = "Not found"
	msgQuoteNotFound   = "Quote not found."
	msgQuoteDeleted    = "Quote deleted successfully!"
	titleChanged       = "Changed"
	msgNoteChanged     = "The journal changed before the note was deleted. Nothing was removed."
	titleError         = "Error"
	msgNotSaved        = "The journal could not be saved. Your change was not kept."

	msgNoNotesFound = "No notes found."
)

// Prompt labels.
const (
	labelSearch      = "Enter keyword to search:"
	labelDeleteNote  = "Enter note number to delete (starting from 1):"
	labelAddQuote    = "Enter your quote:"
	labelDeleteQuote = "Paste the exact quote text to delete:"
)

// failureDialog picks the dialog for a failed command. blank is shown for
// validation failures, which for every prompt mean an empty entry.
func failureDialog(err error, blank *dialog) *dialog {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return blank
	case errors.Is(err, domain.ErrNothingToAnalyze):
		return info(titleStatistics, msgNothingToShow)
	case errors.Is(err, domain.ErrNoQuotes):
		return info(titleInfo, msgNoQuotes)
	case errors.Is(err, domain.ErrNotFound):
		return warning(titleNotFound, msgQuoteNotFound)
	case errors.Is(err, domain.ErrConflict):
		return warning(titleChanged, msgNoteChanged)
	case errors.Is(err, domain.ErrUnavailable):
		return warning(titleError, msgNotSaved)
	default:
		return warning(titleError, err.Error())
	}
}
