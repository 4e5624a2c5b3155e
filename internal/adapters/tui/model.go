// Package tui is the terminal front end of the journal: quote banner, entry
// form, action row and a scrollable list of note cards, built on bubbletea.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/mindnotes/internal/app"
	"github.com/jsamuelsen/mindnotes/internal/domain"
	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
)

const (
	defaultWidth  = 80
	defaultHeight = 40
	inputHeight   = 5
)

type promptKind int

const (
	promptNone promptKind = iota
	promptSearch
	promptDeleteNote
	promptAddQuote
	promptDeleteQuote
)

type focus int

const (
	focusText focus = iota
	focusMood
)

// Config wires the model to the application services.
type Config struct {
	Notes      *app.NoteService
	Quotes     *app.QuoteService
	Statistics *app.StatisticsService
	Cards      CardDimensions
	Logger     *slog.Logger
}

// Model is the journal screen.
type Model struct {
	ctx    context.Context //nolint:containedctx // Update carries no context
	notes  *app.NoteService
	quotes *app.QuoteService
	stats  *app.StatisticsService
	logger *slog.Logger

	keys   keyMap
	styles styles
	cards  CardDimensions

	input    textarea.Model
	prompt   textinput.Model
	help     help.Model
	viewport viewport.Model

	focus   focus
	mood    int
	quote   string
	layout  Layout
	width   int
	height  int
	kind    promptKind
	dialog  *dialog
	pending *domain.NoteRef

	searching bool
	keyword   string
	results   []domain.NumberedNote
}

// New builds the screen and loads the banner and note list.
func New(ctx context.Context, cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	input := textarea.New()
	input.Placeholder = "How are you feeling?"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(inputHeight)
	input.Focus()

	prompt := textinput.New()
	prompt.CharLimit = 0

	vp := viewport.New(defaultWidth, defaultHeight)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	m := Model{
		ctx:      ctx,
		notes:    cfg.Notes,
		quotes:   cfg.Quotes,
		stats:    cfg.Statistics,
		logger:   logger,
		keys:     defaultKeyMap(),
		styles:   defaultStyles(),
		cards:    cfg.Cards,
		input:    input,
		prompt:   prompt,
		help:     help.New(),
		viewport: vp,
		mood:     moodIndex(domain.DefaultMood),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	m.refresh()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model. Commands run synchronously: a confirmation
// is shown only after the document has been written.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.SetWidth(max(msg.Width-2, 10))
		m.help.Width = msg.Width
		m.resize()

		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		switch {
		case m.dialog != nil:
			m.updateDialog(msg)
			return m, nil
		case m.kind != promptNone:
			return m, m.updatePrompt(msg)
		default:
			return m, m.updateMain(msg)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd
	if m.kind != promptNone {
		m.prompt, cmd = m.prompt.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}

	return m, cmd
}

func (m *Model) updateMain(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.AddNote):
		m.addNote()
	case key.Matches(msg, m.keys.Search):
		return m.openPrompt(promptSearch)
	case key.Matches(msg, m.keys.DeleteNote):
		return m.openPrompt(promptDeleteNote)
	case key.Matches(msg, m.keys.Statistics):
		m.showStatistics()
	case key.Matches(msg, m.keys.AddQuote):
		return m.openPrompt(promptAddQuote)
	case key.Matches(msg, m.keys.DeleteQuote):
		return m.startDeleteQuote()
	case key.Matches(msg, m.keys.ClearSearch):
		if m.searching {
			m.refresh()
		}
	case key.Matches(msg, m.keys.PrevMood):
		m.cycleMood(-1)
	case key.Matches(msg, m.keys.NextMood):
		m.cycleMood(1)
	case key.Matches(msg, m.keys.SwitchFocus):
		m.toggleFocus()
	case m.focus == focusMood && key.Matches(msg, m.keys.CycleMood):
		if msg.Type == tea.KeyLeft {
			m.cycleMood(-1)
		} else {
			m.cycleMood(1)
		}
	case key.Matches(msg, m.viewport.KeyMap.PageUp, m.viewport.KeyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return cmd
	case m.focus == focusText:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return cmd
	}

	return nil
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return nil
	case key.Matches(msg, m.keys.Submit):
		kind, value := m.kind, m.prompt.Value()
		m.closePrompt()
		m.submitPrompt(kind, value)

		return nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)

	return cmd
}

func (m *Model) updateDialog(msg tea.KeyMsg) {
	if m.dialog.kind != dialogConfirm {
		switch msg.String() {
		case "enter", "esc", " ":
			m.dialog = nil
		}

		return
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.dialog = nil
		m.confirmDelete()
	case key.Matches(msg, m.keys.Decline):
		m.dialog = nil
		m.pending = nil
	}
}

func (m *Model) openPrompt(kind promptKind) tea.Cmd {
	m.kind = kind
	m.prompt.Reset()
	m.prompt.Prompt = "> "
	m.input.Blur()

	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.kind = promptNone
	m.prompt.Blur()
	m.prompt.Reset()

	if m.focus == focusText {
		m.input.Focus()
	}
}

func (m *Model) submitPrompt(kind promptKind, value string) {
	switch kind {
	case promptSearch:
		m.search(value)
	case promptDeleteNote:
		m.resolveDelete(value)
	case promptAddQuote:
		m.addQuote(value)
	case promptDeleteQuote:
		m.deleteQuote(value)
	case promptNone:
	}
}

func (m *Model) addNote() {
	_, err := m.notes.AddNote(m.ctx, app.AddNoteInput{Text: m.input.Value(), Mood: m.selectedMood()})
	if err != nil {
		m.fail("add_note", err, warning(titleEmptyNote, msgEmptyNote))
		return
	}

	m.input.Reset()
	m.refresh()
	m.dialog = info(titleSaved, msgNoteSaved)
}

func (m *Model) search(keyword string) {
	if keyword == "" {
		return
	}

	results, err := m.notes.Search(m.ctx, keyword)
	if err != nil {
		m.fail("search", err, nil)
		return
	}

	m.searching = true
	m.keyword = keyword
	m.results = results
	m.render()
}

func (m *Model) resolveDelete(value string) {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		m.dialog = warning(titleInvalid, msgInvalidNumber)
		return
	}

	ref, err := m.notes.ResolveNote(m.ctx, number)
	if err != nil {
		m.fail("resolve_note", err, warning(titleInvalid, msgInvalidNumber))
		return
	}

	m.pending = &ref
	m.dialog = &dialog{kind: dialogConfirm, title: titleConfirmDelete, body: msgConfirmDelete}
}

func (m *Model) confirmDelete() {
	ref := m.pending
	m.pending = nil

	if ref == nil {
		return
	}

	if err := m.notes.DeleteNote(m.ctx, *ref); err != nil {
		m.fail("delete_note", err, warning(titleInvalid, msgInvalidNumber))
		return
	}

	m.refresh()
	m.dialog = info(titleDeleted, msgNoteDeleted)
}

func (m *Model) showStatistics() {
	stats, err := m.stats.Statistics(m.ctx)
	if err != nil {
		m.fail("statistics", err, nil)
		return
	}

	m.dialog = info(titleStatistics, strings.TrimRight(stats.Summary(), "\n"))
}

func (m *Model) addQuote(text string) {
	if _, err := m.quotes.AddQuote(m.ctx, text); err != nil {
		m.fail("add_quote", err, warning(titleEmptyQuote, msgEmptyQuote))
		return
	}

	m.refresh()
	m.dialog = info(titleSuccess, msgQuoteSaved)
}

// startDeleteQuote reports an empty collection before asking for the text.
func (m *Model) startDeleteQuote() tea.Cmd {
	quotes, err := m.quotes.ListQuotes(m.ctx)
	if err != nil {
		m.fail("delete_quote", err, nil)
		return nil
	}

	if len(quotes) == 0 {
		m.dialog = info(titleInfo, msgNoQuotes)
		return nil
	}

	return m.openPrompt(promptDeleteQuote)
}

func (m *Model) deleteQuote(text string) {
	if err := m.quotes.DeleteQuote(m.ctx, text); err != nil {
		m.fail("delete_quote", err, warning(titleNotFound, msgQuoteNotFound))
		return
	}

	m.refresh()
	m.dialog = info(titleDeleted, msgQuoteDeleted)
}

// fail shows the dialog for err. Validation failures show blank.
func (m *Model) fail(action string, err error, blank *dialog) {
	d := failureDialog(err, blank)
	if d == nil {
		d = warning(titleError, err.Error())
	}

	logger := logging.FromContextOr(m.ctx, m.logger)
	if d.title == titleError {
		logger.ErrorContext(m.ctx, "journal action failed",
			slog.String("action", action),
			slog.Any("error", err),
		)
	} else {
		logger.DebugContext(m.ctx, "journal action declined",
			slog.String("action", action),
			slog.String("reason", err.Error()),
		)
	}

	m.dialog = d
}

// refresh re-reads the quote of the day and the full note list, leaving
// search mode.
func (m *Model) refresh() {
	quote, err := m.quotes.QuoteOfTheDay(m.ctx)
	if err != nil {
		m.logger.WarnContext(m.ctx, "reading quotes", slog.Any("error", err))
	} else {
		m.quote = quote
	}

	all, err := m.notes.ListNotes(m.ctx)
	if err != nil {
		m.logger.WarnContext(m.ctx, "reading notes", slog.Any("error", err))
	}

	m.searching = false
	m.keyword = ""
	m.results = all
	m.render()
}

// render lays out the current note list into the viewport.
func (m *Model) render() {
	empty := ""
	if m.searching {
		empty = msgNoNotesFound
	}

	m.layout = LayoutNotes(m.results, m.cards, m.styles, empty)
	m.resize()
	m.viewport.SetContent(m.layout.Content)
}

// resize gives the viewport whatever height the header leaves.
func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-lipgloss.Height(m.headerView()), 1)
}

func (m *Model) cycleMood(step int) {
	n := len(domain.Moods())
	m.mood = ((m.mood+step)%n + n) % n
}

func (m *Model) toggleFocus() {
	if m.focus == focusText {
		m.focus = focusMood
		m.input.Blur()

		return
	}

	m.focus = focusText
	m.input.Focus()
}

func (m *Model) selectedMood() domain.Mood {
	return domain.Moods()[m.mood]
}

func moodIndex(mood domain.Mood) int {
	for i, known := range domain.Moods() {
		if known == mood {
			return i
		}
	}

	return 0
}

// View implements tea.Model. Every frame is a full redraw.
func (m Model) View() string {
	switch {
	case m.dialog != nil:
		return m.place(m.dialogView())
	case m.kind != promptNone:
		return m.place(m.promptView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View())
}

func (m Model) headerView() string {
	sections := []string{
		m.bannerView(),
		m.input.View(),
		m.moodView(),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	}

	if m.searching {
		sections = append(sections, m.styles.status.Render(
			"Search: "+strconv.Quote(m.keyword)+" · "+strconv.Itoa(len(m.results))+" found · esc to clear"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) bannerView() string {
	title := m.styles.bannerTitle.Render("💬 Quote of the day:")

	return m.styles.banner.Width(m.width).Render(title + "\n" + `"` + m.quote + `"`)
}

func (m Model) moodView() string {
	options := make([]string, 0, len(domain.Moods()))

	for i, mood := range domain.Moods() {
		style := m.styles.mood

		switch {
		case i == m.mood && m.focus == focusMood:
			style = m.styles.moodFocused
		case i == m.mood:
			style = m.styles.moodActive
		}

		options = append(options, style.Render(string(mood)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, options...)
}

func (m Model) promptView() string {
	var label string

	switch m.kind {
	case promptSearch:
		label = labelSearch
	case promptDeleteNote:
		label = labelDeleteNote
	case promptAddQuote:
		label = labelAddQuote
	case promptDeleteQuote:
		label = labelDeleteQuote
	case promptNone:
	}

	footer := m.help.ShortHelpView([]key.Binding{m.keys.Submit, m.keys.Cancel})

	return m.styles.prompt.Render(lipgloss.JoinVertical(lipgloss.Left, label, m.prompt.View(), "", footer))
}

func (m Model) dialogView() string {
	style := m.styles.info

	var footer string

	switch m.dialog.kind {
	case dialogWarning:
		style = m.styles.warning
		footer = m.help.ShortHelpView([]key.Binding{m.keys.Submit})
	case dialogConfirm:
		style = m.styles.confirm
		footer = m.help.ShortHelpView([]key.Binding{m.keys.Confirm, m.keys.Decline})
	case dialogInfo:
		footer = m.help.ShortHelpView([]key.Binding{m.keys.Submit})
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.dialogTitle.Render(m.dialog.title),
		m.dialog.body,
		"",
		footer,
	))
}

func (m Model) place(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
