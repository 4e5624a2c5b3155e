package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the journal screen reacts to. The action
// bindings double as the action row rendered under the entry form.
type keyMap struct {
	AddNote     key.Binding
	Search      key.Binding
	DeleteNote  key.Binding
	Statistics  key.Binding
	AddQuote    key.Binding
	DeleteQuote key.Binding
	ClearSearch key.Binding
	Quit        key.Binding

	PrevMood    key.Binding
	NextMood    key.Binding
	CycleMood   key.Binding
	SwitchFocus key.Binding

	Submit  key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Decline key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		AddNote:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add note")),
		Search:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		DeleteNote:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete note")),
		Statistics:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "statistics")),
		AddQuote:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "add quote")),
		DeleteQuote: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete quote")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		PrevMood:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p/ctrl+n", "mood")),
		NextMood:    key.NewBinding(key.WithKeys("ctrl+n")),
		CycleMood:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "mood")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "text/mood")),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes")),
		Decline: key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

// ShortHelp is the action row.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddNote, k.Search, k.DeleteNote, k.Statistics, k.AddQuote, k.DeleteQuote, k.Quit}
}

// FullHelp groups the actions with the form navigation keys.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.SwitchFocus, k.CycleMood, k.PrevMood, k.ClearSearch},
	}
}
