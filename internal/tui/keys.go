package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the browsing mode. While the contact form is
// being edited only Quit, Cancel, NextField and Send apply.
type KeyMap struct {
	Toggle    key.Binding
	Ika       key.Binding
	Genesis   key.Binding
	Sections  key.Binding
	Next      key.Binding
	Prev      key.Binding
	Filter    key.Binding
	Edit      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Send      key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch persona"),
		),
		Ika: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "IkaBrain"),
		),
		Genesis: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "TheGenesis"),
		),
		Sections: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "section"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter projects"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "write a message"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop editing"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// browseKeys and editKeys satisfy help.KeyMap for the two modes.
type browseKeys struct{ KeyMap }

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Sections, k.Filter, k.Edit, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Ika, k.Genesis},
		{k.Sections, k.Next, k.Prev},
		{k.Filter, k.Edit, k.Quit},
	}
}

type editKeys struct{ KeyMap }

func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Send, k.Cancel}
}

func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
