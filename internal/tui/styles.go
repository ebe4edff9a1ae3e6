package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ikansh/ikansh-dev/internal/persona"
)

var (
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	italicStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250"))
)

// styles is the persona-dependent half of the palette.
type styles struct {
	accent    lipgloss.Style
	secondary lipgloss.Style
	title     lipgloss.Style
	tabOn     lipgloss.Style
	tabOff    lipgloss.Style
	card      lipgloss.Style
	cardDim   lipgloss.Style
	tag       lipgloss.Style
	finale    lipgloss.Style
	head      lipgloss.Style
	trail     lipgloss.Style
	fade      lipgloss.Style
}

func stylesFor(p persona.Persona) styles {
	t := p.Theme()
	return styles{
		accent:    lipgloss.NewStyle().Foreground(t.Primary),
		secondary: lipgloss.NewStyle().Foreground(t.Secondary),
		title:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		tabOn:     lipgloss.NewStyle().Background(t.Primary).Foreground(lipgloss.Color("0")).Bold(true).Padding(0, 1),
		tabOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		cardDim: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		tag:    lipgloss.NewStyle().Foreground(t.Secondary).Background(lipgloss.Color("236")).Padding(0, 1),
		finale: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Underline(true),
		head:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
		trail:  lipgloss.NewStyle().Foreground(t.Primary),
		fade:   lipgloss.NewStyle().Foreground(t.Secondary).Faint(true),
	}
}
