package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ikansh/ikansh-dev/internal/content"
	"github.com/ikansh/ikansh-dev/internal/persona"
)

func (m Model) View() string {
	st := stylesFor(m.persona.Current())

	var b strings.Builder
	b.WriteString(m.nav(st))
	b.WriteString("\n\n")

	switch m.section {
	case sectionHome:
		b.WriteString(m.home(st))
	case sectionIdentity:
		b.WriteString(m.identity(st))
	case sectionProjects:
		b.WriteString(m.projects(st))
	case sectionSkills:
		b.WriteString(m.skills(st))
	case sectionPhilosophy:
		b.WriteString(m.philosophy(st))
	case sectionContact:
		b.WriteString(m.contact(st))
	}

	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render(m.profile.Footer.Copyright))
	b.WriteString("\n")
	if m.editing {
		b.WriteString(m.help.View(editKeys{m.keys}))
	} else {
		b.WriteString(m.help.View(browseKeys{m.keys}))
	}
	return b.String()
}

func (m Model) nav(st styles) string {
	tabs := make([]string, len(sectionTitles))
	for i, t := range sectionTitles {
		label := fmt.Sprintf("%d %s", i+1, t)
		if i == m.section {
			tabs[i] = st.tabOn.Render(label)
		} else {
			tabs[i] = st.tabOff.Render(label)
		}
	}

	personas := make([]string, len(persona.All))
	for i, p := range persona.All {
		if p == m.persona.Current() {
			personas[i] = stylesFor(p).tabOn.Render(p.Label())
		} else {
			personas[i] = st.tabOff.Render(p.Label())
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		st.title.Render(m.profile.Initials),
		"  ",
		strings.Join(tabs, ""),
		"   ",
		strings.Join(personas, ""),
	)
}

// typed renders the typewriter line with its caret. The finale word takes the
// finale style.
func (m Model) typed(st styles) string {
	text := st.accent.Render(m.frame.Text)
	if m.frame.Finale {
		text = st.finale.Render(m.frame.Text)
	}
	caret := " "
	if m.cursor.Visible() {
		caret = st.accent.Render("|")
	}
	return text + caret
}

// home draws the rain band with the name and typewriter line centred over it.
func (m Model) home(st styles) string {
	overlay := map[int]string{
		heroRows/2 - 1: st.title.Render(m.profile.Name),
		heroRows / 2:   "",
		heroRows/2 + 1: mutedStyle.Render("I am a ") + m.typed(st),
	}

	lines := make([]string, 0, heroRows+4)
	for r := 0; r < m.trail.rows; r++ {
		if s, ok := overlay[r]; ok {
			lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s))
			continue
		}
		lines = append(lines, m.trail.line(r, st))
	}
	if m.trail.rows == 0 {
		lines = append(lines, st.title.Render(m.profile.Name), m.typed(st))
	}

	lines = append(lines, "",
		st.secondary.Render(m.profile.Tagline),
		m.wrap(textStyle, m.profile.Intro),
	)
	return strings.Join(lines, "\n")
}

func (m Model) identity(st styles) string {
	w := max((m.width-6)/2, 24)
	cards := make([]string, len(persona.All))
	for i, p := range persona.All {
		ps := stylesFor(p)
		box := st.cardDim
		if p == m.persona.Current() {
			box = ps.card
		}
		cards[i] = box.Width(w).Render(renderCard(m.profile.Card(p), ps))
	}
	return headStyle.Render(m.profile.Identity.Heading) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(c content.Card, st styles) string {
	var b strings.Builder
	b.WriteString(st.title.Render(c.Title) + "\n")
	b.WriteString(mutedStyle.Render(c.Subtitle) + "\n\n")
	b.WriteString(textStyle.Render(c.Body) + "\n\n")
	b.WriteString(st.accent.Render("Core Drives") + "\n")
	for _, d := range c.Drives {
		b.WriteString("• " + d + "\n")
	}
	b.WriteString("\n" + st.accent.Render(c.FocusTitle) + "\n")
	for _, f := range c.Focus {
		b.WriteString("• " + f + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) projects(st styles) string {
	filters := make([]string, len(persona.Filters))
	for i, f := range persona.Filters {
		if f == m.filter {
			filters[i] = st.tabOn.Render(f.Label())
		} else {
			filters[i] = st.tabOff.Render(f.Label())
		}
	}

	w := max(m.width-4, 24)
	var b strings.Builder
	b.WriteString(headStyle.Render("Projects & Experiments") + "  " + strings.Join(filters, "") + "\n")
	for _, p := range m.profile.ProjectsFor(m.filter) {
		ps := stylesFor(p.Persona)
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = ps.tag.Render(t)
		}
		body := ps.title.Render(p.Title) + "  " + mutedStyle.Render(p.Persona.Label()) + "\n" +
			textStyle.Render(p.Description) + "\n" +
			strings.Join(tags, " ")
		b.WriteString(ps.card.Width(w).Render(body) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) skills(st styles) string {
	if len(m.profile.Skills) == 0 {
		return headStyle.Render("Skills & Capabilities")
	}
	w := max((m.width-10)/len(m.profile.Skills), 16)
	cols := make([]string, len(m.profile.Skills))
	for i, s := range m.profile.Skills {
		cols[i] = st.cardDim.Width(w).Render(st.title.Render(s.Title) + "\n" + strings.Join(s.Items, "\n"))
	}
	return headStyle.Render("Skills & Capabilities") + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) philosophy(st styles) string {
	parts := []string{headStyle.Render("Philosophy & Drive"), ""}
	for _, p := range m.profile.Philosophy {
		parts = append(parts, m.wrap(textStyle, p), "")
	}
	parts = append(parts,
		st.card.Render(italicStyle.Render(`"`+m.profile.Quote.Text+`"`)+"\n"+mutedStyle.Render("— "+m.profile.Quote.Author)),
	)
	return strings.Join(parts, "\n")
}

func (m Model) contact(st styles) string {
	parts := []string{
		headStyle.Render(m.profile.Contact.Heading),
		mutedStyle.Render(m.profile.Contact.Prompt),
		"",
	}
	if m.editing {
		parts = append(parts,
			st.accent.Render("Name"), m.name.View(),
			st.accent.Render("Email"), m.email.View(),
			st.accent.Render("Message"), m.message.View(),
		)
	} else {
		parts = append(parts, faintStyle.Render("Press enter to write a message."))
	}
	if m.status != "" {
		style := st.accent
		if m.statusErr {
			style = errorStyle
		}
		parts = append(parts, "", m.wrap(style, m.status))
	}

	links := m.profile.Links
	parts = append(parts, "",
		st.secondary.Render("GitHub   ")+links.GitHub,
		st.secondary.Render("LinkedIn ")+links.LinkedIn,
		st.secondary.Render("Email    ")+links.Email,
	)
	return strings.Join(parts, "\n")
}

func (m Model) wrap(style lipgloss.Style, s string) string {
	return style.Width(max(m.width-2, 20)).Render(s)
}
