// Package tui renders the portfolio in a terminal with bubbletea: the same
// personas, sections, typewriter and rain as the web page.
package tui

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ikansh/ikansh-dev/internal/contact"
	"github.com/ikansh/ikansh-dev/internal/content"
	"github.com/ikansh/ikansh-dev/internal/persona"
	"github.com/ikansh/ikansh-dev/internal/rain"
	"github.com/ikansh/ikansh-dev/internal/store"
	"github.com/ikansh/ikansh-dev/internal/typing"
)

const (
	heroRows     = 9
	rainInterval = 80 * time.Millisecond
	defaultWidth = 80
)

const (
	sectionHome = iota
	sectionIdentity
	sectionProjects
	sectionSkills
	sectionPhilosophy
	sectionContact
)

var sectionTitles = []string{"Home", "Identity", "Projects", "Skills", "Philosophy", "Contact"}

// Submitter accepts contact messages. *contact.Service implements it.
type Submitter interface {
	Submit(ctx context.Context, sub contact.Submission) (store.Message, error)
}

type Options struct {
	Profile *content.Profile
	Persona persona.Persona
	Typing  typing.Options
	// Submitter is nil when no database is wired; the form then points at
	// the email link instead.
	Submitter Submitter
	Context   context.Context
	Rand      rain.Rand
}

type (
	typeTickMsg  struct{}
	blinkMsg     struct{}
	rainTickMsg  struct{}
	submittedMsg struct{ err error }
)

type formField int

const (
	fieldName formField = iota
	fieldEmail
	fieldMessage
	fieldCount
)

type Model struct {
	ctx     context.Context
	profile *content.Profile
	persona *persona.Selector
	keys    KeyMap
	help    help.Model

	section int
	filter  persona.Filter

	machine *typing.Machine
	frame   typing.Frame
	cursor  *typing.Cursor

	field *rain.Field
	rng   rain.Rand
	trail *trail

	name      textinput.Model
	email     textinput.Model
	message   textarea.Model
	editing   bool
	focus     formField
	sending   bool
	status    string
	statusErr bool
	submitter Submitter

	width, height int
}

func New(opts Options) (Model, error) {
	if opts.Profile == nil {
		opts.Profile = content.Default()
	}
	if opts.Typing.Finale == "" {
		opts.Typing.Finale = opts.Profile.Finale
	}
	machine, err := typing.New(opts.Profile.Phrases, opts.Typing)
	if err != nil {
		return Model{}, err
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	name := textinput.New()
	name.Placeholder = "Your Name"
	name.CharLimit = contact.MaxNameLen
	email := textinput.New()
	email.Placeholder = "your.email@domain.com"
	email.CharLimit = contact.MaxEmailLen
	msg := textarea.New()
	msg.Placeholder = "Your message..."
	msg.CharLimit = contact.MaxMessageLen
	msg.ShowLineNumbers = false
	msg.SetHeight(5)

	m := Model{
		ctx:       opts.Context,
		profile:   opts.Profile,
		persona:   persona.NewSelector(persona.ParseOr(string(opts.Persona), persona.Default)),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		filter:    persona.FilterAll,
		machine:   machine,
		frame:     machine.Snapshot(),
		cursor:    &typing.Cursor{},
		field:     rain.NewField(defaultWidth, heroRows, 1, rain.WithGlyphs(terminalGlyphs)),
		rng:       opts.Rand,
		trail:     newTrail(defaultWidth, heroRows),
		name:      name,
		email:     email,
		message:   msg,
		submitter: opts.Submitter,
		width:     defaultWidth,
	}
	m.resizeInputs()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		typeTick(m.machine.Options().TypeSpeed),
		blinkTick(),
		rainTick(),
	)
}

func typeTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return typeTickMsg{} })
}

func blinkTick() tea.Cmd {
	return tea.Tick(typing.CursorInterval, func(time.Time) tea.Msg { return blinkMsg{} })
}

func rainTick() tea.Cmd {
	return tea.Tick(rainInterval, func(time.Time) tea.Msg { return rainTickMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case typeTickMsg:
		delay := m.machine.Step()
		m.frame = m.machine.Snapshot()
		return m, typeTick(delay)

	case blinkMsg:
		m.cursor.Toggle()
		return m, blinkTick()

	case rainTickMsg:
		m.trail.apply(m.field.Step(m.rng))
		return m, rainTick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.field.Resize(msg.Width, heroRows)
		m.trail.resize(msg.Width, heroRows)
		m.help.Width = msg.Width
		m.resizeInputs()
		return m, nil

	case submittedMsg:
		m.sending = false
		var ve *contact.ValidationError
		switch {
		case msg.err == nil:
			m.setStatus("Thank you for your message! I'll get back to you soon.", false)
			m.name.Reset()
			m.email.Reset()
			m.message.Reset()
			m.stopEditing()
		case errors.As(msg.err, &ve):
			m.setStatus(ve.Error(), true)
		case errors.Is(msg.err, contact.ErrRateLimited):
			m.setStatus("You've sent a few messages already. Please try again in a minute.", true)
		default:
			m.setStatus("Sorry, there was an error sending your message. Please try again later.", true)
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.editing {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.persona.Toggle()
	case key.Matches(msg, m.keys.Ika):
		m.persona.Set(persona.Ika)
	case key.Matches(msg, m.keys.Genesis):
		m.persona.Set(persona.Genesis)
	case key.Matches(msg, m.keys.Sections):
		m.section = int(msg.String()[0] - '1')
	case key.Matches(msg, m.keys.Next):
		m.section = (m.section + 1) % len(sectionTitles)
	case key.Matches(msg, m.keys.Prev):
		m.section = (m.section + len(sectionTitles) - 1) % len(sectionTitles)
	case key.Matches(msg, m.keys.Filter):
		m.section = sectionProjects
		m.filter = nextFilter(m.filter)
	case key.Matches(msg, m.keys.Edit):
		if m.section != sectionContact {
			return m, nil
		}
		if m.submitter == nil {
			m.setStatus("The contact form is offline. Please email "+m.profile.Links.Email+" instead.", true)
			return m, nil
		}
		m.editing = true
		m.status = ""
		return m, m.focusField(fieldName)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(k, m.keys.Cancel):
			m.stopEditing()
			return m, nil
		case key.Matches(k, m.keys.Send):
			if m.sending {
				return m, nil
			}
			m.sending = true
			m.setStatus("Sending...", false)
			return m, m.submit()
		case key.Matches(k, m.keys.NextField):
			return m, m.focusField((m.focus + 1) % fieldCount)
		case key.Matches(k, m.keys.PrevField):
			return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	sub := contact.Submission{
		Name:     m.name.Value(),
		Email:    m.email.Value(),
		Message:  m.message.Value(),
		Persona:  m.persona.Current(),
		HashedIP: "terminal",
	}
	ctx, s := m.ctx, m.submitter
	return func() tea.Msg {
		_, err := s.Submit(ctx, sub)
		return submittedMsg{err: err}
	}
}

func (m *Model) focusField(f formField) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	switch f {
	case fieldName:
		return m.name.Focus()
	case fieldEmail:
		return m.email.Focus()
	default:
		return m.message.Focus()
	}
}

func (m *Model) stopEditing() {
	m.editing = false
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m *Model) resizeInputs() {
	w := max(min(m.width-8, 72), 20)
	m.name.Width = w
	m.email.Width = w
	m.message.SetWidth(w)
}

func nextFilter(f persona.Filter) persona.Filter {
	for i, v := range persona.Filters {
		if v == f {
			return persona.Filters[(i+1)%len(persona.Filters)]
		}
	}
	return persona.FilterAll
}

// Persona reports the active persona.
func (m Model) Persona() persona.Persona { return m.persona.Current() }

// Section reports the title of the visible section.
func (m Model) Section() string { return sectionTitles[m.section] }

// Typed reports the typewriter's current text.
func (m Model) Typed() string { return m.frame.Text }
