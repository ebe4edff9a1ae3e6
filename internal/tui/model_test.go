package tui

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikansh/ikansh-dev/internal/contact"
	"github.com/ikansh/ikansh-dev/internal/persona"
	"github.com/ikansh/ikansh-dev/internal/store"
)

type fakeSubmitter struct {
	got []contact.Submission
	err error
}

func (f *fakeSubmitter) Submit(_ context.Context, sub contact.Submission) (store.Message, error) {
	f.got = append(f.got, sub)
	return store.Message{ID: "1"}, f.err
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, sub Submitter) Model {
	t.Helper()
	opts := Options{Rand: rand.New(rand.NewPCG(1, 2))}
	if sub != nil {
		opts.Submitter = sub
	}
	m, err := New(opts)
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestPersonaKeys(t *testing.T) {
	m := newModel(t, nil)
	assert.Equal(t, persona.Ika, m.Persona())

	m, _ = send(t, m, keyMsg("tab"))
	assert.Equal(t, persona.Genesis, m.Persona())

	m, _ = send(t, m, keyMsg("g"))
	assert.Equal(t, persona.Genesis, m.Persona(), "selecting the active persona is a no-op")

	m, _ = send(t, m, keyMsg("i"))
	assert.Equal(t, persona.Ika, m.Persona())
	assert.Contains(t, m.View(), "IkaBrain")
}

func TestSectionKeys(t *testing.T) {
	m := newModel(t, nil)
	assert.Equal(t, "Home", m.Section())

	tests := []struct {
		key  string
		want string
	}{
		{"3", "Projects"},
		{"6", "Contact"},
		{"l", "Home"},
		{"h", "Contact"},
		{"2", "Identity"},
	}
	for _, tt := range tests {
		m, _ = send(t, m, keyMsg(tt.key))
		assert.Equal(t, tt.want, m.Section(), "after %q", tt.key)
	}
	assert.Contains(t, m.View(), "The Relentless Force")
}

func TestProjectFilter(t *testing.T) {
	m := newModel(t, nil)

	m, _ = send(t, m, keyMsg("f"))
	assert.Equal(t, "Projects", m.Section())
	view := m.View()
	assert.Contains(t, view, "Neural Network Playground")
	assert.NotContains(t, view, "Reality Mining Framework")

	m, _ = send(t, m, keyMsg("f"))
	view = m.View()
	assert.Contains(t, view, "Reality Mining Framework")
	assert.NotContains(t, view, "Neural Network Playground")

	m, _ = send(t, m, keyMsg("f"))
	assert.Equal(t, persona.FilterAll, m.filter)
}

func TestTypewriterTicks(t *testing.T) {
	m := newModel(t, nil)
	assert.Empty(t, m.Typed())

	m, cmd := send(t, m, typeTickMsg{})
	assert.Equal(t, "S", m.Typed())
	assert.NotNil(t, cmd)

	for range len("Seeker") - 1 {
		m, _ = send(t, m, typeTickMsg{})
	}
	assert.Equal(t, "Seeker", m.Typed())
	assert.Contains(t, m.View(), "Seeker")
}

func TestCursorBlink(t *testing.T) {
	m := newModel(t, nil)
	require.True(t, m.cursor.Visible())

	m, cmd := send(t, m, blinkMsg{})
	assert.False(t, m.cursor.Visible())
	assert.NotNil(t, cmd)
}

func TestRainFollowsWindow(t *testing.T) {
	m := newModel(t, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 30})
	assert.Equal(t, 40, m.field.Columns())

	m, cmd := send(t, m, rainTickMsg{})
	assert.NotNil(t, cmd)
	for c := 0; c < 40; c++ {
		assert.Equal(t, 0, m.trail.at(c, 0).age, "column %d", c)
	}

	m, _ = send(t, m, rainTickMsg{})
	assert.Equal(t, 1, m.trail.at(0, 0).age)
	assert.Equal(t, 0, m.trail.at(0, 1).age)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 30})
	assert.Equal(t, 20, m.field.Columns())
	assert.Equal(t, 20, m.trail.cols)
	assert.Equal(t, 0, m.trail.at(0, 1).age, "resize keeps surviving cells")
}

func TestQuit(t *testing.T) {
	m := newModel(t, nil)
	_, cmd := send(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestContactOffline(t *testing.T) {
	m := newModel(t, nil)
	m, _ = send(t, m, keyMsg("6"), keyMsg("enter"))
	assert.False(t, m.editing)
	assert.Contains(t, m.status, "offline")
}

func TestContactSubmit(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newModel(t, sub)

	m, _ = send(t, m, keyMsg("g"), keyMsg("6"), keyMsg("enter"))
	require.True(t, m.editing)

	// Hotkeys are plain text while editing.
	m, _ = send(t, m, keyMsg("q"), keyMsg("i"))
	m, _ = send(t, m, keyMsg("tab"), keyMsg("ada@example.com"))
	m, _ = send(t, m, keyMsg("tab"), keyMsg("Fellow seeker."))
	assert.Equal(t, persona.Genesis, m.Persona())

	m, cmd := send(t, m, keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	assert.True(t, m.sending)

	m, _ = send(t, m, cmd())
	require.Len(t, sub.got, 1)
	assert.Equal(t, contact.Submission{
		Name:     "qi",
		Email:    "ada@example.com",
		Message:  "Fellow seeker.",
		Persona:  persona.Genesis,
		HashedIP: "terminal",
	}, sub.got[0])
	assert.False(t, m.editing)
	assert.False(t, m.sending)
	assert.Contains(t, m.status, "Thank you")
	assert.Empty(t, m.name.Value())
}

func TestContactSubmitErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid", &contact.ValidationError{Fields: map[string]string{"email": "not a valid address"}}, "email: not a valid address"},
		{"rate limited", contact.ErrRateLimited, "try again in a minute"},
		{"other", assert.AnError, "error sending your message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t, &fakeSubmitter{err: tt.err})
			m, _ = send(t, m, keyMsg("6"), keyMsg("enter"), keyMsg("Ada"))
			m, cmd := send(t, m, keyMsg("ctrl+s"))
			m, _ = send(t, m, cmd())

			assert.True(t, m.statusErr)
			assert.Contains(t, m.status, tt.want)
			assert.True(t, m.editing, "form stays open for corrections")
			assert.Equal(t, "Ada", m.name.Value())
		})
	}
}

func TestContactEscape(t *testing.T) {
	m := newModel(t, &fakeSubmitter{})
	m, _ = send(t, m, keyMsg("6"), keyMsg("enter"), keyMsg("esc"))
	assert.False(t, m.editing)

	_, cmd := send(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
