// Package typing implements the hero typewriter: a looping machine that types and
// deletes a rotating list of phrases and, after one full pass, types a finale word
// once before starting over.
package typing

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoPhrases   = errors.New("typing: no phrases")
	ErrEmptyPhrase = errors.New("typing: empty phrase")
	ErrEmptyFinale = errors.New("typing: empty finale word")
)

// Phase is the direction of the machine for the current target.
type Phase int

const (
	Typing Phase = iota
	Pausing
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "Typing"
	case Pausing:
		return "Pausing"
	case Deleting:
		return "Deleting"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

const (
	DefaultTypeSpeed   = 100 * time.Millisecond
	DefaultDeleteSpeed = 50 * time.Millisecond
	DefaultPause       = 3 * time.Second
	DefaultFinaleSpeed = 200 * time.Millisecond
	DefaultFinalePause = 5 * time.Second
	DefaultFinale      = "IKANSH"

	// finaleHolds is how many pause beats the finale word is held for.
	finaleHolds = 2
)

// Options holds the timing of the machine. Zero fields fall back to the defaults.
type Options struct {
	TypeSpeed   time.Duration
	DeleteSpeed time.Duration
	Pause       time.Duration
	FinaleSpeed time.Duration
	FinalePause time.Duration
	Finale      string
}

func DefaultOptions() Options {
	return Options{
		TypeSpeed:   DefaultTypeSpeed,
		DeleteSpeed: DefaultDeleteSpeed,
		Pause:       DefaultPause,
		FinaleSpeed: DefaultFinaleSpeed,
		FinalePause: DefaultFinalePause,
		Finale:      DefaultFinale,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TypeSpeed <= 0 {
		o.TypeSpeed = d.TypeSpeed
	}
	if o.DeleteSpeed <= 0 {
		o.DeleteSpeed = d.DeleteSpeed
	}
	if o.Pause <= 0 {
		o.Pause = d.Pause
	}
	if o.FinaleSpeed <= 0 {
		o.FinaleSpeed = d.FinaleSpeed
	}
	if o.FinalePause <= 0 {
		o.FinalePause = d.FinalePause
	}
	return o
}

// Frame is what a renderer needs to draw one tick.
type Frame struct {
	Text   string `json:"text"`
	Target string `json:"-"`
	Phase  Phase  `json:"-"`
	Index  int    `json:"index"`
	Finale bool   `json:"finale"`
}

// State names the machine state, e.g. "Typing(2)" or "FinalePausing".
func (f Frame) State() string {
	if f.Finale {
		return "Finale" + f.Phase.String()
	}
	return fmt.Sprintf("%s(%d)", f.Phase, f.Index)
}

// Machine is not safe for concurrent use; each view owns its own.
type Machine struct {
	phrases [][]rune
	finale  []rune
	opts    Options

	index         int
	shown         int
	phase         Phase
	isFinale      bool
	cycleComplete bool
}

// New returns a machine in Typing(0) with nothing shown. An empty Options.Finale
// means DefaultFinale.
func New(phrases []string, opts Options) (*Machine, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	m := &Machine{
		phrases: make([][]rune, len(phrases)),
		opts:    opts.withDefaults(),
	}
	for i, p := range phrases {
		if p == "" {
			return nil, fmt.Errorf("%w at index %d", ErrEmptyPhrase, i)
		}
		m.phrases[i] = []rune(p)
	}
	if m.opts.Finale == "" {
		m.opts.Finale = DefaultFinale
	}
	m.finale = []rune(m.opts.Finale)
	if len(m.finale) == 0 {
		return nil, ErrEmptyFinale
	}
	return m, nil
}

func (m *Machine) target() []rune {
	if m.isFinale {
		return m.finale
	}
	return m.phrases[m.index]
}

func (m *Machine) typeDelay() time.Duration {
	if m.isFinale {
		return m.opts.FinaleSpeed
	}
	return m.opts.TypeSpeed
}

func (m *Machine) pauseDelay() time.Duration {
	if m.isFinale {
		return finaleHolds * m.opts.FinalePause
	}
	return m.opts.Pause
}

// Step advances the machine by one tick and returns how long to wait before the
// next one.
func (m *Machine) Step() time.Duration {
	switch m.phase {
	case Typing:
		if m.shown < len(m.target()) {
			m.shown++
		}
		if m.shown == len(m.target()) {
			m.phase = Pausing
			return m.pauseDelay()
		}
		return m.typeDelay()

	case Pausing:
		m.phase = Deleting
		return m.opts.DeleteSpeed

	default:
		if m.shown > 0 {
			m.shown--
		}
		if m.shown > 0 {
			return m.opts.DeleteSpeed
		}
		m.phase = Typing
		if m.isFinale {
			m.isFinale = false
			m.cycleComplete = false
			m.index = 0
			return m.typeDelay()
		}
		m.index = (m.index + 1) % len(m.phrases)
		if m.index == 0 {
			// A full pass is done; the next word typed is the finale.
			m.cycleComplete = true
			m.isFinale = true
		}
		return m.typeDelay()
	}
}

// Snapshot returns the current frame.
func (m *Machine) Snapshot() Frame {
	t := m.target()
	return Frame{
		Text:   string(t[:m.shown]),
		Target: string(t),
		Phase:  m.phase,
		Index:  m.index,
		Finale: m.isFinale,
	}
}

// Reset puts the machine back in Typing(0) with nothing shown.
func (m *Machine) Reset() {
	m.index = 0
	m.shown = 0
	m.phase = Typing
	m.isFinale = false
	m.cycleComplete = false
}

// Phrases returns a copy of the rotating phrase list.
func (m *Machine) Phrases() []string {
	out := make([]string, len(m.phrases))
	for i, p := range m.phrases {
		out[i] = string(p)
	}
	return out
}

// Options returns the effective timing.
func (m *Machine) Options() Options { return m.opts }
