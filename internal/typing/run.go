package typing

import (
	"context"
	"time"
)

// CursorInterval is how often the caret blinks.
const CursorInterval = 500 * time.Millisecond

// Cursor is the blinking caret. It is independent of the machine.
type Cursor struct {
	hidden bool
}

func (c *Cursor) Toggle()       { c.hidden = !c.hidden }
func (c *Cursor) Visible() bool { return !c.hidden }

// Update is emitted by Run whenever the text or the caret changes.
type Update struct {
	Frame
	Cursor bool `json:"cursor"`
}

// Run drives m and a caret until ctx is done. emit is called from Run's goroutine
// only, first with the initial frame. Both timers are stopped before Run returns.
func Run(ctx context.Context, m *Machine, blink time.Duration, emit func(Update)) error {
	if blink <= 0 {
		blink = CursorInterval
	}
	var cursor Cursor

	step := time.NewTimer(m.typeDelay())
	defer step.Stop()
	caret := time.NewTicker(blink)
	defer caret.Stop()

	emit(Update{Frame: m.Snapshot(), Cursor: cursor.Visible()})
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-step.C:
			step.Reset(m.Step())
		case <-caret.C:
			cursor.Toggle()
		}
		emit(Update{Frame: m.Snapshot(), Cursor: cursor.Visible()})
	}
}
