// Package rain is the falling-character background. A Field owns its drop
// positions; nothing here is package-level mutable state, so several views can
// animate independently.
package rain

import (
	"context"
	"time"
)

const (
	DefaultGlyphs      = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン01"
	DefaultCellSize    = 14
	DefaultInterval    = 35 * time.Millisecond
	DefaultResetChance = 0.025
)

// Rand is the randomness a Field needs. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Cell is one glyph drawn at a column/row position.
type Cell struct {
	Col   int  `json:"c"`
	Row   int  `json:"r"`
	Glyph rune `json:"g"`
}

// Frame is every cell drawn by one tick, one per column.
type Frame struct {
	Cells []Cell `json:"cells"`
}

type Field struct {
	width, height int
	cellSize      int
	glyphs        []rune
	resetChance   float64
	drops         []int
}

type Option func(*Field)

func WithGlyphs(s string) Option {
	return func(f *Field) {
		if g := []rune(s); len(g) > 0 {
			f.glyphs = g
		}
	}
}

// WithResetChance sets the probability that a drop below the bottom edge
// restarts at the top on a given tick. Values are clamped to [0, 1].
func WithResetChance(p float64) Option {
	return func(f *Field) {
		switch {
		case p < 0:
			p = 0
		case p > 1:
			p = 1
		}
		f.resetChance = p
	}
}

// NewField sizes a field for a width x height surface split into square cells.
// Non-positive dimensions give an empty field whose Step draws nothing.
func NewField(width, height, cellSize int, opts ...Option) *Field {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	f := &Field{
		cellSize:    cellSize,
		glyphs:      []rune(DefaultGlyphs),
		resetChance: DefaultResetChance,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Resize(width, height)
	return f
}

// Resize recomputes the column count. Existing drops keep their position, new
// columns start at the top and columns past the new edge are discarded.
func (f *Field) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height

	cols := width / f.cellSize
	switch {
	case cols < len(f.drops):
		f.drops = f.drops[:cols]
	case cols > len(f.drops):
		for len(f.drops) < cols {
			f.drops = append(f.drops, 1)
		}
	}
}

func (f *Field) Columns() int { return len(f.drops) }
func (f *Field) Rows() int    { return f.height / f.cellSize }
func (f *Field) CellSize() int {
	return f.cellSize
}

// Drops returns a copy of the current drop rows.
func (f *Field) Drops() []int {
	out := make([]int, len(f.drops))
	copy(out, f.drops)
	return out
}

// Step draws one glyph per column at the drop's row and moves every drop down by
// one row. A drop that has passed the bottom edge restarts at the top with
// probability resetChance.
func (f *Field) Step(r Rand) Frame {
	if len(f.drops) == 0 || f.height == 0 {
		return Frame{}
	}
	cells := make([]Cell, len(f.drops))
	for i, row := range f.drops {
		cells[i] = Cell{Col: i, Row: row, Glyph: f.glyphs[r.IntN(len(f.glyphs))]}

		if row*f.cellSize > f.height && r.Float64() < f.resetChance {
			f.drops[i] = 0
		}
		f.drops[i]++
	}
	return Frame{Cells: cells}
}

// Run steps f every interval until ctx is done.
func Run(ctx context.Context, f *Field, r Rand, interval time.Duration, emit func(Frame)) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			emit(f.Step(r))
		}
	}
}
