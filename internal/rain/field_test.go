package rain

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestNewField_Dimensions(t *testing.T) {
	f := NewField(140, 70, 14)
	assert.Equal(t, 10, f.Columns())
	assert.Equal(t, 5, f.Rows())
	for _, d := range f.Drops() {
		assert.Equal(t, 1, d)
	}
}

func TestNewField_EmptySurface(t *testing.T) {
	for _, tc := range []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative", -10, -10},
		{"narrower than a cell", 10, 100},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := NewField(tc.width, tc.height, 14)
			assert.Empty(t, f.Step(seeded()).Cells)
		})
	}
}

func TestStep_OneCellPerColumnFromGlyphSet(t *testing.T) {
	f := NewField(10, 10, 1, WithGlyphs("01"))
	frame := f.Step(seeded())
	require.Len(t, frame.Cells, 10)
	for i, c := range frame.Cells {
		assert.Equal(t, i, c.Col)
		assert.Equal(t, 1, c.Row)
		assert.True(t, strings.ContainsRune("01", c.Glyph))
	}
	for _, d := range f.Drops() {
		assert.Equal(t, 2, d)
	}
}

func TestStep_NoResetKeepsFalling(t *testing.T) {
	f := NewField(5, 5, 1, WithResetChance(0))
	r := seeded()
	for i := 0; i < 50; i++ {
		f.Step(r)
	}
	for _, d := range f.Drops() {
		assert.Equal(t, 51, d)
	}
}

func TestStep_ResetOnlyBelowBottom(t *testing.T) {
	f := NewField(3, 6, 1, WithResetChance(1))
	r := seeded()
	for i := 0; i < 100; i++ {
		frame := f.Step(r)
		for _, c := range frame.Cells {
			require.LessOrEqual(t, c.Row, f.Rows()+1)
			require.GreaterOrEqual(t, c.Row, 1)
		}
	}
}

func TestResize_KeepsExistingDrops(t *testing.T) {
	f := NewField(4, 10, 1, WithResetChance(0))
	r := seeded()
	f.Step(r)
	f.Step(r)

	f.Resize(6, 10)
	assert.Equal(t, []int{3, 3, 3, 3, 1, 1}, f.Drops())

	f.Resize(2, 10)
	assert.Equal(t, []int{3, 3}, f.Drops())
}

func TestFieldsAreIndependent(t *testing.T) {
	a := NewField(3, 3, 1, WithResetChance(0))
	b := NewField(3, 3, 1, WithResetChance(0))
	a.Step(seeded())
	assert.Equal(t, []int{2, 2, 2}, a.Drops())
	assert.Equal(t, []int{1, 1, 1}, b.Drops())
}

func TestRun_StopsOnCancel(t *testing.T) {
	f := NewField(3, 3, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	frames := 0
	err := Run(ctx, f, seeded(), time.Millisecond, func(Frame) { frames++ })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, frames)
}
