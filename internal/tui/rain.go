package tui

import (
	"strings"

	"github.com/ikansh/ikansh-dev/internal/rain"
)

// Half-width katakana keep every glyph one terminal cell wide.
const terminalGlyphs = "ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜｦﾝ01"

// fadeSteps is how many frames a glyph lingers after its drop moved on,
// standing in for the canvas' translucent overpaint.
const fadeSteps = 8

type trailCell struct {
	glyph rune
	age   int
}

// trail is the terminal's persistence layer for rain frames.
type trail struct {
	cols, rows int
	cells      []trailCell
}

func newTrail(cols, rows int) *trail {
	t := &trail{}
	t.resize(cols, rows)
	return t
}

func (t *trail) resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	cells := make([]trailCell, cols*rows)
	for i := range cells {
		cells[i].age = fadeSteps
	}
	for r := 0; r < min(rows, t.rows); r++ {
		for c := 0; c < min(cols, t.cols); c++ {
			cells[r*cols+c] = t.cells[r*t.cols+c]
		}
	}
	t.cols, t.rows, t.cells = cols, rows, cells
}

// apply ages every cell and stamps the frame's glyphs. Rows are 1-based in
// frames; a drop below the last row is not drawn.
func (t *trail) apply(f rain.Frame) {
	for i := range t.cells {
		if t.cells[i].age < fadeSteps {
			t.cells[i].age++
		}
	}
	for _, c := range f.Cells {
		r := c.Row - 1
		if c.Col < 0 || c.Col >= t.cols || r < 0 || r >= t.rows {
			continue
		}
		t.cells[r*t.cols+c.Col] = trailCell{glyph: c.Glyph}
	}
}

func (t *trail) at(col, row int) trailCell {
	return t.cells[row*t.cols+col]
}

// line renders one row of the trail.
func (t *trail) line(row int, st styles) string {
	var b strings.Builder
	for c := 0; c < t.cols; c++ {
		cell := t.at(c, row)
		switch {
		case cell.age == 0:
			b.WriteString(st.head.Render(string(cell.glyph)))
		case cell.age < fadeSteps/2:
			b.WriteString(st.trail.Render(string(cell.glyph)))
		case cell.age < fadeSteps:
			b.WriteString(st.fade.Render(string(cell.glyph)))
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}
