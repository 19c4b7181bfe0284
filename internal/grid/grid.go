// Package grid holds the character matrix every renderer produces.
package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one terminal column. Rune 0 marks the trailing column of a
// double-width rune placed in the cell before it.
type Cell struct {
	Rune rune
	Fg   lipgloss.TerminalColor
	Bg   lipgloss.TerminalColor
}

// Blank is a space with default colours.
var Blank = Cell{Rune: ' '}

// Matrix is a rectangular block of cells, row major.
type Matrix [][]Cell

// New returns a rows x cols matrix of blank cells.
func New(rows, cols int) Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	m := make(Matrix, rows)
	for y := range m {
		row := make([]Cell, cols)
		for x := range row {
			row[x] = Blank
		}
		m[y] = row
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the width of the first row.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// IsBlank reports whether every cell is a space.
func (m Matrix) IsBlank() bool {
	for _, row := range m {
		for _, c := range row {
			if c.Rune != ' ' && c.Rune != 0 {
				return false
			}
		}
	}
	return true
}

// Lines returns each row as plain text.
func (m Matrix) Lines() []string {
	out := make([]string, len(m))
	for y, row := range m {
		var b strings.Builder
		for _, c := range row {
			if c.Rune == 0 {
				continue
			}
			b.WriteRune(c.Rune)
		}
		out[y] = b.String()
	}
	return out
}

// String joins the plain rows with newlines.
func (m Matrix) String() string {
	return strings.Join(m.Lines(), "\n")
}

// Render joins the rows with newlines, styling runs of cells that share
// colours through r. r decides the colour profile, so passing a renderer
// with an explicit profile keeps output independent of the terminal.
func (m Matrix) Render(r *lipgloss.Renderer) string {
	var b strings.Builder
	for y, row := range m {
		if y > 0 {
			b.WriteByte('\n')
		}
		var (
			run    strings.Builder
			fg, bg lipgloss.TerminalColor
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if fg == nil && bg == nil {
				b.WriteString(run.String())
			} else {
				st := r.NewStyle()
				if fg != nil {
					st = st.Foreground(fg)
				}
				if bg != nil {
					st = st.Background(bg)
				}
				b.WriteString(st.Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.Rune == 0 {
				continue
			}
			if c.Fg != fg || c.Bg != bg {
				flush()
				fg, bg = c.Fg, c.Bg
			}
			run.WriteRune(c.Rune)
		}
		flush()
	}
	return b.String()
}
