// Package canvas is a sub-pixel grid grouped into terminal cells.
package canvas

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"uniplot/internal/grid"
)

// Geometry is the size of a canvas in cells and its sub-pixels per cell.
type Geometry struct {
	Cols, Rows int
	SubX, SubY int
}

// Width is the sub-pixel width.
func (g Geometry) Width() int { return g.Cols * g.SubX }

// Height is the sub-pixel height.
func (g Geometry) Height() int { return g.Rows * g.SubY }

// Canvas accumulates lit sub-pixels per cell. Bits are only ever added by
// Set; a cell lit by one draw stays lit when another draw passes through.
//
// A Canvas is not safe for concurrent use. Render independent plots on
// independent canvases.
type Canvas struct {
	geo    Geometry
	glyphs *GlyphSet
	masks  []uint8
	colors []lipgloss.TerminalColor
	marks  []rune
}

// New returns a blank canvas of cols x rows cells.
func New(cols, rows int, glyphs *GlyphSet) (*Canvas, error) {
	if glyphs == nil {
		glyphs = Braille
	}
	if err := glyphs.Validate(); err != nil {
		return nil, err
	}
	if cols <= 0 || rows <= 0 {
		return nil, errors.Errorf("canvas: size %dx%d", cols, rows)
	}
	n := cols * rows
	return &Canvas{
		geo:    Geometry{Cols: cols, Rows: rows, SubX: glyphs.SubX, SubY: glyphs.SubY},
		glyphs: glyphs,
		masks:  make([]uint8, n),
		colors: make([]lipgloss.TerminalColor, n),
		marks:  make([]rune, n),
	}, nil
}

// Geometry returns the canvas size.
func (c *Canvas) Geometry() Geometry { return c.geo }

// locate returns the cell index and bit of a sub-pixel.
func (c *Canvas) locate(col, row int) (idx int, bit uint8, ok bool) {
	if col < 0 || row < 0 || col >= c.geo.Width() || row >= c.geo.Height() {
		return 0, 0, false
	}
	cx, rx := col/c.geo.SubX, col%c.geo.SubX
	cy, ry := row/c.geo.SubY, row%c.geo.SubY
	return cy*c.geo.Cols + cx, c.glyphs.Bits[rx][ry], true
}

// Set lights a sub-pixel. Out-of-range coordinates are ignored.
func (c *Canvas) Set(col, row int) {
	if i, bit, ok := c.locate(col, row); ok {
		c.masks[i] |= bit
	}
}

// Clear darkens a sub-pixel.
func (c *Canvas) Clear(col, row int) {
	if i, bit, ok := c.locate(col, row); ok {
		c.masks[i] &^= bit
	}
}

// Test reports whether a sub-pixel is lit.
func (c *Canvas) Test(col, row int) bool {
	i, bit, ok := c.locate(col, row)
	return ok && c.masks[i]&bit != 0
}

// Tint colours the cell holding a sub-pixel. The last tint wins.
func (c *Canvas) Tint(col, row int, color lipgloss.TerminalColor) {
	if i, _, ok := c.locate(col, row); ok {
		c.colors[i] = color
	}
}

// Mark places a marker rune in the cell holding a sub-pixel. A marked cell
// shows the marker instead of its mask glyph.
func (c *Canvas) Mark(col, row int, r rune, color lipgloss.TerminalColor) {
	if i, _, ok := c.locate(col, row); ok {
		c.marks[i] = r
		c.colors[i] = color
	}
}

// Mask returns the raw mask of a cell.
func (c *Canvas) Mask(cellCol, cellRow int) uint8 {
	if cellCol < 0 || cellRow < 0 || cellCol >= c.geo.Cols || cellRow >= c.geo.Rows {
		return 0
	}
	return c.masks[cellRow*c.geo.Cols+cellCol]
}

// Reset clears every mask, mark and colour.
func (c *Canvas) Reset() {
	clear(c.masks)
	clear(c.colors)
	clear(c.marks)
}

// GlyphMatrix translates every cell in one pass. It does not modify the
// canvas, so calling it twice yields equal matrices.
func (c *Canvas) GlyphMatrix() grid.Matrix {
	m := grid.New(c.geo.Rows, c.geo.Cols)
	for y := 0; y < c.geo.Rows; y++ {
		for x := 0; x < c.geo.Cols; x++ {
			i := y*c.geo.Cols + x
			cell := grid.Cell{Rune: c.glyphs.Glyph(c.masks[i]), Fg: c.colors[i]}
			if c.marks[i] != 0 {
				cell.Rune = c.marks[i]
			}
			if cell.Rune == ' ' {
				cell.Fg = nil
			}
			m[y][x] = cell
		}
	}
	return m
}
