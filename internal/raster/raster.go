// Package raster draws points and line segments onto a canvas.
package raster

import (
	"github.com/charmbracelet/lipgloss"

	"uniplot/internal/canvas"
	"uniplot/internal/scale"
)

// Point is a data-space coordinate.
type Point struct {
	X, Y float64
}

// Mode selects how a series is drawn.
type Mode int

const (
	// Lines connects consecutive samples.
	Lines Mode = iota
	// Scatter draws each sample alone.
	Scatter
)

// Style is the per-series pen.
type Style struct {
	Mode   Mode
	Marker Marker
	Color  lipgloss.TerminalColor
}

// Rasterizer writes onto one canvas through one mapper.
type Rasterizer struct {
	c   *canvas.Canvas
	m   scale.Mapper
	pen lipgloss.TerminalColor
}

// New returns a rasterizer drawing onto c.
func New(c *canvas.Canvas, m scale.Mapper) *Rasterizer {
	return &Rasterizer{c: c, m: m}
}

// SetPen sets the colour applied to cells touched by later draws.
func (r *Rasterizer) SetPen(color lipgloss.TerminalColor) { r.pen = color }

func (r *Rasterizer) plot(col, row int) {
	r.c.Set(col, row)
	if r.pen != nil {
		r.c.Tint(col, row, r.pen)
	}
}

// DrawPoint maps p and lights its sub-pixel.
func (r *Rasterizer) DrawPoint(p Point) {
	col, row := r.m.Map(p.X, p.Y)
	r.plot(col, row)
}

// DrawLine maps both ends and lights the path between them.
func (r *Rasterizer) DrawLine(p0, p1 Point) {
	c0, r0 := r.m.Map(p0.X, p0.Y)
	c1, r1 := r.m.Map(p1.X, p1.Y)
	r.Line(c0, r0, c1, r1)
}

// Line lights the path between two sub-pixels.
func (r *Rasterizer) Line(c0, r0, c1, r1 int) {
	Bresenham(c0, r0, c1, r1, r.plot)
}

// MarkPoint composites a marker glyph at p, bypassing the sub-pixel masks.
func (r *Rasterizer) MarkPoint(p Point, mk Marker) {
	col, row := r.m.Map(p.X, p.Y)
	r.c.Mark(col, row, mk.Rune(), r.pen)
}

// DrawSeries draws pts in order with st. A series of one sample draws a
// point in either mode.
func (r *Rasterizer) DrawSeries(pts []Point, st Style) {
	r.SetPen(st.Color)
	switch {
	case st.Mode == Scatter && st.Marker != NoMarker:
		// marker replaces the dot
	case st.Mode == Scatter || len(pts) == 1:
		for _, p := range pts {
			r.DrawPoint(p)
		}
	default:
		for i := 1; i < len(pts); i++ {
			r.DrawLine(pts[i-1], pts[i])
		}
	}
	if st.Marker != NoMarker {
		for _, p := range pts {
			r.MarkPoint(p, st.Marker)
		}
	}
}

// Bresenham calls visit for every sub-pixel on the 8-connected path from
// (x0, y0) to (x1, y1), both ends included. Each step moves at most one
// unit on each axis, in every octant.
func Bresenham(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
