// Package frame decorates a rendered plot with a border, axes, labels and
// a legend.
package frame

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"uniplot/internal/grid"
	"uniplot/internal/scale"
)

// maxYLabel caps the width of the y axis name in the left gutter.
const maxYLabel = 16

// LegendEntry is one line of the legend.
type LegendEntry struct {
	Glyph rune
	Name  string
	Color lipgloss.TerminalColor
}

// Options controls Compose.
type Options struct {
	Border BorderStyle
	Title  string
	XLabel string
	YLabel string

	ShowAxes bool
	// Bounds are in scaled space; the transforms turn tick positions back
	// into data values for the labels.
	Bounds     scale.Bounds
	XTransform scale.Transform
	YTransform scale.Transform
	XTicks     int
	YTicks     int
	XPrecision int
	YPrecision int

	Legend []LegendEntry

	BorderColor lipgloss.TerminalColor
	LabelColor  lipgloss.TerminalColor
}

// DefaultOptions returns three ticks per axis, two decimals on x and one on y.
func DefaultOptions() Options {
	return Options{
		Border:     BorderSingle,
		Bounds:     scale.Unit,
		XTicks:     3,
		YTicks:     3,
		XPrecision: 2,
		YPrecision: 1,
	}
}

// Compose returns a new matrix holding m inside the decorations. m is not
// modified. An HxW plot with only a border becomes (H+2)x(W+2).
func Compose(m grid.Matrix, o Options) grid.Matrix {
	h, w := m.Rows(), m.Cols()
	framed := o.Border != BorderNone
	rg := ringOf(o.Border.Glyphs())
	pad := 0
	if framed {
		pad = 1
	}

	var yTicks map[int]string
	tickW := 0
	if o.ShowAxes && h > 0 {
		yTicks = make(map[int]string)
		for _, row := range ticks(h, o.YTicks) {
			v := o.Bounds.YMax
			if h > 1 {
				v -= float64(row) / float64(h-1) * (o.Bounds.YMax - o.Bounds.YMin)
			}
			s := format(o.YTransform.Invert(v), o.YPrecision)
			yTicks[row] = s
			tickW = max(tickW, len(s))
		}
	}
	ylab := grid.Text(grid.Cut(o.YLabel, maxYLabel), o.LabelColor)
	gutter := 0
	if len(ylab) > 0 {
		gutter += len(ylab) + 1
	}
	if tickW > 0 {
		gutter += tickW + 1
	}
	frameW := w + 2*pad
	total := gutter + frameW

	var out grid.Matrix
	newRow := func() []grid.Cell { return grid.New(1, total)[0] }
	edge := func(r rune) grid.Cell { return grid.Cell{Rune: r, Fg: o.BorderColor} }

	if o.Title != "" && !framed {
		row := newRow()
		grid.Center(row, gutter, frameW, o.Title, o.LabelColor)
		out = append(out, row)
	}

	if framed {
		row := newRow()
		row[gutter] = edge(rg.topLeft)
		for x := 0; x < w; x++ {
			row[gutter+1+x] = edge(rg.top)
		}
		row[gutter+w+1] = edge(rg.topRight)
		if o.Title != "" {
			title := o.Title
			if w >= 3 {
				title = " " + grid.Cut(title, w-2) + " "
			}
			grid.Center(row, gutter+1, w, title, o.LabelColor)
		}
		out = append(out, row)
	}

	for y := 0; y < h; y++ {
		row := newRow()
		if len(ylab) > 0 && y == h/2 {
			grid.Put(row, 0, ylab)
		}
		if s, ok := yTicks[y]; ok {
			grid.Put(row, gutter-1-len(s), grid.Text(s, o.LabelColor))
		}
		if framed {
			left := rg.left
			if _, ok := yTicks[y]; ok {
				left = rg.leftTick
			}
			row[gutter] = edge(left)
			row[gutter+w+1] = edge(rg.right)
		}
		copy(row[gutter+pad:gutter+pad+w], m[y])
		out = append(out, row)
	}

	var xTicks []int
	if o.ShowAxes && w > 0 {
		xTicks = ticks(w, o.XTicks)
	}

	if framed {
		row := newRow()
		row[gutter] = edge(rg.bottomLeft)
		for x := 0; x < w; x++ {
			row[gutter+1+x] = edge(rg.bottom)
		}
		for _, x := range xTicks {
			row[gutter+1+x] = edge(rg.bottomTick)
		}
		row[gutter+w+1] = edge(rg.bottomRight)
		out = append(out, row)
	}

	if len(xTicks) > 0 {
		row := newRow()
		origin := gutter + pad
		next := 0
		for i, col := range xTicks {
			v := o.Bounds.XMin
			if w > 1 {
				v += float64(col) / float64(w-1) * (o.Bounds.XMax - o.Bounds.XMin)
			}
			label := grid.Text(format(o.XTransform.Invert(v), o.XPrecision), o.LabelColor)
			at := origin + col - len(label)/2
			switch i {
			case 0:
				at = origin + col
			case len(xTicks) - 1:
				at = origin + col - len(label) + 1
			}
			if at < next || at+len(label) > total {
				continue
			}
			grid.Put(row, at, label)
			next = at + len(label) + 1
		}
		out = append(out, row)
	}

	if o.XLabel != "" {
		row := newRow()
		grid.Center(row, gutter, frameW, o.XLabel, o.LabelColor)
		out = append(out, row)
	}

	for _, e := range o.Legend {
		row := newRow()
		cells := append([]grid.Cell{{Rune: e.Glyph, Fg: e.Color}, grid.Blank}, grid.Text(e.Name, o.LabelColor)...)
		if len(cells) > frameW {
			cells = append(cells[:2], grid.Text(grid.Cut(e.Name, frameW-2), o.LabelColor)...)
		}
		grid.Put(row, gutter, cells)
		out = append(out, row)
	}
	return out
}

// ticks spreads n positions evenly over [0, size-1], both ends included.
func ticks(size, n int) []int {
	if size == 1 {
		return []int{0}
	}
	n = max(n, 2)
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		p := int(math.Round(float64(i) * float64(size-1) / float64(n-1)))
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// format prints v with a fixed number of decimals and never prints "-0".
func format(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', max(prec, 0), 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		s = s[1:]
	}
	return s
}
