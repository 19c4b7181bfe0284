package imgenc

import (
	"image"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"uniplot/internal/canvas"
	"uniplot/internal/grid"
)

// gridSize derives the target grid from the options and the source size.
func gridSize(w, h int, g *canvas.GlyphSet, cols, rows int) (int, int) {
	switch {
	case cols <= 0 && rows <= 0:
		cols = (w + g.SubX - 1) / g.SubX
		rows = (h + g.SubY - 1) / g.SubY
	case rows <= 0:
		rows = int(math.Round(float64(cols*g.SubX) * float64(h) / float64(w) / float64(g.SubY)))
	case cols <= 0:
		cols = int(math.Round(float64(rows*g.SubY) * float64(w) / float64(h) / float64(g.SubX)))
	}
	return max(cols, 1), max(rows, 1)
}

// FitGrid returns the largest grid of at most maxCols x maxRows cells that
// keeps the aspect ratio of a w x h image drawn with g.
func FitGrid(w, h int, g *canvas.GlyphSet, maxCols, maxRows int) (int, int) {
	if g == nil {
		g = canvas.Quadrant
	}
	cols, rows := gridSize(w, h, g, maxCols, 0)
	if rows > maxRows {
		cols, rows = gridSize(w, h, g, 0, maxRows)
	}
	return min(cols, max(maxCols, 1)), min(rows, max(maxRows, 1))
}

func encodeBlocks(b Buffer, o Options) (grid.Matrix, error) {
	g := o.Glyphs
	if !twoColour(g) {
		return nil, errors.Errorf("imgenc: glyph set %s cannot carry two colours per cell", g.Name)
	}
	if g == nil {
		g = canvas.Quadrant
	}
	cols, rows := gridSize(b.Width, b.Height, g, o.Cols, o.Rows)
	tw, th := cols*g.SubX, rows*g.SubY

	src := b.NRGBA()
	img := src
	if tw != b.Width || th != b.Height {
		img = image.NewNRGBA(image.Rect(0, 0, tw, th))
		xdraw.BiLinear.Scale(img, img.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	}

	n := g.SubX * g.SubY
	px := make([]colorful.Color, n)
	bits := make([]uint8, n)
	m := grid.New(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := 0
			for y := 0; y < g.SubY; y++ {
				for x := 0; x < g.SubX; x++ {
					px[i] = over(img, col*g.SubX+x, row*g.SubY+y)
					bits[i] = g.Bits[x][y]
					i++
				}
			}
			m[row][col] = bestCell(g, px, bits)
		}
	}
	return m, nil
}

// over reads a pixel composited onto black.
func over(img *image.NRGBA, x, y int) colorful.Color {
	c := img.NRGBAAt(x, y)
	a := float64(c.A) / 255
	return colorful.Color{
		R: float64(c.R) / 255 * a,
		G: float64(c.G) / 255 * a,
		B: float64(c.B) / 255 * a,
	}
}

// bestCell tries every split of the cell's pixels into a foreground and a
// background group and keeps the one with the least colour error. The
// unsplit cell is tried first so a uniform cell becomes a full block.
func bestCell(g *canvas.GlyphSet, px []colorful.Color, bits []uint8) grid.Cell {
	full := uint8(len(g.Table) - 1)
	bestMask := full
	bestFg, bestBg, bestErr := split(px, bits, full)
	for mask := uint8(1); mask < full; mask++ {
		fg, bg, e := split(px, bits, mask)
		if e < bestErr {
			bestMask, bestFg, bestBg, bestErr = mask, fg, bg, e
		}
	}
	fg := lipgloss.Color(bestFg.Clamped().Hex())
	bg := fg
	if bestMask != full {
		bg = lipgloss.Color(bestBg.Clamped().Hex())
	}
	return grid.Cell{Rune: g.Glyph(bestMask), Fg: fg, Bg: bg}
}

func split(px []colorful.Color, bits []uint8, mask uint8) (fg, bg colorful.Color, err float64) {
	var nf, nb float64
	for i, c := range px {
		if bits[i]&mask != 0 {
			fg = add(fg, c)
			nf++
		} else {
			bg = add(bg, c)
			nb++
		}
	}
	fg, bg = scaleBy(fg, nf), scaleBy(bg, nb)
	for i, c := range px {
		ref := bg
		if bits[i]&mask != 0 {
			ref = fg
		}
		d := c.DistanceRgb(ref)
		err += d * d
	}
	return fg, bg, err
}

func add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

func scaleBy(c colorful.Color, n float64) colorful.Color {
	if n == 0 {
		return c
	}
	return colorful.Color{R: c.R / n, G: c.G / n, B: c.B / n}
}
