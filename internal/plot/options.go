// Package plot wires series through the mapper, rasterizer, canvas and
// frame into a finished character grid.
package plot

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"uniplot/internal/canvas"
	"uniplot/internal/frame"
	"uniplot/internal/raster"
	"uniplot/internal/scale"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("plot: invalid options")

// DefaultPalette colours series in order, cycling when there are more
// series than colours.
var DefaultPalette = []lipgloss.TerminalColor{
	lipgloss.Color("46"),
	lipgloss.Color("196"),
	lipgloss.Color("21"),
	lipgloss.Color("226"),
}

// Options describes one figure. Width and Height are the plot area in
// cells; decorations are added around it.
//
// Markers, Names and Colors are matched to series by position. A series
// past the end of Markers has no marker, one past the end of Names (or
// with an empty name) keeps its own name, and Colors cycle. Extra entries
// are ignored.
type Options struct {
	Width, Height int

	Title  string
	XLabel string
	YLabel string
	Border frame.BorderStyle

	ShowAxes bool
	Scatter  bool
	Legend   bool

	Markers []raster.Marker
	Names   []string
	Colors  []lipgloss.TerminalColor

	XScale scale.Transform
	YScale scale.Transform
	// Bounds replaces the bounds inferred from the data. It is given in
	// data space, before XScale and YScale are applied.
	Bounds *scale.Bounds

	Glyphs *canvas.GlyphSet

	XTicks, YTicks         int
	XPrecision, YPrecision int

	BorderColor lipgloss.TerminalColor
	LabelColor  lipgloss.TerminalColor
}

// DefaultOptions returns a 60x15 braille plot with a single border and axes.
func DefaultOptions() Options {
	fo := frame.DefaultOptions()
	return Options{
		Width:      60,
		Height:     15,
		Border:     fo.Border,
		ShowAxes:   true,
		Glyphs:     canvas.Braille,
		XTicks:     fo.XTicks,
		YTicks:     fo.YTicks,
		XPrecision: fo.XPrecision,
		YPrecision: fo.YPrecision,
	}
}

// Validate rejects options no figure can be drawn with.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Wrapf(ErrInvalidOptions, "size %dx%d", o.Width, o.Height)
	}
	if o.Border.String() == "unknown" {
		return errors.Wrapf(ErrInvalidOptions, "border %d", o.Border)
	}
	if o.XScale.String() == "unknown" || o.YScale.String() == "unknown" {
		return errors.Wrapf(ErrInvalidOptions, "axis transform %d/%d", o.XScale, o.YScale)
	}
	if o.XTicks < 0 || o.YTicks < 0 {
		return errors.Wrapf(ErrInvalidOptions, "tick count %d/%d", o.XTicks, o.YTicks)
	}
	if o.Glyphs != nil {
		if err := o.Glyphs.Validate(); err != nil {
			return err
		}
	}
	if o.Bounds != nil {
		if _, err := o.scaledBounds(); err != nil {
			return err
		}
	}
	return nil
}

// scaledBounds applies the axis transforms to the bounds override.
func (o Options) scaledBounds() (scale.Bounds, error) {
	b := scale.Bounds{
		XMin: o.XScale.Apply(o.Bounds.XMin),
		XMax: o.XScale.Apply(o.Bounds.XMax),
		YMin: o.YScale.Apply(o.Bounds.YMin),
		YMax: o.YScale.Apply(o.Bounds.YMax),
	}
	if err := b.Validate(); err != nil {
		return scale.Bounds{}, err
	}
	return b, nil
}

func (o Options) glyphs() *canvas.GlyphSet {
	if o.Glyphs == nil {
		return canvas.Braille
	}
	return o.Glyphs
}

func (o Options) style(i int) raster.Style {
	st := raster.Style{Mode: raster.Lines}
	if o.Scatter {
		st.Mode = raster.Scatter
	}
	if i < len(o.Markers) {
		st.Marker = o.Markers[i]
	}
	palette := o.Colors
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	st.Color = palette[i%len(palette)]
	return st
}
