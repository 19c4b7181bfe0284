package plot

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"uniplot/internal/canvas"
	"uniplot/internal/frame"
	"uniplot/internal/grid"
	"uniplot/internal/logging"
	"uniplot/internal/raster"
	"uniplot/internal/scale"
	"uniplot/internal/series"
)

// Figure is a set of series drawn together with one set of options.
type Figure struct {
	opts   Options
	series []series.Series
}

// Stats describes what a render drew.
type Stats struct {
	Series  int
	Points  int
	Dropped int
	// Bounds is the window in scaled space.
	Bounds scale.Bounds
}

// Result is a finished render.
type Result struct {
	Matrix grid.Matrix
	Stats  Stats
}

// NewFigure validates o and keeps the series.
func NewFigure(o Options, s ...series.Series) (*Figure, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Figure{opts: o, series: s}, nil
}

// Options returns the figure options.
func (f *Figure) Options() Options { return f.opts }

// Series returns the figure series.
func (f *Figure) Series() []series.Series { return f.series }

// WithOptions returns a copy of f drawn with o.
func (f *Figure) WithOptions(o Options) (*Figure, error) {
	return NewFigure(o, f.series...)
}

// Render draws every series on a fresh canvas and frames it. A figure with
// no finite samples renders a blank plot area. ctx is checked between
// stages; a cancelled render returns no matrix.
func (f *Figure) Render(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	o := f.opts
	log := logging.For("plot")

	// scale and filter
	prepared := make([]series.Series, len(f.series))
	var (
		acc   scale.Accumulator
		stats Stats
	)
	for i, s := range f.series {
		kept, dropped := s.Transform(o.XScale, o.YScale).Finite()
		if dropped > 0 {
			log.WithFields(logrus.Fields{"series": i, "dropped": dropped}).Debug("non-finite samples")
		}
		for _, p := range kept.Points {
			acc.Add(p.X, p.Y)
		}
		prepared[i] = kept
		stats.Points += kept.Len()
		stats.Dropped += dropped
	}
	stats.Series = len(f.series)

	var (
		b   scale.Bounds
		err error
	)
	if o.Bounds != nil {
		b, err = o.scaledBounds()
	} else {
		b, err = acc.Bounds()
	}
	if err != nil {
		return Result{}, err
	}
	stats.Bounds = b
	log.WithField("bounds", b).Debug("bounds")

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// rasterize
	c, err := canvas.New(o.Width, o.Height, o.glyphs())
	if err != nil {
		return Result{}, err
	}
	geo := c.Geometry()
	m, err := scale.NewMapper(b, geo.Width(), geo.Height())
	if err != nil {
		return Result{}, err
	}
	r := raster.New(c, m)
	for i, s := range prepared {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		pts := make([]raster.Point, len(s.Points))
		for j, p := range s.Points {
			pts[j] = raster.Point(p)
		}
		r.DrawSeries(pts, o.style(i))
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// decorate
	fo := frame.Options{
		Border:      o.Border,
		Title:       o.Title,
		XLabel:      o.XLabel,
		YLabel:      o.YLabel,
		ShowAxes:    o.ShowAxes,
		Bounds:      b,
		XTransform:  o.XScale,
		YTransform:  o.YScale,
		XTicks:      o.XTicks,
		YTicks:      o.YTicks,
		XPrecision:  o.XPrecision,
		YPrecision:  o.YPrecision,
		BorderColor: o.BorderColor,
		LabelColor:  o.LabelColor,
	}
	if o.Legend {
		fo.Legend = f.legend()
	}
	return Result{Matrix: frame.Compose(c.GlyphMatrix(), fo), Stats: stats}, nil
}

// legend lists every named series with the glyph it is drawn with.
func (f *Figure) legend() []frame.LegendEntry {
	g := f.opts.glyphs()
	full := g.Table[len(g.Table)-1]
	var out []frame.LegendEntry
	for i, s := range f.series {
		name := s.Name
		if i < len(f.opts.Names) && f.opts.Names[i] != "" {
			name = f.opts.Names[i]
		}
		if name == "" {
			continue
		}
		st := f.opts.style(i)
		glyph := full
		if st.Marker != raster.NoMarker {
			glyph = st.Marker.Rune()
		}
		out = append(out, frame.LegendEntry{Glyph: glyph, Name: name, Color: st.Color})
	}
	return out
}

// RenderAll renders independent figures concurrently, at most workers at a
// time (unlimited when workers <= 0). The first error cancels the rest.
func RenderAll(ctx context.Context, figs []*Figure, workers int) ([]Result, error) {
	out := make([]Result, len(figs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, f := range figs {
		i, f := i, f
		g.Go(func() error {
			res, err := f.Render(ctx)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Fit renders s so that the decorated result fits in cols x rows cells.
// Decorations are measured on a first render and the plot area shrunk by
// the excess.
func Fit(ctx context.Context, o Options, cols, rows int, s ...series.Series) (Result, error) {
	o.Width, o.Height = max(cols, 1), max(rows, 1)
	f, err := NewFigure(o, s...)
	if err != nil {
		return Result{}, err
	}
	res, err := f.Render(ctx)
	if err != nil {
		return Result{}, err
	}
	dw, dh := res.Matrix.Cols()-cols, res.Matrix.Rows()-rows
	if dw <= 0 && dh <= 0 {
		return res, nil
	}
	o.Width = max(o.Width-max(dw, 0), 1)
	o.Height = max(o.Height-max(dh, 0), 1)
	if f, err = f.WithOptions(o); err != nil {
		return Result{}, err
	}
	return f.Render(ctx)
}
