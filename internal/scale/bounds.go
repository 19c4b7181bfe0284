// Package scale maps data coordinates onto the sub-pixel grid.
package scale

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidBounds is returned for inverted, empty or non-finite ranges.
var ErrInvalidBounds = errors.New("scale: invalid bounds")

// degenerateRel widens a zero-width range by this fraction of its value.
// A range sitting on zero is widened by degenerateAbs instead.
const (
	degenerateRel = 0.01
	degenerateAbs = 0.5
)

// Bounds is the data-space window of a plot.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Unit is the window used when there is no data at all.
var Unit = Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

// Validate checks XMin < XMax and YMin < YMax with all values and both
// widths finite.
func (b Bounds) Validate() error {
	for _, v := range [...]float64{b.XMin, b.XMax, b.YMin, b.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidBounds, "non-finite value in %+v", b)
		}
	}
	if w, h := b.XMax-b.XMin, b.YMax-b.YMin; math.IsInf(w, 0) || math.IsInf(h, 0) {
		return errors.Wrapf(ErrInvalidBounds, "range width overflows in %+v", b)
	}
	if !(b.XMin < b.XMax) {
		return errors.Wrapf(ErrInvalidBounds, "x range [%g, %g]", b.XMin, b.XMax)
	}
	if !(b.YMin < b.YMax) {
		return errors.Wrapf(ErrInvalidBounds, "y range [%g, %g]", b.YMin, b.YMax)
	}
	return nil
}

// Accumulator unions the extents of the points added to it.
// The zero value is ready to use.
type Accumulator struct {
	b Bounds
	n int
}

// Add extends the extents by one point. Non-finite values are ignored.
func (a *Accumulator) Add(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	if a.n == 0 {
		a.b = Bounds{XMin: x, XMax: x, YMin: y, YMax: y}
	} else {
		a.b.XMin = math.Min(a.b.XMin, x)
		a.b.XMax = math.Max(a.b.XMax, x)
		a.b.YMin = math.Min(a.b.YMin, y)
		a.b.YMax = math.Max(a.b.YMax, y)
	}
	a.n++
}

// Count returns the number of points added.
func (a *Accumulator) Count() int { return a.n }

// Bounds returns the union, with zero-width ranges widened. Without
// points it returns Unit.
func (a *Accumulator) Bounds() (Bounds, error) {
	if a.n == 0 {
		return Unit, nil
	}
	b := a.b
	b.XMin, b.XMax = widen(b.XMin, b.XMax)
	b.YMin, b.YMax = widen(b.YMin, b.YMax)
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

func widen(lo, hi float64) (float64, float64) {
	if lo != hi {
		return lo, hi
	}
	pad := math.Abs(lo) * degenerateRel
	if pad == 0 {
		pad = degenerateAbs
	}
	return lo - pad, hi + pad
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
