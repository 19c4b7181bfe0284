// Package series turns caller data into ordered (x, y) samples.
package series

import (
	"math"

	"github.com/pkg/errors"

	"uniplot/internal/scale"
)

var (
	// ErrDimensionMismatch is returned when paired x and y differ in length.
	ErrDimensionMismatch = errors.New("series: x and y lengths differ")
	// ErrNoDomain is returned when a function is sampled without x values.
	ErrNoDomain = errors.New("series: function needs a sample domain")
	// ErrNoData is returned by loaders that find nothing to plot.
	ErrNoData = errors.New("series: no data")
)

// Point is one sample.
type Point struct {
	X, Y float64
}

// Series is a named, ordered list of samples.
type Series struct {
	Name   string
	Points []Point
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.Points) }

// Source produces an ordered sequence of reals, optionally evaluated over a
// sample domain. Plain slices ignore the domain; functions require it.
type Source interface {
	Sample(domain []float64) ([]float64, error)
}

// Values is a Source backed by a slice.
type Values []float64

// Sample returns a copy of v.
func (v Values) Sample([]float64) ([]float64, error) {
	return append([]float64(nil), v...), nil
}

// Func is a Source evaluated at each domain value.
type Func func(x float64) float64

// Sample evaluates f over domain.
func (f Func) Sample(domain []float64) ([]float64, error) {
	if domain == nil {
		return nil, ErrNoDomain
	}
	out := make([]float64, len(domain))
	for i, x := range domain {
		out[i] = f(x)
	}
	return out, nil
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}

// FromY pairs y with x = 0, 1, 2, ...
func FromY(name string, y Source) (Series, error) {
	ys, err := y.Sample(nil)
	if err != nil {
		return Series{}, err
	}
	pts := make([]Point, len(ys))
	for i, v := range ys {
		pts[i] = Point{X: float64(i), Y: v}
	}
	return Series{Name: name, Points: pts}, nil
}

// FromXY pairs x with y sampled over x.
func FromXY(name string, x []float64, y Source) (Series, error) {
	ys, err := y.Sample(x)
	if err != nil {
		return Series{}, err
	}
	if len(ys) != len(x) {
		return Series{}, errors.Wrapf(ErrDimensionMismatch, "%s: %d x values, %d y values", name, len(x), len(ys))
	}
	pts := make([]Point, len(x))
	for i := range x {
		pts[i] = Point{X: x[i], Y: ys[i]}
	}
	return Series{Name: name, Points: pts}, nil
}

// FromFunc samples f at n points over [start, end].
func FromFunc(name string, start, end float64, n int, f Func) (Series, error) {
	return FromXY(name, Linspace(start, end, n), f)
}

// Finite returns s without NaN or infinite samples and how many were dropped.
func (s Series) Finite() (Series, int) {
	kept := make([]Point, 0, len(s.Points))
	for _, p := range s.Points {
		if isFinite(p.X) && isFinite(p.Y) {
			kept = append(kept, p)
		}
	}
	return Series{Name: s.Name, Points: kept}, len(s.Points) - len(kept)
}

// Transform applies axis transforms to every sample. Samples outside a log
// domain become NaN and are removed by Finite.
func (s Series) Transform(tx, ty scale.Transform) Series {
	if tx == scale.Linear && ty == scale.Linear {
		return s
	}
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = Point{X: tx.Apply(p.X), Y: ty.Apply(p.Y)}
	}
	return Series{Name: s.Name, Points: pts}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
