package scale

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownTransform is returned by ParseTransform.
var ErrUnknownTransform = errors.New("scale: unknown transform")

// Transform is an axis scale applied to samples before bounds inference.
type Transform int

const (
	Linear Transform = iota
	Log2
	Log10
	Ln
)

var transformNames = [...]string{
	Linear: "linear",
	Log2:   "log2",
	Log10:  "log10",
	Ln:     "ln",
}

func (t Transform) String() string {
	if t < 0 || int(t) >= len(transformNames) {
		return "unknown"
	}
	return transformNames[t]
}

// ParseTransform accepts the names printed by String. Empty means Linear.
func ParseTransform(s string) (Transform, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Linear, nil
	}
	for i, n := range transformNames {
		if n == s {
			return Transform(i), nil
		}
	}
	return Linear, errors.Wrapf(ErrUnknownTransform, "%q", s)
}

// Apply maps a data value into scaled space. Values outside the domain
// of a log scale become NaN.
func (t Transform) Apply(v float64) float64 {
	switch t {
	case Log2:
		return logOrNaN(math.Log2, v)
	case Log10:
		return logOrNaN(math.Log10, v)
	case Ln:
		return logOrNaN(math.Log, v)
	}
	return v
}

// Invert maps a scaled value back into data space.
func (t Transform) Invert(v float64) float64 {
	switch t {
	case Log2:
		return math.Exp2(v)
	case Log10:
		return math.Pow(10, v)
	case Ln:
		return math.Exp(v)
	}
	return v
}

func logOrNaN(f func(float64) float64, v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}
	return f(v)
}
