package scale

import (
	"math"

	"github.com/pkg/errors"
)

// Mapper converts data coordinates to sub-pixel coordinates.
type Mapper struct {
	b          Bounds
	subW, subH int
}

// NewMapper builds a mapper for a subW x subH sub-pixel grid.
func NewMapper(b Bounds, subW, subH int) (Mapper, error) {
	if err := b.Validate(); err != nil {
		return Mapper{}, err
	}
	if subW <= 0 || subH <= 0 {
		return Mapper{}, errors.Errorf("scale: sub-pixel grid %dx%d", subW, subH)
	}
	return Mapper{b: b, subW: subW, subH: subH}, nil
}

// Bounds returns the data window.
func (m Mapper) Bounds() Bounds { return m.b }

// Map returns the sub-pixel column and row of (x, y), clamped to the grid.
// Rows grow downward, so y is inverted. Ties round away from zero.
func (m Mapper) Map(x, y float64) (col, row int) {
	fx := unit((x - m.b.XMin) / (m.b.XMax - m.b.XMin))
	fy := unit((y - m.b.YMin) / (m.b.YMax - m.b.YMin))
	col = int(math.Round(fx * float64(m.subW-1)))
	row = (m.subH - 1) - int(math.Round(fy*float64(m.subH-1)))
	return clamp(col, 0, m.subW-1), clamp(row, 0, m.subH-1)
}

// unit clamps a fraction to [0, 1] before it is scaled to an int, so far
// out-of-range values cannot overflow the conversion. NaN maps to 0.
func unit(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Min(math.Max(f, 0), 1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
