package raster

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniplot/internal/canvas"
	"uniplot/internal/scale"
)

type step struct{ x, y int }

func walk(x0, y0, x1, y1 int) []step {
	var out []step
	Bresenham(x0, y0, x1, y1, func(x, y int) { out = append(out, step{x, y}) })
	return out
}

func TestBresenhamConnectedAllOctants(t *testing.T) {
	ends := []struct {
		name   string
		dx, dy int
	}{
		{"octant 0", 9, 3},
		{"octant 1", 3, 9},
		{"octant 2", -3, 9},
		{"octant 3", -9, 3},
		{"octant 4", -9, -3},
		{"octant 5", -3, -9},
		{"octant 6", 3, -9},
		{"octant 7", 9, -3},
		{"horizontal right", 12, 0},
		{"horizontal left", -12, 0},
		{"vertical down", 0, 12},
		{"vertical up", 0, -12},
		{"diagonal", 7, 7},
		{"anti diagonal", -7, 7},
	}
	const x0, y0 = 20, 20
	for _, tt := range ends {
		t.Run(tt.name, func(t *testing.T) {
			path := walk(x0, y0, x0+tt.dx, y0+tt.dy)
			require.NotEmpty(t, path)
			assert.Equal(t, step{x0, y0}, path[0])
			assert.Equal(t, step{x0 + tt.dx, y0 + tt.dy}, path[len(path)-1])

			longest := max(abs(tt.dx), abs(tt.dy))
			assert.Len(t, path, longest+1, "one sub-pixel per step on the major axis")
			for i := 1; i < len(path); i++ {
				ddx := abs(path[i].x - path[i-1].x)
				ddy := abs(path[i].y - path[i-1].y)
				assert.True(t, ddx <= 1 && ddy <= 1 && ddx+ddy > 0,
					"step %d %v -> %v is not 8-adjacent", i, path[i-1], path[i])
			}
		})
	}
}

func TestBresenhamDegenerate(t *testing.T) {
	assert.Equal(t, []step{{4, 5}}, walk(4, 5, 4, 5))
}

func TestBresenhamSymmetricCoverage(t *testing.T) {
	fwd := walk(0, 0, 11, 4)
	back := walk(11, 4, 0, 0)
	assert.Len(t, back, len(fwd))
}

func newRig(t *testing.T, cols, rows int, b scale.Bounds) (*canvas.Canvas, *Rasterizer) {
	t.Helper()
	c, err := canvas.New(cols, rows, canvas.Braille)
	require.NoError(t, err)
	geo := c.Geometry()
	m, err := scale.NewMapper(b, geo.Width(), geo.Height())
	require.NoError(t, err)
	return c, New(c, m)
}

func TestLineTouchesCorners(t *testing.T) {
	b := scale.Bounds{XMin: -3, XMax: 5, YMin: 10, YMax: 20}
	c, r := newRig(t, 20, 10, b)
	r.DrawLine(Point{X: -3, Y: 20}, Point{X: 5, Y: 10})

	m := c.GlyphMatrix()
	assert.NotEqual(t, ' ', m[0][0].Rune)
	assert.NotEqual(t, ' ', m[9][19].Rune)
	assert.True(t, c.Test(0, 0))
	assert.True(t, c.Test(39, 39))
}

func TestDrawSeriesModes(t *testing.T) {
	pts := []Point{{0, 0}, {10, 10}}
	b := scale.Bounds{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	c, r := newRig(t, 10, 5, b)
	r.DrawSeries(pts, Style{Mode: Scatter})
	lit := 0
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			if c.Test(x, y) {
				lit++
			}
		}
	}
	assert.Equal(t, 2, lit, "scatter skips interpolation")

	c, r = newRig(t, 10, 5, b)
	r.DrawSeries(pts, Style{Mode: Lines})
	lit = 0
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			if c.Test(x, y) {
				lit++
			}
		}
	}
	assert.Equal(t, 20, lit)
}

func TestSingleSampleLineDrawsPoint(t *testing.T) {
	c, r := newRig(t, 4, 2, scale.Unit)
	r.DrawSeries([]Point{{0.5, 0.5}}, Style{Mode: Lines})
	assert.False(t, c.GlyphMatrix().IsBlank())
}

func TestMarkerTakesPrecedence(t *testing.T) {
	b := scale.Bounds{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	c, r := newRig(t, 10, 5, b)
	red := lipgloss.Color("196")
	r.DrawSeries([]Point{{0, 0}, {10, 10}}, Style{Mode: Lines, Marker: MarkerCross, Color: red})
	m := c.GlyphMatrix()
	assert.Equal(t, '×', m[4][0].Rune)
	assert.Equal(t, red, m[4][0].Fg)
	assert.Equal(t, '×', m[0][9].Rune)
	// the line between the markers is still drawn
	assert.NotEqual(t, ' ', m[2][5].Rune)
}

func TestScatterMarkerOnly(t *testing.T) {
	c, r := newRig(t, 4, 2, scale.Unit)
	r.DrawSeries([]Point{{0, 0}}, Style{Mode: Scatter, Marker: MarkerStar})
	assert.Equal(t, uint8(0), c.Mask(0, 1))
	assert.Equal(t, '*', c.GlyphMatrix()[1][0].Rune)
}

func TestParseMarker(t *testing.T) {
	tests := []struct {
		in   string
		want Marker
		ok   bool
	}{
		{"dot", MarkerDot, true},
		{"Circle", MarkerCircle, true},
		{"none", NoMarker, true},
		{"x", Marker('x'), true},
		{"•", MarkerDot, true},
		{"", NoMarker, false},
		{"xy", NoMarker, false},
		{"世", NoMarker, false},
		{"é", NoMarker, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMarker(tt.in)
			if !tt.ok {
				assert.True(t, errors.Is(err, ErrUnknownMarker))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	list, err := ParseMarkers([]string{"dot", "+"})
	require.NoError(t, err)
	assert.Equal(t, []Marker{MarkerDot, MarkerPlus}, list)
	_, err = ParseMarkers([]string{"dot", "nope"})
	assert.Error(t, err)
}
