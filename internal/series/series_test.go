package series

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniplot/internal/scale"
)

func TestFromY(t *testing.T) {
	s, err := FromY("a", Values{3, 1, 4})
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 3}, {1, 1}, {2, 4}}, s.Points)
	assert.Equal(t, "a", s.Name)
}

func TestFromYFuncNeedsDomain(t *testing.T) {
	_, err := FromY("f", Func(math.Sin))
	assert.True(t, errors.Is(err, ErrNoDomain))
}

func TestFromXYMismatch(t *testing.T) {
	_, err := FromXY("a", []float64{1, 2, 3}, Values{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestFromFunc(t *testing.T) {
	s, err := FromFunc("sq", 0, 2, 3, func(x float64) float64 { return x * x })
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 4}}, s.Points)
}

func TestLinspace(t *testing.T) {
	assert.Nil(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{5}, Linspace(5, 9, 1))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	v := Linspace(0, 0.3, 4)
	assert.Equal(t, 0.3, v[3])
}

func TestFinite(t *testing.T) {
	s, err := FromXY("a", []float64{0, 1, 2, 3}, Values{1, math.NaN(), math.Inf(1), 2})
	require.NoError(t, err)
	kept, dropped := s.Finite()
	assert.Equal(t, 2, dropped)
	assert.Equal(t, []Point{{0, 1}, {3, 2}}, kept.Points)
	assert.Len(t, s.Points, 4)
}

func TestTransformDropsLogDomain(t *testing.T) {
	s, _ := FromXY("a", []float64{1, 2, 3}, Values{-1, 10, 100})
	out, dropped := s.Transform(scale.Linear, scale.Log10).Finite()
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []Point{{2, 1}, {3, 2}}, out.Points)
}

func TestReadCSVHeader(t *testing.T) {
	in := "t,x,cpu\n0,1,5\n1,2,oops\n2,3,7\n"
	d, err := ReadCSV(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, d.Series, 2)
	assert.Equal(t, "t", d.Series[0].Name)
	assert.Equal(t, "cpu", d.Series[1].Name)
	assert.Equal(t, Point{X: 1, Y: 0}, d.Series[0].Points[0])
	assert.True(t, math.IsNaN(d.Series[1].Points[1].Y))
	_, dropped := d.Series[1].Finite()
	assert.Equal(t, 1, dropped)
}

func TestReadCSVSingleColumnNoHeader(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("4\n5\n6\n"), false)
	require.NoError(t, err)
	require.Len(t, d.Series, 1)
	assert.Equal(t, []Point{{0, 4}, {1, 5}, {2, 6}}, d.Series[0].Points)
	assert.Equal(t, "y0", d.Series[0].Name)
}

func TestReadCSVTabs(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("1\t2\n3\t4\n"), true)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, d.Series[0].Points)
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), false)
	assert.True(t, errors.Is(err, ErrNoData))
	_, err = ReadCSV(strings.NewReader("x,y\n"), false)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		series  int
		first   Point
		scatter bool
	}{
		{"object", `{"series":[{"name":"a","x":[1,2],"y":[3,4]},{"y":[5]}],"scatter":true}`, 2, Point{1, 3}, true},
		{"objects", `[{"name":"a","y":[7,8]}]`, 1, Point{0, 7}, false},
		{"pairs", `[[1,2],[3,4]]`, 1, Point{1, 2}, false},
		{"values", `[9, null, 8]`, 1, Point{0, 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ReadJSON(strings.NewReader(tt.in))
			require.NoError(t, err)
			require.Len(t, d.Series, tt.series)
			assert.Equal(t, tt.first, d.Series[0].Points[0])
			assert.Equal(t, tt.scatter, d.Scatter)
		})
	}
}

func TestReadJSONErrors(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`[]`))
	assert.True(t, errors.Is(err, ErrNoData))
	_, err = ReadJSON(strings.NewReader(`{"x":1}`))
	assert.True(t, errors.Is(err, ErrNoData))
	_, err = ReadJSON(strings.NewReader(`[{"x":[1,2],"y":[1]}]`))
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = ReadJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestParseWKT(t *testing.T) {
	d, err := ParseWKT("POINT (1 2)")
	require.NoError(t, err)
	assert.True(t, d.Scatter)
	assert.Equal(t, []Point{{1, 2}}, d.Series[0].Points)

	d, err = ParseWKT("MULTIPOINT ((1 2), (3 4))")
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, d.Series[0].Points)

	d, err = ParseWKT("LINESTRING (0 0, 1 1, 2 0)")
	require.NoError(t, err)
	assert.False(t, d.Scatter)
	assert.Len(t, d.Series[0].Points, 3)

	d, err = ParseWKT("POLYGON ((0 0, 1 0, 1 1))")
	require.NoError(t, err)
	pts := d.Series[0].Points
	require.Len(t, pts, 4)
	assert.Equal(t, pts[0], pts[3])

	d, err = ParseWKT("MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))")
	require.NoError(t, err)
	require.Len(t, d.Series, 2)
	assert.Equal(t, Point{2, 2}, d.Series[1].Points[0])
}

func TestParseWKTErrors(t *testing.T) {
	_, err := ParseWKT("")
	assert.True(t, errors.Is(err, ErrNoData))
	_, err = ParseWKT("CIRCLE (1 2)")
	assert.Error(t, err)
	_, err = ParseWKT("LINESTRING (a b)")
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "d.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,2\n"), 0o644))
	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Points())

	bad := filepath.Join(dir, "d.xml")
	require.NoError(t, os.WriteFile(bad, []byte("<a/>"), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	d, err := Parse("[[0,1],[1,2]]")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Points())

	d, err = Parse("  POINT (3 4)\n")
	require.NoError(t, err)
	assert.True(t, d.Scatter)

	d, err = Parse("1\t2\n3\t4")
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, d.Series[0].Points)

	d, err = Parse("a,b\n1,2\n")
	require.NoError(t, err)
	assert.Equal(t, "b", d.Series[0].Name)

	_, err = Parse(" \n")
	assert.True(t, errors.Is(err, ErrNoData))
}
