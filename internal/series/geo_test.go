package series

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGeoJSONPointsScatter(t *testing.T) {
	in := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"name":"a"},"geometry":{"type":"Point","coordinates":[1,2]}},
		{"type":"Feature","geometry":{"type":"MultiPoint","coordinates":[[3,4],[5,6,7]]}},
		{"type":"Feature","geometry":null}
	]}`
	d, err := ReadGeoJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, d.Scatter)
	require.Len(t, d.Series, 1)
	assert.Equal(t, "a", d.Series[0].Name)
	assert.Equal(t, []Point{{1, 2}, {3, 4}, {5, 6}}, d.Series[0].Points)
}

func TestReadGeoJSONMixed(t *testing.T) {
	in := `{"type":"GeometryCollection","geometries":[
		{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2]]]},
		{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[3,3],[4,4]]]},
		{"type":"Point","coordinates":[9,9]}
	]}`
	d, err := ReadGeoJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.False(t, d.Scatter)
	require.Len(t, d.Series, 4)
	ring := d.Series[0].Points
	require.Len(t, ring, 4)
	assert.Equal(t, ring[0], ring[3])
	assert.Equal(t, []Point{{9, 9}}, d.Series[3].Points)
}

func TestReadGeoJSONErrors(t *testing.T) {
	_, err := ReadGeoJSON(strings.NewReader(`{"coordinates":[1,2]}`))
	assert.True(t, errors.Is(err, ErrNoData))
	_, err = ReadGeoJSON(strings.NewReader(`{"type":"Circle","coordinates":[1,2]}`))
	assert.Error(t, err)
	_, err = ReadGeoJSON(strings.NewReader(`{"type":"LineString","coordinates":"x"}`))
	assert.Error(t, err)
	_, err = ReadGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	assert.True(t, errors.Is(err, ErrNoData))
}

const kmlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document><Folder>
  <Placemark><name>home</name><Point><coordinates>1,2,0</coordinates></Point></Placemark>
  <Placemark><name>route</name><LineString><coordinates>0,0 1,1 2,0</coordinates></LineString></Placemark>
  <Placemark><Polygon><outerBoundaryIs><LinearRing>
    <coordinates>0,0 3,0 3,3</coordinates>
  </LinearRing></outerBoundaryIs></Polygon></Placemark>
</Folder></Document></kml>`

func TestReadKML(t *testing.T) {
	d, err := ReadKML(strings.NewReader(kmlDoc))
	require.NoError(t, err)
	require.Len(t, d.Series, 3)
	assert.Equal(t, "route", d.Series[0].Name)
	assert.Len(t, d.Series[0].Points, 3)
	assert.Len(t, d.Series[1].Points, 4)
	assert.Equal(t, "home", d.Series[2].Name)
	assert.Equal(t, []Point{{1, 2}}, d.Series[2].Points)
}

func TestReadKMLPointsOnly(t *testing.T) {
	in := `<kml><Placemark><Point><coordinates>5,6 bad 7,8</coordinates></Point></Placemark></kml>`
	d, err := ReadKML(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, d.Scatter)
	assert.Equal(t, []Point{{5, 6}, {7, 8}}, d.Series[0].Points)

	_, err = ReadKML(strings.NewReader(`<kml></kml>`))
	assert.True(t, errors.Is(err, ErrNoData))
	_, err = ReadKML(strings.NewReader(`<kml><Placemark>`))
	assert.Error(t, err)
}

func TestParseGeoFormats(t *testing.T) {
	d, err := Parse(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Points())

	d, err = Parse(kmlDoc)
	require.NoError(t, err)
	assert.Equal(t, 8, d.Points())
}

func TestLoadGeoFiles(t *testing.T) {
	dir := t.TempDir()
	gj := filepath.Join(dir, "a.geojson")
	require.NoError(t, os.WriteFile(gj, []byte(`{"type":"Point","coordinates":[1,1]}`), 0o644))
	d, err := LoadFile(gj)
	require.NoError(t, err)
	assert.True(t, d.Scatter)

	k := filepath.Join(dir, "a.kml")
	require.NoError(t, os.WriteFile(k, []byte(kmlDoc), 0o644))
	d, err = LoadFile(k)
	require.NoError(t, err)
	assert.Len(t, d.Series, 3)
}
