package series

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// geometry is a GeoJSON geometry object. Coordinates stay raw until the type
// says how deeply they nest.
type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometries  []geometry      `json:"geometries"`
}

type feature struct {
	Geometry   *geometry      `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geoDoc struct {
	geometry
	Geometry *geometry `json:"geometry"`
	Features []feature `json:"features"`
}

// geoBuilder turns geometries into series. Points are kept apart so that a
// file holding only points plots as a scatter.
type geoBuilder struct {
	lines  []Series
	points []Point
	names  []string
}

func (b *geoBuilder) line(name string, pts [][]float64, closed bool) {
	s := Series{Name: name}
	for _, c := range pts {
		if len(c) >= 2 {
			s.Points = append(s.Points, Point{X: c[0], Y: c[1]})
		}
	}
	if closed && len(s.Points) > 1 && s.Points[0] != s.Points[len(s.Points)-1] {
		s.Points = append(s.Points, s.Points[0])
	}
	if len(s.Points) > 0 {
		b.lines = append(b.lines, s)
	}
}

func (b *geoBuilder) point(name string, c []float64) {
	if len(c) >= 2 {
		b.points = append(b.points, Point{X: c[0], Y: c[1]})
		b.names = append(b.names, name)
	}
}

func (b *geoBuilder) add(g geometry, name string) error {
	var err error
	switch g.Type {
	case "Point":
		var c []float64
		if err = json.Unmarshal(g.Coordinates, &c); err == nil {
			b.point(name, c)
		}
	case "MultiPoint":
		var cs [][]float64
		if err = json.Unmarshal(g.Coordinates, &cs); err == nil {
			for _, c := range cs {
				b.point(name, c)
			}
		}
	case "LineString":
		var cs [][]float64
		if err = json.Unmarshal(g.Coordinates, &cs); err == nil {
			b.line(name, cs, false)
		}
	case "MultiLineString", "Polygon":
		var rings [][][]float64
		if err = json.Unmarshal(g.Coordinates, &rings); err == nil {
			for _, r := range rings {
				b.line(name, r, g.Type == "Polygon")
			}
		}
	case "MultiPolygon":
		var polys [][][][]float64
		if err = json.Unmarshal(g.Coordinates, &polys); err == nil {
			for _, p := range polys {
				for _, r := range p {
					b.line(name, r, true)
				}
			}
		}
	case "GeometryCollection":
		for _, sub := range g.Geometries {
			if err = b.add(sub, name); err != nil {
				break
			}
		}
	default:
		return errors.Errorf("series: unsupported geojson type %q", g.Type)
	}
	return errors.Wrapf(err, "geojson %s", g.Type)
}

// dataset returns lines only when there are no lines to draw points
// between; otherwise every point becomes its own one-sample series.
func (b *geoBuilder) dataset() (Dataset, error) {
	if len(b.lines) == 0 && len(b.points) == 0 {
		return Dataset{}, errors.Wrap(ErrNoData, "no geometries found")
	}
	if len(b.lines) == 0 {
		name := ""
		if len(b.names) > 0 {
			name = b.names[0]
		}
		return Dataset{Series: []Series{{Name: name, Points: b.points}}, Scatter: true}, nil
	}
	d := Dataset{Series: b.lines}
	for i, p := range b.points {
		d.Series = append(d.Series, Series{Name: b.names[i], Points: []Point{p}})
	}
	return d, nil
}

// ReadGeoJSON reads a GeoJSON geometry, Feature or FeatureCollection.
// Longitude is x and latitude is y. A feature's "name" property names its
// series.
func ReadGeoJSON(r io.Reader) (Dataset, error) {
	var doc geoDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Dataset{}, errors.Wrap(err, "series: geojson")
	}
	var b geoBuilder
	switch doc.Type {
	case "FeatureCollection":
		for _, f := range doc.Features {
			if f.Geometry == nil {
				continue
			}
			if err := b.add(*f.Geometry, featureName(f.Properties)); err != nil {
				return Dataset{}, err
			}
		}
	case "Feature":
		if doc.Geometry != nil {
			if err := b.add(*doc.Geometry, ""); err != nil {
				return Dataset{}, err
			}
		}
	case "":
		return Dataset{}, errors.Wrap(ErrNoData, "geojson: missing type")
	default:
		if err := b.add(doc.geometry, ""); err != nil {
			return Dataset{}, err
		}
	}
	return b.dataset()
}

func featureName(props map[string]any) string {
	if s, ok := props["name"].(string); ok {
		return s
	}
	return ""
}

// ReadKML reads the Point, LineString and LinearRing coordinates of every
// Placemark, at any depth of Document and Folder nesting. Altitude is
// ignored.
func ReadKML(r io.Reader) (Dataset, error) {
	dec := xml.NewDecoder(r)
	var (
		b     geoBuilder
		stack []string
		name  string
	)
	parent := func() string {
		// stack ends in "coordinates"; the geometry is just above it
		if len(stack) < 2 {
			return ""
		}
		return stack[len(stack)-2]
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, errors.Wrap(err, "series: kml")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			if t.Name.Local == "Placemark" {
				name = ""
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			switch stack[len(stack)-1] {
			case "name":
				if len(stack) >= 2 && stack[len(stack)-2] == "Placemark" {
					name = strings.TrimSpace(string(t))
				}
			case "coordinates":
				cs := kmlTuples(string(t))
				switch parent() {
				case "Point":
					for _, c := range cs {
						b.point(name, c)
					}
				case "LineString":
					b.line(name, cs, false)
				case "LinearRing":
					b.line(name, cs, true)
				}
			}
		}
	}
	return b.dataset()
}

// kmlTuples splits "lon,lat[,alt] lon,lat[,alt] ..." and skips bad tuples.
func kmlTuples(s string) [][]float64 {
	var out [][]float64
	for _, tup := range strings.Fields(s) {
		parts := strings.Split(tup, ",")
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, []float64{x, y})
	}
	return out
}
