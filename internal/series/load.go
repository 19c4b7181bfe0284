package series

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Dataset is what a loader found. Scatter is set when the source describes
// unconnected points.
type Dataset struct {
	Series  []Series
	Scatter bool
}

// Points returns the total number of samples.
func (d Dataset) Points() int {
	n := 0
	for _, s := range d.Series {
		n += s.Len()
	}
	return n
}

// LoadFile reads a .csv, .tsv, .json, .geojson, .kml or .wkt file.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	ext := strings.ToLower(filepath.Ext(path))
	var d Dataset
	switch ext {
	case ".csv", ".tsv":
		d, err = ReadCSV(f, ext == ".tsv")
	case ".json":
		d, err = ReadJSON(f)
	case ".geojson":
		d, err = ReadGeoJSON(f)
	case ".kml":
		d, err = ReadKML(f)
	case ".wkt":
		var b []byte
		if b, err = io.ReadAll(f); err == nil {
			d, err = ParseWKT(string(b))
		}
	default:
		return Dataset{}, errors.Errorf("series: unsupported file %q", ext)
	}
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "load %s", filepath.Base(path))
	}
	return d, nil
}

// Parse guesses the format of s: KML when it starts with '<', GeoJSON when
// a JSON object carries coordinates or features, JSON when it starts with a
// bracket, WKT when it starts with a word followed by a parenthesis, CSV
// otherwise (tab separated when it contains a tab).
func Parse(s string) (Dataset, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Dataset{}, errors.Wrap(ErrNoData, "empty input")
	case s[0] == '<':
		return ReadKML(strings.NewReader(s))
	case s[0] == '{' && (strings.Contains(s, `"coordinates"`) || strings.Contains(s, `"features"`)):
		return ReadGeoJSON(strings.NewReader(s))
	case s[0] == '{' || s[0] == '[':
		return ReadJSON(strings.NewReader(s))
	case isLetter(s[0]) && strings.Contains(s, "("):
		return ParseWKT(s)
	default:
		return ReadCSV(strings.NewReader(s), strings.Contains(s, "\t"))
	}
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// ReadCSV reads numeric columns. A column headed x (any case) holds the x
// values; otherwise the first of several columns does. Every other column
// is a series named after its header. A single column is y over its index.
// Cells that do not parse become NaN and are dropped when plotting.
func ReadCSV(r io.Reader, tabs bool) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	if tabs {
		cr.Comma = '\t'
	}
	recs, err := cr.ReadAll()
	if err != nil {
		return Dataset{}, err
	}
	if len(recs) == 0 {
		return Dataset{}, errors.Wrap(ErrNoData, "empty csv")
	}
	cols := len(recs[0])
	header := make([]string, cols)
	body := recs
	if !numericRow(recs[0]) {
		copy(header, recs[0])
		body = recs[1:]
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if header[i] == "" {
			header[i] = "y" + strconv.Itoa(i)
		}
	}
	if len(body) == 0 {
		return Dataset{}, errors.Wrap(ErrNoData, "csv has no rows")
	}

	column := func(i int) []float64 {
		out := make([]float64, len(body))
		for j, row := range body {
			out[j] = math.NaN()
			if i < len(row) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64); err == nil {
					out[j] = v
				}
			}
		}
		return out
	}

	if cols == 1 {
		s, err := FromY(header[0], Values(column(0)))
		return Dataset{Series: []Series{s}}, err
	}
	xi := 0
	for i, h := range header {
		if strings.EqualFold(h, "x") {
			xi = i
			break
		}
	}
	xs := column(xi)
	var d Dataset
	for i := 0; i < cols; i++ {
		if i == xi {
			continue
		}
		s, err := FromXY(header[i], xs, Values(column(i)))
		if err != nil {
			return Dataset{}, err
		}
		d.Series = append(d.Series, s)
	}
	return d, nil
}

func numericRow(row []string) bool {
	for _, c := range row {
		if _, err := strconv.ParseFloat(strings.TrimSpace(c), 64); err != nil {
			return false
		}
	}
	return true
}

// ReadJSON accepts
//
//	{"series": [{"name": "a", "x": [...], "y": [...]}], "scatter": false}
//	[{"name": "a", "x": [...], "y": [...]}]
//	[[x, y], [x, y], ...]
//	[y, y, y, ...]
//
// A series without x is plotted over its index.
func ReadJSON(r io.Reader) (Dataset, error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Dataset{}, err
	}
	var d Dataset
	switch v := raw.(type) {
	case map[string]any:
		d.Scatter, _ = v["scatter"].(bool)
		list, ok := v["series"].([]any)
		if !ok {
			return Dataset{}, errors.Wrap(ErrNoData, "json: missing series array")
		}
		if err := d.addObjects(list); err != nil {
			return Dataset{}, err
		}
	case []any:
		if len(v) == 0 {
			return Dataset{}, errors.Wrap(ErrNoData, "json: empty array")
		}
		switch v[0].(type) {
		case map[string]any:
			if err := d.addObjects(v); err != nil {
				return Dataset{}, err
			}
		case []any:
			var s Series
			for _, el := range v {
				if pt, ok := parsePair(el); ok {
					s.Points = append(s.Points, pt)
				}
			}
			d.Series = append(d.Series, s)
		default:
			s, err := FromY("", Values(numbers(v)))
			if err != nil {
				return Dataset{}, err
			}
			d.Series = append(d.Series, s)
		}
	default:
		return Dataset{}, errors.Wrap(ErrNoData, "json: expected object or array")
	}
	if d.Points() == 0 {
		return Dataset{}, errors.Wrap(ErrNoData, "json: no samples")
	}
	return d, nil
}

func (d *Dataset) addObjects(list []any) error {
	for _, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		name, _ := obj["name"].(string)
		ys, _ := obj["y"].([]any)
		var (
			s   Series
			err error
		)
		if xs, ok := obj["x"].([]any); ok {
			s, err = FromXY(name, numbers(xs), Values(numbers(ys)))
		} else {
			s, err = FromY(name, Values(numbers(ys)))
		}
		if err != nil {
			return err
		}
		d.Series = append(d.Series, s)
	}
	return nil
}

// numbers converts JSON values; null and non-numbers become NaN.
func numbers(v []any) []float64 {
	out := make([]float64, len(v))
	for i, el := range v {
		f, ok := el.(float64)
		if !ok {
			f = math.NaN()
		}
		out[i] = f
	}
	return out
}

func parsePair(v any) (Point, bool) {
	if a, ok := v.([]any); ok && len(a) >= 2 {
		x, xok := a[0].(float64)
		y, yok := a[1].(float64)
		if xok && yok {
			return Point{X: x, Y: y}, true
		}
	}
	return Point{}, false
}
