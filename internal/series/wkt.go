package series

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseWKT reads a subset of well-known text as plot data.
// Supported: POINT, MULTIPOINT (scatter), LINESTRING, MULTILINESTRING and
// POLYGON (each ring closed and drawn as a line).
func ParseWKT(wkt string) (Dataset, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Dataset{}, errors.Wrap(ErrNoData, "empty wkt")
	}
	up := strings.ToUpper(s)
	body := func(open, close string) (string, error) {
		i := strings.Index(s, open)
		j := strings.LastIndex(s, close)
		if i < 0 || j <= i {
			return "", errors.Errorf("series: wkt %s: invalid", strings.Fields(up)[0])
		}
		return s[i+len(open) : j], nil
	}
	var d Dataset
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
		b, err := body("(", ")")
		if err != nil {
			return Dataset{}, err
		}
		// MULTIPOINT((1 2), (3 4)) and MULTIPOINT(1 2, 3 4) are both valid
		b = strings.NewReplacer("(", "", ")", "").Replace(b)
		d.Scatter = true
		d.Series = []Series{{Points: parseTuples(b)}}
	case strings.HasPrefix(up, "MULTILINESTRING"), strings.HasPrefix(up, "POLYGON"):
		b, err := body("((", "))")
		if err != nil {
			return Dataset{}, err
		}
		closed := strings.HasPrefix(up, "POLYGON")
		for _, part := range splitRings(b) {
			pts := parseTuples(part)
			if closed && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
				pts = append(pts, pts[0])
			}
			d.Series = append(d.Series, Series{Points: pts})
		}
	case strings.HasPrefix(up, "LINESTRING"):
		b, err := body("(", ")")
		if err != nil {
			return Dataset{}, err
		}
		d.Series = []Series{{Points: parseTuples(b)}}
	default:
		return Dataset{}, errors.New("series: unsupported wkt type")
	}
	if d.Points() == 0 {
		return Dataset{}, errors.Wrap(ErrNoData, "wkt: no coordinates parsed")
	}
	return d, nil
}

func splitRings(s string) []string {
	norm := strings.ReplaceAll(s, " ", "")
	if !strings.Contains(norm, "),(") {
		return []string{s}
	}
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.Trim(strings.TrimSpace(s[start:i]), "()"))
				start = i + 1
			}
		}
	}
	out = append(out, strings.Trim(strings.TrimSpace(s[start:]), "()"))
	return out
}

func parseTuples(block string) []Point {
	var out []Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, Point{X: x, Y: y})
	}
	return out
}
