package raster

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/rivo/uniseg"
)

// ErrUnknownMarker is returned by ParseMarker.
var ErrUnknownMarker = errors.New("raster: unknown marker")

// Marker is a glyph drawn at each sample of a series. NoMarker draws
// nothing extra.
type Marker rune

const NoMarker Marker = 0

// Named markers.
const (
	MarkerDot      Marker = '•'
	MarkerCircle   Marker = '○'
	MarkerCross    Marker = '×'
	MarkerPlus     Marker = '+'
	MarkerStar     Marker = '*'
	MarkerSquare   Marker = '■'
	MarkerDiamond  Marker = '◆'
	MarkerTriangle Marker = '▲'
)

// narrow treats ambiguous-width runes as one cell regardless of locale.
var narrow = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

var markerNames = map[string]Marker{
	"none":     NoMarker,
	"dot":      MarkerDot,
	"circle":   MarkerCircle,
	"cross":    MarkerCross,
	"plus":     MarkerPlus,
	"star":     MarkerStar,
	"square":   MarkerSquare,
	"diamond":  MarkerDiamond,
	"triangle": MarkerTriangle,
}

// Rune returns the glyph.
func (m Marker) Rune() rune { return rune(m) }

// ParseMarker accepts a marker name or a single glyph one cell wide.
func ParseMarker(s string) (Marker, error) {
	if mk, ok := markerNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return mk, nil
	}
	if s == "" || uniseg.GraphemeClusterCount(s) != 1 {
		return NoMarker, errors.Wrapf(ErrUnknownMarker, "%q", s)
	}
	r := []rune(s)
	if len(r) != 1 || narrow.RuneWidth(r[0]) != 1 {
		return NoMarker, errors.Wrapf(ErrUnknownMarker, "%q is not one cell wide", s)
	}
	return Marker(r[0]), nil
}

// ParseMarkers parses each entry of list.
func ParseMarkers(list []string) ([]Marker, error) {
	out := make([]Marker, 0, len(list))
	for _, s := range list {
		mk, err := ParseMarker(s)
		if err != nil {
			return nil, err
		}
		out = append(out, mk)
	}
	return out, nil
}
