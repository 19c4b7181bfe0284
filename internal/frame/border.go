package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// ErrUnknownBorder is returned by ParseBorder.
var ErrUnknownBorder = errors.New("frame: unknown border")

// BorderStyle selects the glyphs of the frame.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderASCII
)

var borderNames = [...]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderASCII:   "ascii",
}

func (b BorderStyle) String() string {
	if b < 0 || int(b) >= len(borderNames) {
		return "unknown"
	}
	return borderNames[b]
}

// ParseBorder accepts the names printed by String. Empty means none.
func ParseBorder(s string) (BorderStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BorderNone, nil
	}
	for i, n := range borderNames {
		if n == s {
			return BorderStyle(i), nil
		}
	}
	return BorderNone, errors.Wrapf(ErrUnknownBorder, "%q", s)
}

// Next cycles through the styles.
func (b BorderStyle) Next() BorderStyle {
	return (b + 1) % BorderStyle(len(borderNames))
}

// Glyphs returns the lipgloss border backing the style. BorderNone maps to
// the hidden border, which is all spaces.
func (b BorderStyle) Glyphs() lipgloss.Border {
	switch b {
	case BorderSingle:
		return lipgloss.NormalBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderASCII:
		return lipgloss.ASCIIBorder()
	}
	return lipgloss.HiddenBorder()
}

// ring is the subset of a lipgloss border the frame draws, one rune each.
type ring struct {
	top, bottom, left, right rune
	topLeft, topRight        rune
	bottomLeft, bottomRight  rune
	leftTick, bottomTick     rune
}

func ringOf(b lipgloss.Border) ring {
	return ring{
		top:         first(b.Top),
		bottom:      first(b.Bottom),
		left:        first(b.Left),
		right:       first(b.Right),
		topLeft:     first(b.TopLeft),
		topRight:    first(b.TopRight),
		bottomLeft:  first(b.BottomLeft),
		bottomRight: first(b.BottomRight),
		leftTick:    first(b.MiddleRight),
		bottomTick:  first(b.MiddleTop),
	}
}

func first(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
