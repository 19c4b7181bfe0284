package canvas

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedGlyphPattern means a glyph table does not cover every mask.
// The built-in sets cover all of them, so this only fires for a malformed
// custom set.
var ErrUnsupportedGlyphPattern = errors.New("canvas: glyph table incomplete")

// ErrUnknownGlyphSet is returned by ParseGlyphSet.
var ErrUnknownGlyphSet = errors.New("canvas: unknown glyph set")

// GlyphSet describes how a cell is split into sub-pixels and which rune
// shows each combination of lit sub-pixels.
type GlyphSet struct {
	Name       string
	SubX, SubY int
	// Bits[x][y] is the mask bit of sub-pixel (x, y) inside a cell.
	Bits [][]uint8
	// Table is indexed by mask and holds 1<<(SubX*SubY) runes.
	Table []rune
}

// Validate checks the geometry, the bit layout and that the table has one
// rune per mask.
func (g *GlyphSet) Validate() error {
	n := g.SubX * g.SubY
	if g.SubX <= 0 || g.SubY <= 0 || n > 8 {
		return errors.Errorf("canvas: %s: %dx%d sub-pixels per cell", g.Name, g.SubX, g.SubY)
	}
	if len(g.Table) != 1<<n {
		return errors.Wrapf(ErrUnsupportedGlyphPattern, "%s: %d runes for %d masks", g.Name, len(g.Table), 1<<n)
	}
	if len(g.Bits) != g.SubX {
		return errors.Errorf("canvas: %s: bit layout has %d columns", g.Name, len(g.Bits))
	}
	var seen uint8
	for x := range g.Bits {
		if len(g.Bits[x]) != g.SubY {
			return errors.Errorf("canvas: %s: bit layout column %d has %d rows", g.Name, x, len(g.Bits[x]))
		}
		for _, bit := range g.Bits[x] {
			if bit == 0 || bit&(bit-1) != 0 || seen&bit != 0 {
				return errors.Errorf("canvas: %s: bad bit %#02x", g.Name, bit)
			}
			seen |= bit
		}
	}
	for mask, r := range g.Table {
		if r == 0 {
			return errors.Wrapf(ErrUnsupportedGlyphPattern, "%s: mask %#02x", g.Name, mask)
		}
	}
	return nil
}

// Glyph returns the rune for a mask.
func (g *GlyphSet) Glyph(mask uint8) rune {
	if int(mask) >= len(g.Table) {
		panic(errors.Wrapf(ErrUnsupportedGlyphPattern, "%s: mask %#02x", g.Name, mask))
	}
	return g.Table[mask]
}

// Braille packs 2x4 dots per cell using U+2800..U+28FF. The dot numbering
// puts dots 7 and 8 in the high bits:
//
//	1 4      0x01 0x08
//	2 5  ->  0x02 0x10
//	3 6      0x04 0x20
//	7 8      0x40 0x80
var Braille = &GlyphSet{
	Name: "braille",
	SubX: 2,
	SubY: 4,
	Bits: [][]uint8{
		{0x01, 0x02, 0x04, 0x40},
		{0x08, 0x10, 0x20, 0x80},
	},
	Table: brailleTable(),
}

func brailleTable() []rune {
	t := make([]rune, 256)
	t[0] = ' '
	for mask := 1; mask < 256; mask++ {
		t[mask] = rune(0x2800 + mask)
	}
	return t
}

// Quadrant packs 2x2 blocks per cell.
var Quadrant = &GlyphSet{
	Name: "quadrant",
	SubX: 2,
	SubY: 2,
	Bits: [][]uint8{
		{0x1, 0x4},
		{0x2, 0x8},
	},
	// bit 0 upper left, 1 upper right, 2 lower left, 3 lower right
	Table: []rune{
		' ', '▘', '▝', '▀',
		'▖', '▌', '▞', '▛',
		'▗', '▚', '▐', '▜',
		'▄', '▙', '▟', '█',
	},
}

// HalfBlock packs 1x2 blocks per cell.
var HalfBlock = &GlyphSet{
	Name:  "half",
	SubX:  1,
	SubY:  2,
	Bits:  [][]uint8{{0x1, 0x2}},
	Table: []rune{' ', '▀', '▄', '█'},
}

// Dot uses one sub-pixel per cell.
var Dot = &GlyphSet{
	Name:  "dot",
	SubX:  1,
	SubY:  1,
	Bits:  [][]uint8{{0x1}},
	Table: []rune{' ', '•'},
}

// GlyphSets lists the built-in sets by name.
var GlyphSets = []*GlyphSet{Braille, Quadrant, HalfBlock, Dot}

// ParseGlyphSet looks a built-in set up by name. Empty means Braille.
func ParseGlyphSet(name string) (*GlyphSet, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Braille, nil
	}
	for _, g := range GlyphSets {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownGlyphSet, "%q", name)
}
