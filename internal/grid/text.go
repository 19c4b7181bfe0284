package grid

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// narrow treats ambiguous-width runes as one cell regardless of locale.
var narrow = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Cut hard-cuts s to at most width display columns. No tail is added.
func Cut(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// Text lays s out as cells, one per display column. Zero-width runes are
// dropped; a double-width rune is followed by a continuation cell.
func Text(s string, fg lipgloss.TerminalColor) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		switch narrow.RuneWidth(r) {
		case 0:
			continue
		case 2:
			cells = append(cells, Cell{Rune: r, Fg: fg}, Cell{Fg: fg})
		default:
			cells = append(cells, Cell{Rune: r, Fg: fg})
		}
	}
	return cells
}

// Put copies cells into row starting at column x, clipping at both ends.
// A double-width rune that would be split at the right edge is dropped.
func Put(row []Cell, x int, cells []Cell) {
	for i, c := range cells {
		at := x + i
		if at < 0 {
			continue
		}
		if at >= len(row) {
			return
		}
		if c.Rune != 0 && i+1 < len(cells) && cells[i+1].Rune == 0 && at+1 >= len(row) {
			row[at] = Cell{Rune: ' ', Fg: c.Fg, Bg: c.Bg}
			return
		}
		row[at] = c
	}
}

// Center writes s centred in row[x:x+width], hard-cut to width.
// Odd leftover space goes to the right.
func Center(row []Cell, x, width int, s string, fg lipgloss.TerminalColor) {
	cells := Text(Cut(s, width), fg)
	Put(row, x+(width-len(cells))/2, cells)
}
