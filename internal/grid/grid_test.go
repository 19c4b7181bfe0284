package grid

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsBlank(t *testing.T) {
	m := New(3, 5)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 5, m.Cols())
	assert.True(t, m.IsBlank())
	assert.Equal(t, "     \n     \n     ", m.String())
}

func TestCloneIsDeep(t *testing.T) {
	m := New(1, 2)
	c := m.Clone()
	c[0][0].Rune = 'x'
	assert.Equal(t, ' ', m[0][0].Rune)
	assert.False(t, c.IsBlank())
}

func TestTextWideRunes(t *testing.T) {
	cells := Text("a世b", nil)
	require.Len(t, cells, 4)
	assert.Equal(t, 'a', cells[0].Rune)
	assert.Equal(t, '世', cells[1].Rune)
	assert.Equal(t, rune(0), cells[2].Rune)
	assert.Equal(t, 'b', cells[3].Rune)
}

func TestCut(t *testing.T) {
	assert.Equal(t, "hel", Cut("hello", 3))
	assert.Equal(t, "hello", Cut("hello", 10))
	assert.Equal(t, "", Cut("hello", 0))
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		want  string
	}{
		{"even", 6, "ab", "  ab  "},
		{"odd leftover right", 7, "ab", "  ab   "},
		{"hard cut", 3, "title", "tit"},
		{"exact", 5, "title", "title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(1, tt.width)
			Center(m[0], 0, tt.width, tt.text, nil)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestPutDropsSplitWideRune(t *testing.T) {
	m := New(1, 2)
	Put(m[0], 1, Text("世", nil))
	assert.Equal(t, "  ", m.String())
}

func TestRenderStylesRuns(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	m := New(1, 3)
	m[0][0] = Cell{Rune: 'a', Fg: lipgloss.Color("#ff0000")}
	m[0][1] = Cell{Rune: 'b', Fg: lipgloss.Color("#ff0000")}
	out := m.Render(r)
	assert.Contains(t, out, "38;2;255;0;0")
	assert.Contains(t, out, "ab")
	assert.Equal(t, 3, lipgloss.Width(out))

	plain := lipgloss.NewRenderer(io.Discard)
	plain.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "ab ", m.Render(plain))
}
