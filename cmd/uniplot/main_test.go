package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniplot/internal/frame"
	"uniplot/internal/series"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--color", "never"))
	err := root.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestLineFromFlags(t *testing.T) {
	out, err := run(t, "", "line", "--y", "1,4,2,8", "-W", "30", "-H", "8")
	require.NoError(t, err)
	ls := lines(out)
	assert.LessOrEqual(t, len(ls), 8)
	for _, l := range ls {
		assert.LessOrEqual(t, lipgloss.Width(l), 30, l)
	}
	assert.Contains(t, out, "┌")
}

func TestScatterFromStdin(t *testing.T) {
	out, err := run(t, "1,2\n3,4\n5,1\n", "scatter", "--border", "none", "--axes=false", "-W", "10", "-H", "4")
	require.NoError(t, err)
	assert.Len(t, lines(out), 4)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestLineFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.wkt")
	require.NoError(t, os.WriteFile(path, []byte("LINESTRING (0 0, 1 1, 2 0)"), 0o644))
	_, err := run(t, "", "line", path, "-W", "20", "-H", "6")
	assert.NoError(t, err)
}

func TestFuncLegend(t *testing.T) {
	out, err := run(t, "", "func", "sin", "cos", "--legend", "-W", "50", "-H", "14")
	require.NoError(t, err)
	assert.Contains(t, out, "sin")
	assert.Contains(t, out, "cos")
}

func TestErrors(t *testing.T) {
	_, err := run(t, "", "func", "nope")
	assert.ErrorContains(t, err, "unknown function")

	_, err = run(t, "", "func", "sin", "--from", "1", "--to", "1")
	assert.Error(t, err)

	_, err = run(t, "", "line", "--x", "1,2", "--y", "1")
	assert.True(t, errors.Is(err, series.ErrDimensionMismatch), err)

	_, err = run(t, "", "line", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = run(t, "", "line", "--y", "1", "--border", "thick")
	assert.True(t, errors.Is(err, frame.ErrUnknownBorder), err)

	_, err = run(t, "", "scatter")
	assert.True(t, errors.Is(err, series.ErrNoData), err)
}

func writePNG(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestImageBlocks(t *testing.T) {
	path := writePNG(t, 4, 4, color.NRGBA{255, 0, 0, 255})
	out, err := run(t, "", "image", path, "--border", "none", "-W", "2", "-H", "1")
	require.NoError(t, err)
	assert.Equal(t, "█\n", out)

	out, err = run(t, "", "image", path, "-W", "12", "-H", "6")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "┌"), out)
}

func TestImageGraphics(t *testing.T) {
	path := writePNG(t, 4, 4, color.NRGBA{0, 0, 255, 255})
	out, err := run(t, "", "image", path, "--graphics", "kitty")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x1b_Ga=T"))
}

func TestImageUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))
	_, err := run(t, "", "image", path)
	assert.ErrorContains(t, err, "decode")
}
