// Package viewer is a full screen terminal view of a plot that re-renders
// on resize and lets the user switch styles, browse data files and paste
// data.
package viewer

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"uniplot/internal/canvas"
	"uniplot/internal/grid"
	"uniplot/internal/plot"
	"uniplot/internal/series"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	ctx      context.Context
	renderer *lipgloss.Renderer

	width  int
	height int

	opts   plot.Options
	data   series.Dataset
	source string

	// last render
	matrix grid.Matrix
	stats  plot.Stats
	status string

	keys keyMap
	help help.Model

	// file sidebar
	showSidebar bool
	cwd         string
	l           list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// per-series stats table
	showStats bool
	tbl       table.Model
}

// New returns a viewer for d drawn with opts. source names the data in the
// header.
func New(ctx context.Context, opts plot.Options, d series.Dataset, source string) Model {
	m := Model{
		ctx:      ctx,
		renderer: lipgloss.DefaultRenderer(),
		opts:     opts,
		keys:     newKeyMap(),
		help:     help.New(),
	}
	m.cwd, _ = os.Getwd()

	dl := list.NewDefaultDelegate()
	dl.ShowDescription = false
	m.l = list.New(nil, dl, 0, 0)
	m.l.Title = "Data files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.ta = textarea.New()
	m.ta.Placeholder = "Paste CSV, JSON or WKT here. Enter renders, Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	m.load(d, source)
	return m
}

// WithRenderer sets the renderer used for the plot colours.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	return m
}

// WithDir sets the directory listed in the file sidebar.
func (m Model) WithDir(dir string) Model {
	m.cwd = dir
	m.refreshDir()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Options returns the current plot options.
func (m Model) Options() plot.Options { return m.opts }

// Matrix returns the last rendered plot.
func (m Model) Matrix() grid.Matrix { return m.matrix }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

func (m *Model) load(d series.Dataset, source string) {
	m.data = d
	m.source = source
	if d.Scatter {
		m.opts.Scatter = true
	}
	m.status = fmt.Sprintf("%s  series=%d points=%d", source, len(d.Series), d.Points())
	if m.showStats {
		m.refreshStats()
	}
	m.rerender()
}

// plotArea is the space left for the plot after the chrome.
func (m Model) plotArea() (int, int) {
	w := m.width
	if m.showSidebar {
		w -= sidebarWidth + 1
	}
	return max(w, 1), max(m.height-headerHeight-footerHeight, 1)
}

func (m *Model) rerender() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w, h := m.plotArea()
	res, err := plot.Fit(m.ctx, m.opts, w, h, m.data.Series...)
	if err != nil {
		m.matrix = nil
		m.status = "render error: " + err.Error()
		return
	}
	m.matrix, m.stats = res.Matrix, res.Stats
}

func (m *Model) nextGlyphs() {
	cur := m.opts.Glyphs
	if cur == nil {
		cur = canvas.Braille
	}
	for i, g := range canvas.GlyphSets {
		if g == cur {
			m.opts.Glyphs = canvas.GlyphSets[(i+1)%len(canvas.GlyphSets)]
			return
		}
	}
	m.opts.Glyphs = canvas.Braille
}
