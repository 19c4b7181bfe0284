package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"uniplot/internal/series"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, h := m.plotArea()
		m.l.SetSize(sidebarWidth-2, h-2)
		m.rerender()
	case tea.KeyMsg:
		// while the list filters, it owns the keyboard
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Border):
			m.opts.Border = m.opts.Border.Next()
			m.status = "border: " + m.opts.Border.String()
			m.rerender()
		case key.Matches(msg, m.keys.Axes):
			m.opts.ShowAxes = !m.opts.ShowAxes
			m.status = fmt.Sprintf("axes: %v", m.opts.ShowAxes)
			m.rerender()
		case key.Matches(msg, m.keys.Scatter):
			m.opts.Scatter = !m.opts.Scatter
			m.status = fmt.Sprintf("scatter: %v", m.opts.Scatter)
			m.rerender()
		case key.Matches(msg, m.keys.Glyphs):
			m.nextGlyphs()
			m.status = "glyphs: " + m.opts.Glyphs.Name
			m.rerender()
		case key.Matches(msg, m.keys.Legend):
			m.opts.Legend = !m.opts.Legend
			m.status = fmt.Sprintf("legend: %v", m.opts.Legend)
			m.rerender()
		case key.Matches(msg, m.keys.Stats):
			m.showStats = !m.showStats
			if m.showStats {
				m.refreshStats()
			}
		case key.Matches(msg, m.keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
			_, h := m.plotArea()
			m.l.SetSize(sidebarWidth-2, h-2)
			m.rerender()
		case key.Matches(msg, m.keys.Open):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case key.Matches(msg, m.keys.Paste):
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			cmd := m.ta.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := series.Parse(text)
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		m.load(d, "pasted")
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}
