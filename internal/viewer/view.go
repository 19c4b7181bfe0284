package viewer

import "github.com/charmbracelet/lipgloss"

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	plotW, plotH := m.plotArea()

	header := titleStyle.Render(" uniplot ─ " + m.source + " ")
	header = lipgloss.NewStyle().Width(m.width).MaxHeight(headerHeight).Render(header)

	var body string
	switch {
	case m.help.ShowAll:
		body = lipgloss.Place(plotW, plotH, lipgloss.Center, lipgloss.Center, boxStyle.Render(m.help.FullHelpView(m.keys.FullHelp())))
	case m.showStats:
		w := 0
		for _, c := range m.tbl.Columns() {
			w += c.Width + 2
		}
		m.tbl.SetWidth(min(w, plotW-4))
		m.tbl.SetHeight(min(plotH-2, 20))
		box := boxStyle.Render(m.tbl.View())
		body = lipgloss.Place(plotW, plotH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(plotW)
		m.ta.SetHeight(min(plotH, 12))
		body = lipgloss.NewStyle().Width(plotW).Height(plotH).Render(m.ta.View())
	case m.matrix == nil:
		body = lipgloss.Place(plotW, plotH, lipgloss.Center, lipgloss.Center, errStyle.Render(m.status))
	default:
		body = lipgloss.Place(plotW, plotH, lipgloss.Center, lipgloss.Center, m.matrix.Render(m.renderer))
	}
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(plotH).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}

	status := dimStyle.Render(" " + m.status + " ")
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(m.width).Render(status),
		lipgloss.NewStyle().MaxWidth(m.width).Render(" "+helpView),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).MaxHeight(m.height).Render(ui)
}
