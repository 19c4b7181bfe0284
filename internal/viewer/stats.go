package viewer

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"uniplot/internal/scale"
)

// refreshStats rebuilds the table from the current data, one row per series.
func (m *Model) refreshStats() {
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "series", Width: 14},
		{Title: "points", Width: 7},
		{Title: "dropped", Width: 7},
		{Title: "x min", Width: 9},
		{Title: "x max", Width: 9},
		{Title: "y min", Width: 9},
		{Title: "y max", Width: 9},
	}
	rows := make([]table.Row, 0, len(m.data.Series))
	for i, s := range m.data.Series {
		name := s.Name
		if i < len(m.opts.Names) && m.opts.Names[i] != "" {
			name = m.opts.Names[i]
		}
		kept, dropped := s.Transform(m.opts.XScale, m.opts.YScale).Finite()
		var acc scale.Accumulator
		for _, p := range kept.Points {
			acc.Add(p.X, p.Y)
		}
		row := table.Row{strconv.Itoa(i + 1), name, strconv.Itoa(kept.Len()), strconv.Itoa(dropped), "-", "-", "-", "-"}
		if acc.Count() > 0 {
			b, _ := acc.Bounds()
			row[4] = num(m.opts.XScale.Invert(b.XMin))
			row[5] = num(m.opts.XScale.Invert(b.XMax))
			row[6] = num(m.opts.YScale.Invert(b.YMin))
			row[7] = num(m.opts.YScale.Invert(b.YMax))
		}
		rows = append(rows, row)
	}
	// clear rows before swapping columns so the table never sees a mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 5, 64)
}
