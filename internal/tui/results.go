package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshResults rebuilds the results table from the latest centroid
// summary: one row per accepted shape plus a global row.
func (m *Model) refreshResults() {
	if len(m.summary.Shapes) == 0 && !m.summary.HasGlobal {
		m.showResults = false
		m.status = "no centroid results for current dataset"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "kind", Width: 10},
		{Title: "area", Width: 14},
		{Title: "cx", Width: 14},
		{Title: "cy", Width: 14},
	}
	rows := make([]table.Row, 0, len(m.summary.Shapes)+1)
	for _, sr := range m.summary.Shapes {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", sr.Index),
			sr.Kind.String(),
			fmt.Sprintf("%.4f", sr.Result.SignedArea),
			fmt.Sprintf("%.4f", sr.Result.X),
			fmt.Sprintf("%.4f", sr.Result.Y),
		})
	}
	if m.summary.HasGlobal {
		rows = append(rows, table.Row{
			"*",
			"global",
			"",
			fmt.Sprintf("%.4f", m.summary.Global.X),
			fmt.Sprintf("%.4f", m.summary.Global.Y),
		})
	}
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.SetCursor(0)
}
