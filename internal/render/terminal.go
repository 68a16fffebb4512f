package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pmurley/linkboard/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Terminal renders the entries as a bordered text table
func Terminal(entries models.EntryList, state models.SortState, loadErr error) string {
	headers := make([]string, 0, len(models.Columns))
	for _, col := range models.Columns {
		title := col.Title()
		if state.Active(col) {
			title += " " + state.Order.Arrow()
		}
		headers = append(headers, title)
	}

	var rows [][]string
	if loadErr != nil {
		rows = [][]string{{ErrorMessage, "", ""}}
	} else {
		rows = entries.Rows()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}
