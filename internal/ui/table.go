package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// ToTableColumns converts column definitions for bubbles/table.
func ToTableColumns(columns []TableColumn) []table.Column {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	return cols
}

// TableStyles returns the shared table styling. Focused tables highlight the
// cursor row.
func TableStyles(focused bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorNeonPink)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	if focused {
		s.Selected = s.Selected.
			Foreground(ColorPrimary).
			Background(ColorGlassBorder).
			Bold(true)
	} else {
		s.Selected = s.Cell
	}
	return s
}

// NewTable creates a focused, navigable table showing height rows.
func NewTable(columns []TableColumn, height int) table.Model {
	t := table.New(
		table.WithColumns(ToTableColumns(columns)),
		table.WithFocused(true),
		table.WithHeight(height+1), // +1 for header
	)
	t.SetStyles(TableStyles(true))
	return t
}

// RenderSimpleTable renders a non-interactive table string for CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := table.New(
		table.WithColumns(ToTableColumns(columns)),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(TableStyles(false))
	return t.View()
}
