package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestToTableColumns(t *testing.T) {
	cols := ToTableColumns([]TableColumn{{Title: "PID", Width: 7}, {Title: "NAME", Width: 20}})
	assert.Equal(t, []table.Column{{Title: "PID", Width: 7}, {Title: "NAME", Width: 20}}, cols)
}

func TestNewTable(t *testing.T) {
	tbl := NewTable([]TableColumn{{Title: "Name", Width: 20}, {Title: "Status", Width: 10}}, 5)
	tbl.SetRows([]table.Row{{"item1", "ok"}, {"item2", "error"}})

	assert.True(t, tbl.Focused())

	view := tbl.View()
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Status")
	assert.Contains(t, view, "item1")
	assert.Contains(t, view, "item2")

	tbl.MoveDown(1)
	assert.Equal(t, 1, tbl.Cursor())
	assert.Equal(t, table.Row{"item2", "error"}, tbl.SelectedRow())
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Key", Width: 15},
		{Title: "Value", Width: 10},
	}
	rows := [][]string{
		{"graph.mode", "braille"},
		{"graph.height", "4"},
	}

	output := RenderSimpleTable(columns, rows)

	assert.Contains(t, output, "Key")
	assert.Contains(t, output, "graph.mode")
	assert.Contains(t, output, "braille")
	assert.Contains(t, output, "graph.height")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "Name", Width: 20}}, nil))
}
