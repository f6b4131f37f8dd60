// Package historytable renders copied commands in a bubble-table.
package historytable

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/ezscaffold/internal/config"
	"github.com/nhath/ezscaffold/internal/history"
)

const (
	colID      = "id"
	colWhen    = "when"
	colTool    = "tool"
	colPreset  = "preset"
	colCommand = "command"

	pageSize    = 12
	minCmdWidth = 30
)

// Model wraps a bubble-table holding history entries
type Model struct {
	table   bbtable.Model
	theme   config.Theme
	entries []history.Entry
	width   int
}

// New builds a table for the given entries
func New(theme config.Theme, entries []history.Entry) Model {
	m := Model{theme: theme, width: 100}
	return m.SetEntries(entries)
}

// SetEntries replaces the rows
func (m Model) SetEntries(entries []history.Entry) Model {
	m.entries = entries
	m.table = m.build()
	return m
}

// SetWidth resizes the command column to fit
func (m Model) SetWidth(w int) Model {
	m.width = w
	cursor := m.table.GetHighlightedRowIndex()
	m.table = m.build().WithHighlightedRow(cursor)
	return m
}

// Len returns the number of entries shown
func (m Model) Len() int {
	return len(m.entries)
}

// Selected returns the highlighted entry, nil when the table is empty
func (m Model) Selected() *history.Entry {
	data := m.table.HighlightedRow().Data
	if data == nil {
		return nil
	}
	id, ok := data[colID].(int64)
	if !ok {
		return nil
	}
	for i := range m.entries {
		if m.entries[i].ID == id {
			e := m.entries[i]
			return &e
		}
	}
	return nil
}

func (m Model) build() bbtable.Model {
	cmdWidth := m.width - 48
	if cmdWidth < minCmdWidth {
		cmdWidth = minCmdWidth
	}

	cols := []bbtable.Column{
		bbtable.NewColumn(colWhen, "Copied", 16),
		bbtable.NewColumn(colTool, "Tool", 6),
		bbtable.NewColumn(colPreset, "Preset", 12),
		bbtable.NewColumn(colCommand, "Command", cmdWidth),
	}

	faint := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.TextFaint))
	toolStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))

	rows := make([]bbtable.Row, 0, len(m.entries))
	for i := range m.entries {
		e := &m.entries[i]
		preset := e.Preset
		if preset == "" {
			preset = "-"
		}
		rows = append(rows, bbtable.NewRow(bbtable.RowData{
			colID:      e.ID,
			colWhen:    bbtable.NewStyledCell(e.CopiedAt.Local().Format("2006-01-02 15:04"), faint),
			colTool:    bbtable.NewStyledCell(strings.ToUpper(e.Tool), toolStyle),
			colPreset:  preset,
			colCommand: e.CommandPreview(cmdWidth - 2),
		}))
	}

	return bbtable.New(cols).
		WithRows(rows).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.TextPrimary))).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Highlight)).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Success)).
			Bold(true)).
		WithPageSize(pageSize).
		Focused(true).
		BorderRounded()
}

// Update forwards navigation keys to the table
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table
func (m Model) View() string {
	if len(m.entries) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.TextFaint)).
			Render("No commands copied yet")
	}
	return m.table.View()
}
