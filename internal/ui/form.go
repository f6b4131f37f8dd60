package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/ezscaffold/internal/scaffold"
)

type rowKind int

const (
	rowTool rowKind = iota
	rowText
	rowToggle
)

// row is one focusable line of the form
type row struct {
	kind  rowKind
	field scaffold.Field // unused for rowTool
	label string
}

func formRows() []row {
	return []row{
		{kind: rowTool, label: "Tool"},
		{kind: rowText, field: scaffold.ConnectionString, label: "Connection"},
		{kind: rowText, field: scaffold.Provider, label: "Provider"},
		{kind: rowText, field: scaffold.OutputDir, label: "Output dir"},
		{kind: rowText, field: scaffold.ContextDir, label: "Context dir"},
		{kind: rowText, field: scaffold.ContextName, label: "Context name"},
		{kind: rowText, field: scaffold.Schemas, label: "Schemas"},
		{kind: rowText, field: scaffold.Tables, label: "Tables"},
		{kind: rowToggle, field: scaffold.UseAnnotations, label: "Use data annotations"},
		{kind: rowToggle, field: scaffold.UseDatabaseNames, label: "Use database names"},
		{kind: rowToggle, field: scaffold.UseForce, label: "Overwrite existing files"},
	}
}

var placeholders = map[scaffold.Field]string{
	scaffold.ConnectionString: "Host=localhost;Database=shop or postgres://user@host/db",
	scaffold.Provider:         "Npgsql.EntityFrameworkCore.PostgreSQL",
	scaffold.OutputDir:        "Models",
	scaffold.ContextDir:       "Data",
	scaffold.ContextName:      "ShopContext",
	scaffold.Schemas:          "public, audit",
	scaffold.Tables:           "Orders, Customers",
}

func newInputs() map[scaffold.Field]*textinput.Model {
	inputs := make(map[scaffold.Field]*textinput.Model)
	for _, f := range scaffold.Fields {
		if f.IsBool() {
			continue
		}
		t := textinput.New()
		t.Prompt = ""
		t.Placeholder = placeholders[f]
		t.CharLimit = 1024
		t.Width = 60
		inputs[f] = &t
	}
	return inputs
}

// loadInputs copies the builder state into the text inputs
func (m *Model) loadInputs() {
	s := m.builder.State()
	for f, in := range m.inputs {
		in.SetValue(s.String(f))
		in.CursorEnd()
	}
}

func (m Model) currentRow() row {
	return m.rows[m.focused]
}

func (m *Model) focusRow(idx int) tea.Cmd {
	if r := m.currentRow(); r.kind == rowText {
		m.inputs[r.field].Blur()
	}
	m.focused = (idx + len(m.rows)) % len(m.rows)
	if r := m.currentRow(); r.kind == rowText {
		return m.inputs[r.field].Focus()
	}
	return nil
}

// activate flips the focused toggle or switches the tool
func (m *Model) activate() {
	r := m.currentRow()
	switch r.kind {
	case rowTool:
		m.builder.SetTool(m.builder.State().Tool.Toggle())
	case rowToggle:
		m.builder.SetBool(r.field, !m.builder.State().Bool(r.field))
	}
	m.clearStatus()
}

// updateInput feeds a message to the focused text field and recomputes the
// command if its value changed
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	r := m.currentRow()
	if r.kind != rowText {
		return nil
	}
	in := m.inputs[r.field]
	before := in.Value()

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	if v := in.Value(); v != before {
		m.builder.SetString(r.field, v)
		m.clearStatus()
	}
	return cmd
}

// setField writes a value into both the builder and the matching input
func (m *Model) setField(f scaffold.Field, v string) {
	m.builder.SetString(f, v)
	if in, ok := m.inputs[f]; ok {
		in.SetValue(v)
		in.CursorEnd()
	}
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.errorMsg = ""
}
