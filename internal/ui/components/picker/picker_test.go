package picker

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/ezscaffold/internal/config"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func TestLoadKeepsFormSelection(t *testing.T) {
	m := New(config.DefaultConfig().Theme).
		Load([]string{"public"}, []string{"orders", "customers"}, []string{"public"}, []string{"legacy"})

	if m.ActiveTab() != TabTables {
		t.Errorf("active tab = %v, want Tables", m.ActiveTab())
	}
	if got := m.Selected(TabTables); !reflect.DeepEqual(got, []string{"legacy"}) {
		t.Errorf("tables = %v", got)
	}
	if got := m.Selected(TabSchemas); !reflect.DeepEqual(got, []string{"public"}) {
		t.Errorf("schemas = %v", got)
	}
}

func TestToggleAndApply(t *testing.T) {
	m := New(config.DefaultConfig().Theme).
		Load([]string{"public", "audit"}, []string{"orders", "customers"}, nil, nil)

	m, _ = press(m, " ", "down", " ", "tab", "down", " ")
	m, cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	picked, ok := cmd().(PickedMsg)
	if !ok {
		t.Fatalf("enter produced %T", cmd())
	}
	if !reflect.DeepEqual(picked.Tables, []string{"orders", "customers"}) {
		t.Errorf("tables = %v", picked.Tables)
	}
	if !reflect.DeepEqual(picked.Schemas, []string{"audit"}) {
		t.Errorf("schemas = %v", picked.Schemas)
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}

func TestSelectAll(t *testing.T) {
	m := New(config.DefaultConfig().Theme).Load(nil, []string{"a", "b"}, nil, []string{"a"})

	m, _ = press(m, "a")
	if got := m.Selected(TabTables); len(got) != 2 {
		t.Errorf("after select all = %v", got)
	}
	m, _ = press(m, "a")
	if got := m.Selected(TabTables); len(got) != 0 {
		t.Errorf("after clear all = %v", got)
	}
}
