package historytable

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/ezscaffold/internal/config"
	"github.com/nhath/ezscaffold/internal/history"
)

func TestSelectedFollowsCursor(t *testing.T) {
	now := time.Now()
	entries := []history.Entry{
		{ID: 7, Tool: "cli", Command: "dotnet ef dbcontext scaffold -f", CopiedAt: now},
		{ID: 3, Tool: "pmc", Command: "Scaffold-DbContext -Force", Preset: "shop", CopiedAt: now.Add(-time.Hour)},
	}
	m := New(config.DefaultConfig().Theme, entries)

	if m.Len() != 2 {
		t.Fatalf("Len = %d", m.Len())
	}
	if e := m.Selected(); e == nil || e.ID != 7 {
		t.Fatalf("initial selection = %+v", e)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if e := m.Selected(); e == nil || e.ID != 3 {
		t.Errorf("selection after down = %+v", e)
	}

	if v := m.View(); !strings.Contains(v, "shop") {
		t.Errorf("view is missing the preset column:\n%s", v)
	}
}

func TestEmpty(t *testing.T) {
	m := New(config.DefaultConfig().Theme, nil)
	if m.Selected() != nil {
		t.Error("empty table has a selection")
	}
	if !strings.Contains(m.View(), "No commands") {
		t.Errorf("empty view = %q", m.View())
	}
}
