package history

import (
	"path/filepath"
	"testing"
	"time"
	"unicode/utf8"
)

func newTestStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := NewStoreAt(filepath.Join(t.TempDir(), "history.db"), limit)
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAddList(t *testing.T) {
	s := newTestStore(t, 0)
	now := time.Now()

	entries := []*Entry{
		{Tool: "pmc", Command: `Scaffold-DbContext "Host=x" -Force`, CopiedAt: now.Add(-2 * time.Minute)},
		{Tool: "cli", Command: "dotnet ef dbcontext scaffold -d", Preset: "shop", CopiedAt: now.Add(-time.Minute)},
	}
	for _, e := range entries {
		if err := s.Add(e); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if e.ID == 0 {
			t.Error("Add did not assign an ID")
		}
	}

	got, err := s.List(10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d entries", len(got))
	}
	if got[0].Command != entries[1].Command || got[0].Preset != "shop" {
		t.Errorf("newest entry = %+v", got[0])
	}

	page, err := s.List(1, 1)
	if err != nil {
		t.Fatalf("List page: %v", err)
	}
	if len(page) != 1 || page[0].ID != entries[0].ID {
		t.Errorf("second page = %+v", page)
	}
}

func TestStoreSearchDeleteCount(t *testing.T) {
	s := newTestStore(t, 0)
	for _, c := range []string{"Scaffold-DbContext -Tables \"a\"", "dotnet ef dbcontext scaffold -t \"a\"", "Scaffold-DbContext -Force"} {
		if err := s.Add(&Entry{Tool: "pmc", Command: c}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	found, err := s.Search("Scaffold-DbContext", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("Search found %d entries, want 2", len(found))
	}

	if err := s.Delete(found[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if e, err := s.GetByID(found[0].ID); err != nil || e != nil {
		t.Errorf("GetByID after delete = %+v, %v", e, err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestStoreEnforcesLimitAndRetention(t *testing.T) {
	s := newTestStore(t, 2)
	now := time.Now()

	if err := s.Add(&Entry{Tool: "pmc", Command: "old", CopiedAt: now.AddDate(0, 0, -(retentionDays + 1))}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if n, _ := s.Count(); n != 0 {
		t.Errorf("expired entry kept, count = %d", n)
	}

	for i, c := range []string{"one", "two", "three"} {
		if err := s.Add(&Entry{Tool: "cli", Command: c, CopiedAt: now.Add(time.Duration(i) * time.Second)}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := s.List(10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Command != "three" || got[1].Command != "two" {
		t.Errorf("entries after limit = %+v", got)
	}
}

func TestCommandPreview(t *testing.T) {
	e := Entry{Command: "dotnet ef dbcontext scaffold"}
	if got := e.CommandPreview(10); got != "dotnet ..." {
		t.Errorf("CommandPreview = %q", got)
	}
	if got := e.CommandPreview(100); got != e.Command {
		t.Errorf("CommandPreview = %q", got)
	}

	// multi-byte characters are never split
	u := Entry{Command: `Scaffold-DbContext "Data Source=données.db"`}
	got := u.CommandPreview(40)
	if !utf8.ValidString(got) || got != `Scaffold-DbContext "Data Source=donné...` {
		t.Errorf("CommandPreview = %q", got)
	}
}
