// Message types for the Bubble Tea Update cycle
package ui

import (
	"github.com/nhath/ezscaffold/internal/db"
	"github.com/nhath/ezscaffold/internal/history"
)

// ClipboardCopiedMsg is sent when a clipboard copy completes
type ClipboardCopiedMsg struct {
	Command string
	OK      bool
	Message string
	Err     error // history write failure, the copy itself may still have succeeded
}

// HistoryLoadedMsg is sent when history loads from SQLite
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// HistoryDeletedMsg is sent after a history entry is removed
type HistoryDeletedMsg struct {
	ID  int64
	Err error
}

// IntrospectedMsg is sent when database introspection completes
type IntrospectedMsg struct {
	Catalog *db.Catalog
	Err     error
}
