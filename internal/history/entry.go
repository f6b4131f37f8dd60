package history

import (
	"time"

	"github.com/charmbracelet/x/ansi"
)

// Entry is a command that was copied to the clipboard
type Entry struct {
	ID       int64
	Tool     string // pmc, cli
	Command  string
	Preset   string // preset loaded when the command was copied, may be empty
	CopiedAt time.Time
}

// CommandPreview returns the command cut to maxLen terminal cells
func (e *Entry) CommandPreview(maxLen int) string {
	if maxLen <= 3 {
		return e.Command
	}
	return ansi.Truncate(e.Command, maxLen, "...")
}
