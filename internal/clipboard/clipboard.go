// Package clipboard writes generated commands to the system clipboard.
package clipboard

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// System copies through the platform clipboard utility and falls back to an
// OSC 52 terminal sequence, which also works over SSH.
type System struct {
	// WriteAll writes to the native clipboard. Defaults to atotto/clipboard.
	WriteAll func(string) error
	// Terminal receives the OSC 52 fallback. Defaults to stderr.
	Terminal io.Writer
	// DisableOSC52 turns the fallback off.
	DisableOSC52 bool
}

// New returns a System clipboard with the default writers
func New() *System {
	return &System{
		WriteAll: clipboard.WriteAll,
		Terminal: os.Stderr,
	}
}

// Write copies text and returns the first error if every method failed
func (s *System) Write(text string) error {
	writeAll := s.WriteAll
	if writeAll == nil {
		writeAll = clipboard.WriteAll
	}

	err := writeAll(text)
	if err == nil {
		return nil
	}
	log.Printf("clipboard: native write failed: %v", err)

	if s.DisableOSC52 {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}

	term := s.Terminal
	if term == nil {
		term = os.Stderr
	}
	seq := osc52.New(text)
	if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		seq = seq.Screen()
	} else if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, oscErr := seq.WriteTo(term); oscErr != nil {
		return fmt.Errorf("clipboard copy failed: %w (osc52: %v)", err, oscErr)
	}
	return nil
}

// Copy implements scaffold.Copier
func (s *System) Copy(text string) bool {
	return s.Write(text) == nil
}
