package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestCopyNative(t *testing.T) {
	var got string
	var term bytes.Buffer
	s := &System{
		WriteAll: func(text string) error { got = text; return nil },
		Terminal: &term,
	}

	if !s.Copy("dotnet ef dbcontext scaffold") {
		t.Fatal("expected copy to succeed")
	}
	if got != "dotnet ef dbcontext scaffold" {
		t.Errorf("native clipboard got %q", got)
	}
	if term.Len() != 0 {
		t.Errorf("unexpected terminal output %q", term.String())
	}
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var term bytes.Buffer
	s := &System{
		WriteAll: func(string) error { return errors.New("no xclip") },
		Terminal: &term,
	}

	if !s.Copy("Scaffold-DbContext") {
		t.Fatal("expected fallback to succeed")
	}
	encoded := base64.StdEncoding.EncodeToString([]byte("Scaffold-DbContext"))
	if !strings.Contains(term.String(), encoded) {
		t.Errorf("terminal output %q does not carry the payload", term.String())
	}
}

func TestCopyFailsWithoutFallback(t *testing.T) {
	s := &System{
		WriteAll:     func(string) error { return errors.New("no xclip") },
		DisableOSC52: true,
	}
	if s.Copy("x") {
		t.Error("expected copy to fail")
	}
	if err := s.Write("x"); err == nil || !strings.Contains(err.Error(), "no xclip") {
		t.Errorf("Write() error = %v", err)
	}
}
