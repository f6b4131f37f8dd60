package main

import (
	"testing"

	"github.com/nhath/ezscaffold/internal/config"
	"github.com/nhath/ezscaffold/internal/scaffold"
)

func TestInitialState(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DefaultTool = "cli"
	cfg.Presets = []config.Preset{{Name: "shop", Tool: "pmc", ConnectionString: "Host=x", UseForce: true}}

	s, err := initialState(cfg, "", "")
	if err != nil || s.Tool != scaffold.CLI {
		t.Errorf("default = %+v, %v", s, err)
	}

	s, err = initialState(cfg, "shop", "")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if got := scaffold.Render(s); got != `Scaffold-DbContext "Host=x" -Force` {
		t.Errorf("preset command = %q", got)
	}

	s, err = initialState(cfg, "shop", "cli")
	if err != nil || s.Tool != scaffold.CLI || !s.UseForce {
		t.Errorf("preset with -tool = %+v, %v", s, err)
	}

	if _, err := initialState(cfg, "missing", ""); err == nil {
		t.Error("expected an error for an unknown preset")
	}
	if _, err := initialState(cfg, "", "vs"); err == nil {
		t.Error("expected an error for an unknown tool")
	}
}
