// cmd/ezscaffold/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/ezscaffold/internal/clipboard"
	"github.com/nhath/ezscaffold/internal/config"
	"github.com/nhath/ezscaffold/internal/db"
	"github.com/nhath/ezscaffold/internal/history"
	"github.com/nhath/ezscaffold/internal/scaffold"
	"github.com/nhath/ezscaffold/internal/ui"
)

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging to debug.log")
	presetName := flag.String("preset", "", "Load a saved preset into the form")
	toolName := flag.String("tool", "", "Command flavour: pmc or cli (default from config)")
	printOnly := flag.Bool("print", false, "Print the command and exit without starting the UI")
	sshTarget := flag.String("ssh", "", "Introspect through an SSH jump host (user@host[:port])")
	sshKey := flag.String("ssh-key", "", "Private key for -ssh")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Printf("fatal: could not open debug log: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	state, err := initialState(cfg, *presetName, *toolName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *printOnly {
		fmt.Println(scaffold.Render(state))
		return
	}

	var tunnel *db.SSHConfig
	if *sshTarget != "" {
		tunnel, err = db.ParseSSHTarget(*sshTarget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		tunnel.KeyPath = *sshKey
	}

	// History is optional, the builder works without it
	historyStore, err := history.NewStore(cfg.HistoryLimit)
	if err != nil {
		log.Printf("history disabled: %v", err)
		historyStore = nil
	} else {
		defer historyStore.Close()
	}

	model := ui.NewModel(cfg, ui.Options{
		Copier:  clipboard.New(),
		History: historyStore,
		Tunnel:  tunnel,
		Initial: &state,
		Preset:  *presetName,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// initialState applies the config default tool, then the preset, then -tool
func initialState(cfg *config.Config, presetName, toolName string) (scaffold.FormState, error) {
	state := scaffold.DefaultState()
	if t, err := scaffold.ParseTool(cfg.DefaultTool); err == nil {
		state.Tool = t
	}

	if presetName != "" {
		p, err := cfg.GetPreset(presetName)
		if err != nil {
			return state, err
		}
		state = p.FormState()
	}

	if toolName != "" {
		t, err := scaffold.ParseTool(toolName)
		if err != nil {
			return state, err
		}
		state.Tool = t
	}
	return state, nil
}
