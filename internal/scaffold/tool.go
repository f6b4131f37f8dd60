// Package scaffold builds EF Core scaffold commands from a flat set of form fields.
package scaffold

import "fmt"

// Tool selects which of the two flag-spelling conventions a command is rendered in
type Tool string

const (
	// PackageManager renders the Package Manager Console cmdlet
	PackageManager Tool = "pmc"
	// CLI renders the dotnet-ef command line
	CLI Tool = "cli"
)

// ParseTool converts a config/flag value into a Tool
func ParseTool(s string) (Tool, error) {
	switch Tool(s) {
	case PackageManager, "":
		return PackageManager, nil
	case CLI:
		return CLI, nil
	default:
		return "", fmt.Errorf("unknown tool: %q (want pmc or cli)", s)
	}
}

// Base returns the leading token of the command
func (t Tool) Base() string {
	if t == CLI {
		return "dotnet ef dbcontext scaffold"
	}
	return "Scaffold-DbContext"
}

// Label returns a human readable name
func (t Tool) Label() string {
	if t == CLI {
		return ".NET CLI"
	}
	return "Package Manager Console"
}

// Toggle returns the other tool
func (t Tool) Toggle() Tool {
	if t == CLI {
		return PackageManager
	}
	return CLI
}
