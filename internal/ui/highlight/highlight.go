// Package highlight colors generated commands for terminal display.
package highlight

import (
	"log"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/nhath/ezscaffold/internal/scaffold"
)

// lexerFor picks the shell the command is pasted into
func lexerFor(tool scaffold.Tool) chroma.Lexer {
	name := "bash"
	if tool == scaffold.PackageManager {
		name = "powershell"
	}
	l := lexers.Get(name)
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// Command returns cmd with ANSI colors for the given tool and chroma style.
// The plain command is returned if highlighting fails.
func Command(cmd string, tool scaffold.Tool, style string) string {
	if cmd == "" {
		return cmd
	}

	it, err := lexerFor(tool).Tokenise(nil, cmd)
	if err != nil {
		log.Printf("highlight: tokenise: %v", err)
		return cmd
	}

	f := formatters.Get("terminal256")
	if f == nil {
		f = formatters.Fallback
	}

	var b strings.Builder
	if err := f.Format(&b, styles.Get(style), it); err != nil {
		log.Printf("highlight: format: %v", err)
		return cmd
	}
	return strings.TrimRight(b.String(), "\n")
}
