package highlight

import (
	"regexp"
	"testing"

	"github.com/nhath/ezscaffold/internal/scaffold"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestCommandKeepsText(t *testing.T) {
	tests := []struct {
		tool scaffold.Tool
		cmd  string
	}{
		{scaffold.PackageManager, `Scaffold-DbContext "Host=x;Database=shop" Npgsql.EntityFrameworkCore.PostgreSQL -Tables "a","b" -Force`},
		{scaffold.CLI, `dotnet ef dbcontext scaffold "Data Source=shop.db" Microsoft.EntityFrameworkCore.Sqlite -o Models -f`},
	}
	for _, tt := range tests {
		got := Command(tt.cmd, tt.tool, "nord")
		if plain := ansi.ReplaceAllString(got, ""); plain != tt.cmd {
			t.Errorf("Command(%q) stripped = %q", tt.cmd, plain)
		}
	}
}

func TestCommandEmpty(t *testing.T) {
	if got := Command("", scaffold.CLI, "nord"); got != "" {
		t.Errorf("Command(\"\") = %q", got)
	}
}
