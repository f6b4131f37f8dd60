package scaffold

import (
	"strings"
	"testing"
)

func TestRenderScenarios(t *testing.T) {
	tests := []struct {
		name  string
		state FormState
		want  string
	}{
		{
			name:  "pmc connection and force",
			state: FormState{Tool: PackageManager, ConnectionString: "Host=x", UseForce: true},
			want:  `Scaffold-DbContext "Host=x" -Force`,
		},
		{
			name: "cli provider schemas annotations",
			state: FormState{
				Tool:           CLI,
				Provider:       "Npgsql.EntityFrameworkCore.PostgreSQL",
				Schemas:        "public, audit",
				UseAnnotations: true,
			},
			want: `dotnet ef dbcontext scaffold Npgsql.EntityFrameworkCore.PostgreSQL --schema "public","audit" -d`,
		},
		{
			name:  "pmc defaults",
			state: DefaultState(),
			want:  "Scaffold-DbContext",
		},
		{
			name:  "cli defaults",
			state: FormState{Tool: CLI},
			want:  "dotnet ef dbcontext scaffold",
		},
		{
			name: "pmc every field",
			state: FormState{
				Tool:             PackageManager,
				ConnectionString: "Server=.;Database=Shop",
				Provider:         "Microsoft.EntityFrameworkCore.SqlServer",
				OutputDir:        "Models",
				ContextDir:       "Data",
				ContextName:      "ShopContext",
				Schemas:          "dbo",
				Tables:           "Orders, Customers",
				UseAnnotations:   true,
				UseDatabaseNames: true,
				UseForce:         true,
			},
			want: `Scaffold-DbContext "Server=.;Database=Shop" Microsoft.EntityFrameworkCore.SqlServer` +
				` -OutputDir Models -ContextDir Data -Context ShopContext -Schemas "dbo" -Tables "Orders","Customers"` +
				` -DataAnnotations -UseDatabaseNames -Force`,
		},
		{
			name: "cli every field",
			state: FormState{
				Tool:             CLI,
				ConnectionString: "Server=.;Database=Shop",
				Provider:         "Microsoft.EntityFrameworkCore.SqlServer",
				OutputDir:        "Models",
				ContextDir:       "Data",
				ContextName:      "ShopContext",
				Schemas:          "dbo",
				Tables:           "Orders, Customers",
				UseAnnotations:   true,
				UseDatabaseNames: true,
				UseForce:         true,
			},
			want: `dotnet ef dbcontext scaffold "Server=.;Database=Shop" Microsoft.EntityFrameworkCore.SqlServer` +
				` -o Models --context-dir Data -c ShopContext --schema "dbo" -t "Orders","Customers"` +
				` -d --use-database-names -f`,
		},
		{
			name:  "separator only list keeps flag",
			state: FormState{Tool: PackageManager, Schemas: " , "},
			want:  "Scaffold-DbContext -Schemas ",
		},
		{
			name:  "cli separator only tables",
			state: FormState{Tool: CLI, Tables: ",,"},
			want:  "dotnet ef dbcontext scaffold -t ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.state); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderBaseToken(t *testing.T) {
	s := FormState{ConnectionString: "x", Tables: "a", UseForce: true}
	if got := RenderFor(PackageManager, s); !strings.HasPrefix(got, "Scaffold-DbContext") {
		t.Errorf("pmc command %q has wrong base", got)
	}
	if got := RenderFor(CLI, s); !strings.HasPrefix(got, "dotnet ef dbcontext scaffold") {
		t.Errorf("cli command %q has wrong base", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := FormState{Tool: CLI, ContextName: "Ctx", Tables: "a,b", UseDatabaseNames: true}
	if a, b := Render(s), Render(s); a != b {
		t.Errorf("Render not idempotent: %q vs %q", a, b)
	}
}

func TestSplitAndQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a, b ,,c", `"a","b","c"`},
		{"single", `"single"`},
		{" , ", ""},
		{"", ""},
		{"  spaced name  ", `"spaced name"`},
	}
	for _, tt := range tests {
		if got := SplitAndQuote(tt.in); got != tt.want {
			t.Errorf("SplitAndQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTool(t *testing.T) {
	if tool, err := ParseTool("cli"); err != nil || tool != CLI {
		t.Errorf("ParseTool(cli) = %v, %v", tool, err)
	}
	if tool, err := ParseTool(""); err != nil || tool != PackageManager {
		t.Errorf("ParseTool(\"\") = %v, %v", tool, err)
	}
	if _, err := ParseTool("bogus"); err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.Name())
		if err != nil {
			t.Fatalf("ParseField(%s): %v", f.Name(), err)
		}
		if got != f {
			t.Errorf("ParseField(%s) = %v, want %v", f.Name(), got, f)
		}
	}
	if _, err := ParseField("nope"); err == nil {
		t.Error("expected error for unknown field")
	}
}
