package scaffold

import "strings"

type optionKind int

const (
	quotedArg optionKind = iota // positional, wrapped in double quotes
	plainArg                    // positional, verbatim
	valueFlag                   // flag followed by the value
	listFlag                    // flag followed by SplitAndQuote(value)
	switchFlag                  // flag alone when the bool is set
)

// option maps one logical form field to its spelling in both tools
type option struct {
	kind optionKind
	src  Field
	pmc  string
	cli  string
}

// options is rendered in order after the base token
var options = []option{
	{quotedArg, ConnectionString, "", ""},
	{plainArg, Provider, "", ""},
	{valueFlag, OutputDir, "-OutputDir", "-o"},
	{valueFlag, ContextDir, "-ContextDir", "--context-dir"},
	{valueFlag, ContextName, "-Context", "-c"},
	{listFlag, Schemas, "-Schemas", "--schema"},
	{listFlag, Tables, "-Tables", "-t"},
	{switchFlag, UseAnnotations, "-DataAnnotations", "-d"},
	{switchFlag, UseDatabaseNames, "-UseDatabaseNames", "--use-database-names"},
	{switchFlag, UseForce, "-Force", "-f"},
}

func (o option) flag(t Tool) string {
	if t == CLI {
		return o.cli
	}
	return o.pmc
}

// Render builds the command for the tool selected in the form
func Render(s FormState) string {
	return RenderFor(s.Tool, s)
}

// RenderFor builds the command for the given tool, ignoring s.Tool
func RenderFor(t Tool, s FormState) string {
	tokens := []string{t.Base()}

	for _, o := range options {
		if o.kind == switchFlag {
			if s.Bool(o.src) {
				tokens = append(tokens, o.flag(t))
			}
			continue
		}

		v := s.String(o.src)
		if v == "" {
			continue
		}

		switch o.kind {
		case quotedArg:
			tokens = append(tokens, quote(v))
		case plainArg:
			tokens = append(tokens, v)
		case valueFlag:
			tokens = append(tokens, o.flag(t)+" "+v)
		case listFlag:
			// A value made only of separators still emits the flag with an empty argument
			tokens = append(tokens, o.flag(t)+" "+SplitAndQuote(v))
		}
	}

	return strings.Join(tokens, " ")
}

// SplitAndQuote turns "a, b ,,c" into `"a","b","c"`
func SplitAndQuote(list string) string {
	var parts []string
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts = append(parts, quote(p))
	}
	return strings.Join(parts, ",")
}

func quote(v string) string {
	return `"` + v + `"`
}
