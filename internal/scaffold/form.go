package scaffold

import "fmt"

// Field names one editable value of the form
type Field int

const (
	ConnectionString Field = iota
	Provider
	OutputDir
	ContextDir
	ContextName
	Schemas
	Tables
	UseAnnotations
	UseDatabaseNames
	UseForce
)

// Fields lists every field in display order
var Fields = []Field{
	ConnectionString,
	Provider,
	OutputDir,
	ContextDir,
	ContextName,
	Schemas,
	Tables,
	UseAnnotations,
	UseDatabaseNames,
	UseForce,
}

var fieldNames = map[Field]string{
	ConnectionString: "connectionString",
	Provider:         "provider",
	OutputDir:        "outputDir",
	ContextDir:       "contextDir",
	ContextName:      "contextName",
	Schemas:          "schemas",
	Tables:           "tables",
	UseAnnotations:   "useAnnotations",
	UseDatabaseNames: "useDatabaseNames",
	UseForce:         "useForce",
}

// Name returns the field key used for keyed edits
func (f Field) Name() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// IsBool reports whether the field holds a boolean
func (f Field) IsBool() bool {
	return f == UseAnnotations || f == UseDatabaseNames || f == UseForce
}

// ParseField looks a field up by its key
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field: %s", name)
}

// FormState holds the current value of every form field
type FormState struct {
	Tool             Tool
	ConnectionString string
	Provider         string
	OutputDir        string
	ContextDir       string
	ContextName      string
	Schemas          string // comma separated
	Tables           string // comma separated
	UseAnnotations   bool
	UseDatabaseNames bool
	UseForce         bool
}

// DefaultState returns a form with every field at its default value
func DefaultState() FormState {
	return FormState{Tool: PackageManager}
}

// String returns the value of a string field. Bool fields return "".
func (s FormState) String(f Field) string {
	switch f {
	case ConnectionString:
		return s.ConnectionString
	case Provider:
		return s.Provider
	case OutputDir:
		return s.OutputDir
	case ContextDir:
		return s.ContextDir
	case ContextName:
		return s.ContextName
	case Schemas:
		return s.Schemas
	case Tables:
		return s.Tables
	}
	return ""
}

// Bool returns the value of a bool field. String fields return false.
func (s FormState) Bool(f Field) bool {
	switch f {
	case UseAnnotations:
		return s.UseAnnotations
	case UseDatabaseNames:
		return s.UseDatabaseNames
	case UseForce:
		return s.UseForce
	}
	return false
}

// SetString assigns a string field; bool fields are left untouched
func (s *FormState) SetString(f Field, v string) {
	switch f {
	case ConnectionString:
		s.ConnectionString = v
	case Provider:
		s.Provider = v
	case OutputDir:
		s.OutputDir = v
	case ContextDir:
		s.ContextDir = v
	case ContextName:
		s.ContextName = v
	case Schemas:
		s.Schemas = v
	case Tables:
		s.Tables = v
	}
}

// SetBool assigns a bool field; string fields are left untouched
func (s *FormState) SetBool(f Field, v bool) {
	switch f {
	case UseAnnotations:
		s.UseAnnotations = v
	case UseDatabaseNames:
		s.UseDatabaseNames = v
	case UseForce:
		s.UseForce = v
	}
}
