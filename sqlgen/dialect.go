// Package sqlgen turns column names and row records into dialect-specific
// SQL text: value escaping, NULL handling, identifier cleaning, and optional
// CREATE TABLE emission for temporary tables.
package sqlgen

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect carries the literal and type conventions of one target SQL engine.
type Dialect interface {
	// Name is the configuration name of the dialect.
	Name() string

	// TextType is the unbounded-length text column type used in
	// generated CREATE TABLE statements.
	TextType() string

	// Escape rewrites a raw string so it can be wrapped in single quotes.
	Escape(s string) string
}

type sqlServer struct{}

func (sqlServer) Name() string     { return "sqlserver" }
func (sqlServer) TextType() string { return "NVARCHAR(MAX)" }
func (sqlServer) Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

type mySQL struct{}

func (mySQL) Name() string     { return "mysql" }
func (mySQL) TextType() string { return "TEXT" }
func (mySQL) Escape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

type postgreSQL struct{}

func (postgreSQL) Name() string     { return "postgresql" }
func (postgreSQL) TextType() string { return "TEXT" }
func (postgreSQL) Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

var dialects = map[string]Dialect{
	"sqlserver":  sqlServer{},
	"mysql":      mySQL{},
	"postgresql": postgreSQL{},
}

// ParseDialect resolves a dialect by its configuration name.
func ParseDialect(name string) (Dialect, error) {
	if d, ok := dialects[name]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnsupportedDialect, name, strings.Join(DialectNames(), ", "))
}

// DialectNames returns the supported dialect names, sorted.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
