package sqlgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

// DefaultNullValues are the tokens treated as NULL when they appear as a
// cell value, compared case-insensitively after trimming.
var DefaultNullValues = []string{"", "NULL", "null", "None", "none"}

// DefaultBatchSize is the row interval for progress comments in verbose
// output.
const DefaultBatchSize = 100

// Options configures a Generator.
type Options struct {
	Dialect    Dialect
	BatchSize  int
	NullValues []string

	// IncludeCreateTable forces CREATE TABLE emission for regular tables.
	// Temporary targets always get one.
	IncludeCreateTable bool

	// Verbose enables progress comments every BatchSize rows.
	Verbose bool
}

// Generator projects column names and row records into SQL text. It never
// mutates its inputs; identical inputs produce byte-identical output.
type Generator struct {
	dialect       Dialect
	batchSize     int
	nullTokens    map[string]struct{}
	includeCreate bool
	verbose       bool
}

// New builds a Generator, applying defaults for any zero option.
func New(opts Options) *Generator {
	dialect := opts.Dialect
	if dialect == nil {
		dialect = sqlServer{}
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	nullValues := opts.NullValues
	if nullValues == nil {
		nullValues = DefaultNullValues
	}
	tokens := make(map[string]struct{}, len(nullValues))
	for _, v := range nullValues {
		tokens[strings.ToUpper(strings.TrimSpace(v))] = struct{}{}
	}
	return &Generator{
		dialect:       dialect,
		batchSize:     batch,
		nullTokens:    tokens,
		includeCreate: opts.IncludeCreateTable,
		verbose:       opts.Verbose,
	}
}

// Dialect returns the dialect the generator formats for.
func (g *Generator) Dialect() Dialect { return g.dialect }

// FormatValue renders a cell as a dialect-appropriate SQL literal. Null
// cells, blank values, and configured null tokens become the unquoted
// keyword NULL; everything else is an escaped, single-quoted string.
func (g *Generator) FormatValue(c common.Cell) string {
	if !c.Valid {
		return "NULL"
	}
	trimmed := strings.TrimSpace(c.Str)
	if trimmed == "" {
		return "NULL"
	}
	if _, ok := g.nullTokens[strings.ToUpper(trimmed)]; ok {
		return "NULL"
	}
	return "'" + g.dialect.Escape(c.Str) + "'"
}

// CreateTableStatement renders the CREATE TABLE block for the target, every
// column typed with the dialect's unbounded text type.
func (g *Generator) CreateTableStatement(target Target, columns []string) string {
	var b strings.Builder
	if target.Temporary {
		b.WriteString("-- CREATE TABLE statement for temporary table\n")
	} else {
		b.WriteString("-- CREATE TABLE statement\n")
	}
	b.WriteString("CREATE TABLE ")
	b.WriteString(target.Name)
	b.WriteString(" (\n")
	for i, col := range columns {
		b.WriteString("    ")
		b.WriteString(col)
		b.WriteByte(' ')
		b.WriteString(g.dialect.TextType())
		b.WriteString(" NULL")
		if i < len(columns)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(");\n\n-- INSERT statements:\n\n")
	return b.String()
}

// InsertStatement renders one INSERT for a row. The row must already have
// exactly one cell per column, in column order; readers guarantee that.
func (g *Generator) InsertStatement(target Target, columns []string, row []common.Cell) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(target.Name)
	b.WriteString(" (")
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col)
	}
	b.WriteString(") VALUES (")
	for i, cell := range row {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.FormatValue(cell))
	}
	b.WriteString(");")
	return b.String()
}

// Generate writes the full SQL document for a table: header comments, the
// optional CREATE TABLE block, then one INSERT per row in input order, with
// a progress comment every BatchSize rows when verbose.
func (g *Generator) Generate(w io.Writer, target Target, tbl *common.Table) error {
	bw := bufio.NewWriter(w)

	if len(tbl.Rows) == 0 {
		fmt.Fprintln(bw, "-- No data to insert")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "-- Generated SQL INSERT statements for table: %s\n", target.Name)
	fmt.Fprintf(bw, "-- Total rows: %d\n\n", len(tbl.Rows))

	if target.Temporary || g.includeCreate {
		bw.WriteString(g.CreateTableStatement(target, tbl.Columns))
	}

	for i, row := range tbl.Rows {
		bw.WriteString(g.InsertStatement(target, tbl.Columns, row))
		bw.WriteByte('\n')
		if g.verbose && (i+1)%g.batchSize == 0 {
			fmt.Fprintf(bw, "-- Processed %d rows\n", i+1)
		}
	}

	return bw.Flush()
}

// GenerateString is Generate into a string, mainly for tests and small
// inputs.
func (g *Generator) GenerateString(target Target, tbl *common.Table) (string, error) {
	var b strings.Builder
	if err := g.Generate(&b, target, tbl); err != nil {
		return "", err
	}
	return b.String(), nil
}
