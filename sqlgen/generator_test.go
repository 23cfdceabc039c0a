package sqlgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func TestFormatValue(t *testing.T) {
	g := New(Options{})

	tests := []struct {
		name string
		cell common.Cell
		want string
	}{
		{"null cell", common.Null(), "NULL"},
		{"empty string", common.String(""), "NULL"},
		{"whitespace only", common.String("   "), "NULL"},
		{"null token upper", common.String("NULL"), "NULL"},
		{"null token lower", common.String("null"), "NULL"},
		{"null token None", common.String("None"), "NULL"},
		{"null token none mixed case", common.String("nOnE"), "NULL"},
		{"null token padded", common.String("  null  "), "NULL"},
		{"plain value", common.String("hello"), "'hello'"},
		{"quote doubling", common.String("O'Brien"), "'O''Brien'"},
		{"two quotes", common.String("it''s"), "'it''''s'"},
		{"number stays quoted", common.String("42"), "'42'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.FormatValue(tt.cell); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestFormatValueMySQLEscaping(t *testing.T) {
	dialect, err := ParseDialect("mysql")
	if err != nil {
		t.Fatalf("ParseDialect failed: %v", err)
	}
	g := New(Options{Dialect: dialect})

	if got, want := g.FormatValue(common.String("O'Brien")), `'O\'Brien'`; got != want {
		t.Errorf("FormatValue = %q, want %q", got, want)
	}
}

func TestFormatValueCustomNullTokens(t *testing.T) {
	g := New(Options{NullValues: []string{"n/a", "-"}})

	if got := g.FormatValue(common.String("N/A")); got != "NULL" {
		t.Errorf("custom token N/A = %q, want NULL", got)
	}
	// Default tokens no longer apply when a custom set is given
	if got := g.FormatValue(common.String("None")); got != "'None'" {
		t.Errorf("None with custom tokens = %q, want 'None'", got)
	}
}

func TestGenerateGolden(t *testing.T) {
	target, err := ParseTarget("users")
	if err != nil {
		t.Fatalf("ParseTarget failed: %v", err)
	}

	tbl := &common.Table{
		Columns: []string{"id", "name"},
		Rows: [][]common.Cell{
			{common.String("1"), common.String("O'Brien")},
		},
	}

	got, err := New(Options{}).GenerateString(target, tbl)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := `-- Generated SQL INSERT statements for table: users
-- Total rows: 1

INSERT INTO users (id, name) VALUES ('1', 'O''Brien');
`
	if got != want {
		t.Errorf("golden mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateTemporaryTable(t *testing.T) {
	target, err := ParseTarget("#temp_users")
	if err != nil {
		t.Fatalf("ParseTarget failed: %v", err)
	}
	if !target.Temporary {
		t.Fatal("expected temporary target")
	}

	tbl := &common.Table{
		Columns: []string{"id", "name"},
		Rows: [][]common.Cell{
			{common.String("1"), common.String("a")},
			{common.String("2"), common.String("b")},
		},
	}

	got, err := New(Options{}).GenerateString(target, tbl)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := `-- Generated SQL INSERT statements for table: #temp_users
-- Total rows: 2

-- CREATE TABLE statement for temporary table
CREATE TABLE #temp_users (
    id NVARCHAR(MAX) NULL,
    name NVARCHAR(MAX) NULL
);

-- INSERT statements:

INSERT INTO #temp_users (id, name) VALUES ('1', 'a');
INSERT INTO #temp_users (id, name) VALUES ('2', 'b');
`
	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateIncludeCreateTable(t *testing.T) {
	target, _ := ParseTarget("users")
	tbl := &common.Table{
		Columns: []string{"id"},
		Rows:    [][]common.Cell{{common.String("1")}},
	}

	got, err := New(Options{IncludeCreateTable: true}).GenerateString(target, tbl)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(got, "-- CREATE TABLE statement\nCREATE TABLE users (") {
		t.Errorf("missing CREATE TABLE block:\n%s", got)
	}
	if strings.Contains(got, "temporary") {
		t.Errorf("regular table marked temporary:\n%s", got)
	}
}

func TestGenerateEmptyTable(t *testing.T) {
	target, _ := ParseTarget("users")
	got, err := New(Options{}).GenerateString(target, &common.Table{Columns: []string{"id"}})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "-- No data to insert\n" {
		t.Errorf("empty table output = %q", got)
	}
}

func TestGenerateVerboseProgress(t *testing.T) {
	target, _ := ParseTarget("t")
	tbl := &common.Table{Columns: []string{"n"}}
	for i := 0; i < 5; i++ {
		tbl.Rows = append(tbl.Rows, []common.Cell{common.String("x")})
	}

	got, err := New(Options{BatchSize: 2, Verbose: true}).GenerateString(target, tbl)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(got, "-- Processed 2 rows\n") || !strings.Contains(got, "-- Processed 4 rows\n") {
		t.Errorf("missing progress comments:\n%s", got)
	}
	if strings.Contains(got, "-- Processed 5 rows") {
		t.Errorf("unexpected progress comment after final row:\n%s", got)
	}

	// Progress comments stay silent when not verbose
	quiet, err := New(Options{BatchSize: 2}).GenerateString(target, tbl)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if strings.Contains(quiet, "-- Processed") {
		t.Errorf("progress comment without verbose:\n%s", quiet)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	target, _ := ParseTarget("#tmp")
	tbl := &common.Table{
		Columns: []string{"a", "b"},
		Rows: [][]common.Cell{
			{common.String("1"), common.Null()},
			{common.String("2"), common.String("x")},
		},
	}

	g := New(Options{Verbose: true, BatchSize: 1})
	first, err := g.GenerateString(target, tbl)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := g.GenerateString(target, tbl)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if first != second {
		t.Error("identical inputs produced different output")
	}
}

func TestParseTargetGlobalTemp(t *testing.T) {
	_, err := ParseTarget("##global")
	if !errors.Is(err, ErrGlobalTempTable) {
		t.Errorf("ParseTarget(##global) error = %v, want ErrGlobalTempTable", err)
	}
}
