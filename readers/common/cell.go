package common

// Cell is a single row/column entry: either textual or null.
type Cell struct {
	Str   string
	Valid bool // Valid is false when the cell is null
}

// String returns a textual cell.
func String(s string) Cell { return Cell{Str: s, Valid: true} }

// Null returns the null cell.
func Null() Cell { return Cell{} }

// Table holds an ordered column list and the rows read from one input file.
// Every row has exactly len(Columns) cells; readers normalize short or long
// rows before handing the table out.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// PadRow pads row with null cells or truncates it so its length matches width.
func PadRow(row []Cell, width int) []Cell {
	for len(row) < width {
		row = append(row, Null())
	}
	if len(row) > width {
		row = row[:width]
	}
	return row
}
