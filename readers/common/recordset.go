package common

// RecordSet accumulates records whose key sets may differ from row to row,
// as happens with XML and JSON input. Columns are the union of all keys in
// first-seen order; records missing a key get a null cell for it.
type RecordSet struct {
	columns []string
	index   map[string]int
	records []map[string]Cell
}

// NewRecordSet returns an empty RecordSet.
func NewRecordSet() *RecordSet {
	return &RecordSet{index: make(map[string]int)}
}

// Add appends one record. keys carries the record's column names in encounter
// order; values maps each key to its cell.
func (s *RecordSet) Add(keys []string, values map[string]Cell) {
	for _, k := range keys {
		if _, ok := s.index[k]; !ok {
			s.index[k] = len(s.columns)
			s.columns = append(s.columns, k)
		}
	}
	rec := make(map[string]Cell, len(values))
	for k, v := range values {
		rec[k] = v
	}
	s.records = append(s.records, rec)
}

// Len reports the number of records added so far.
func (s *RecordSet) Len() int { return len(s.records) }

// Table normalizes the accumulated records into a Table.
func (s *RecordSet) Table() *Table {
	rows := make([][]Cell, len(s.records))
	for i, rec := range s.records {
		row := make([]Cell, len(s.columns))
		for j, col := range s.columns {
			if c, ok := rec[col]; ok {
				row[j] = c
			} else {
				row[j] = Null()
			}
		}
		rows[i] = row
	}
	return &Table{Columns: s.columns, Rows: rows}
}
