// Package excel reads the first worksheet of an Excel workbook. The first
// row of the sheet supplies the column names.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func init() {
	readers.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Read(r io.Reader, opts readers.Options) (*common.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %v", common.ErrInvalidFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", common.ErrEmptyFile)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s: %v", common.ErrInvalidFormat, sheets[0], err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("%w: sheet %s has no header row", common.ErrEmptyFile, sheets[0])
	}
	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header row: %v", common.ErrInvalidFormat, err)
	}

	tbl := &common.Table{}
	for _, name := range header {
		tbl.Columns = append(tbl.Columns, strings.TrimSpace(name))
	}
	if len(tbl.Columns) == 0 {
		return nil, fmt.Errorf("%w: sheet %s has an empty header row", common.ErrEmptyFile, sheets[0])
	}

	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("%w: reading row: %v", common.ErrInvalidFormat, err)
		}
		row := make([]common.Cell, len(cols))
		for i, v := range cols {
			row[i] = common.String(v)
		}
		tbl.Rows = append(tbl.Rows, common.PadRow(row, len(tbl.Columns)))
	}
	return tbl, nil
}
