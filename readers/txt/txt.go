// Package txt reads delimited plain-text files. The first non-empty line is
// the header; fields are tab-separated when the header contains a tab,
// space-separated otherwise.
package txt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func init() {
	readers.Register("txt", &txtDriver{})
}

type txtDriver struct{}

func (d *txtDriver) Read(r io.Reader, opts readers.Options) (*common.Table, error) {
	scanner := bufio.NewScanner(common.DecodeReader(r, opts.AutoDetectEncoding))
	scanner.Buffer(make([]byte, 0, 65536), 1<<20)

	var headerLine string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			headerLine = line
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading txt header: %v", common.ErrInvalidFormat, err)
	}
	if headerLine == "" {
		return nil, fmt.Errorf("%w: empty txt file", common.ErrEmptyFile)
	}

	separator := " "
	if strings.Contains(headerLine, "\t") {
		separator = "\t"
	}

	var columns []string
	for _, col := range strings.Split(headerLine, separator) {
		col = strings.TrimSpace(col)
		if col != "" {
			columns = append(columns, col)
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: txt header has no columns", common.ErrEmptyFile)
	}

	var rows [][]common.Cell
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, separator)
		row := make([]common.Cell, 0, len(columns))
		for _, f := range fields {
			row = append(row, common.String(strings.TrimSpace(f)))
		}
		rows = append(rows, common.PadRow(row, len(columns)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading txt line: %v", common.ErrInvalidFormat, err)
	}

	return &common.Table{Columns: columns, Rows: rows}, nil
}
