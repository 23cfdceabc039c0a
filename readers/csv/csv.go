// Package csv reads comma-separated files. The first record is the header;
// the field delimiter is detected from it when not configured.
package csv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func init() {
	readers.Register("csv", &csvDriver{})
}

type csvDriver struct{}

func (d *csvDriver) Read(r io.Reader, opts readers.Options) (*common.Table, error) {
	br := bufio.NewReaderSize(common.DecodeReader(r, opts.AutoDetectEncoding), 65536)

	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = common.DetectDelimiter(headerSample(br))
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // rows are padded/truncated to the header width

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty CSV file", common.ErrEmptyFile)
		}
		return nil, fmt.Errorf("%w: reading CSV header: %v", common.ErrInvalidFormat, err)
	}

	var rows [][]common.Cell
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: reading CSV row: %v", common.ErrInvalidFormat, err)
		}
		row := make([]common.Cell, len(record))
		for i, v := range record {
			row[i] = common.String(v)
		}
		rows = append(rows, common.PadRow(row, len(header)))
	}

	return &common.Table{Columns: header, Rows: rows}, nil
}

// headerSample peeks the first line without consuming it, widening the
// window until a line break appears or the buffer is exhausted, so long
// headers never get cut mid-field before delimiter detection.
func headerSample(br *bufio.Reader) string {
	for peek := 2048; ; peek *= 2 {
		b, err := br.Peek(peek)
		if i := strings.IndexAny(string(b), "\r\n"); i != -1 {
			return string(b[:i])
		}
		if err != nil || peek >= br.Size() {
			return string(b)
		}
	}
}
