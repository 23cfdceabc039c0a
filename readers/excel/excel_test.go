package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "name"},
		{1, "Alice"},
		{2, "Bob"},
	})

	tbl, err := (&excelDriver{}).Read(buf, readers.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, common.String("Alice"), tbl.Rows[0][1])
}

func TestReadShortRowsPadded(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"a", "b", "c"},
		{"1"},
	})

	tbl, err := (&excelDriver{}).Read(buf, readers.Options{})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, common.Null(), tbl.Rows[0][2])
}

func TestReadNotAWorkbook(t *testing.T) {
	_, err := (&excelDriver{}).Read(bytes.NewReader([]byte("plain text")), readers.Options{})
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}
