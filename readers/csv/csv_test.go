package csv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func TestReadBasic(t *testing.T) {
	in := "id,name,city\n1,Alice,Dublin\n2,Bob,Cork\n"

	tbl, err := (&csvDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "city"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, common.String("Alice"), tbl.Rows[0][1])
	assert.Equal(t, common.String("Cork"), tbl.Rows[1][2])
}

func TestReadDetectsSemicolon(t *testing.T) {
	in := "id;name\n1;Alice\n"

	tbl, err := (&csvDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, tbl.Columns)
	assert.Equal(t, common.String("Alice"), tbl.Rows[0][1])
}

func TestReadExplicitDelimiter(t *testing.T) {
	in := "id|name\n1|with,comma\n"

	tbl, err := (&csvDriver{}).Read(strings.NewReader(in), readers.Options{Delimiter: '|'})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, tbl.Columns)
	assert.Equal(t, common.String("with,comma"), tbl.Rows[0][1])
}

func TestReadStripsBOM(t *testing.T) {
	in := "\uFEFFid,name\n1,Alice\n"

	tbl, err := (&csvDriver{}).Read(strings.NewReader(in), readers.Options{AutoDetectEncoding: true})
	require.NoError(t, err)
	assert.Equal(t, "id", tbl.Columns[0])
}

func TestReadRaggedRows(t *testing.T) {
	in := "a,b,c\n1,2\n1,2,3,4\n"

	tbl, err := (&csvDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 2)
	// Short row padded with nulls
	assert.Equal(t, common.Null(), tbl.Rows[0][2])
	// Long row truncated to the header width
	assert.Len(t, tbl.Rows[1], 3)
	assert.Equal(t, common.String("3"), tbl.Rows[1][2])
}

func TestReadDetectsDelimiterInLongHeader(t *testing.T) {
	// First delimiter sits past 2 KiB, so detection must scan the whole line
	long := strings.Repeat("a", 3000)
	in := long + ";second;third\nx;y;z\n"

	tbl, err := (&csvDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	require.Len(t, tbl.Columns, 3)
	assert.Equal(t, long, tbl.Columns[0])
	assert.Equal(t, common.String("z"), tbl.Rows[0][2])
}

func TestReadEmptyFile(t *testing.T) {
	_, err := (&csvDriver{}).Read(strings.NewReader(""), readers.Options{})
	assert.ErrorIs(t, err, common.ErrEmptyFile)
}

func TestReadQuotedFields(t *testing.T) {
	in := "id,name\n1,\"O'Brien, Conor\"\n"

	tbl, err := (&csvDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)
	assert.Equal(t, common.String("O'Brien, Conor"), tbl.Rows[0][1])
}

func TestReadMalformedQuote(t *testing.T) {
	in := "id,name\n1,\"unterminated\n"

	_, err := (&csvDriver{}).Read(strings.NewReader(in), readers.Options{})
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}
