package json

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg89/PythonGenerateSQL/readers"
	"github.com/Greg89/PythonGenerateSQL/readers/common"
)

func TestReadArrayOfObjects(t *testing.T) {
	in := `[
  {"id": 1, "name": "Alice"},
  {"id": 2, "name": "Bob"}
]`

	tbl, err := (&jsonDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, common.String("1"), tbl.Rows[0][0])
	assert.Equal(t, common.String("Bob"), tbl.Rows[1][1])
}

func TestReadPreservesKeyOrder(t *testing.T) {
	in := `[{"zebra": "z", "apple": "a", "mango": "m"}]`

	tbl, err := (&jsonDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, tbl.Columns)
}

func TestReadSingleObject(t *testing.T) {
	in := `{"id": 7, "name": "solo"}`

	tbl, err := (&jsonDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, common.String("7"), tbl.Rows[0][0])
}

func TestReadNestedObjectFlattens(t *testing.T) {
	in := `[{"id": 1, "address": {"city": "Dublin", "zip": "D01"}}]`

	tbl, err := (&jsonDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "address_city", "address_zip"}, tbl.Columns)
	assert.Equal(t, common.String("Dublin"), tbl.Rows[0][1])
}

func TestReadArrayValueBecomesNull(t *testing.T) {
	in := `[{"id": 1, "tags": ["a", "b"]}]`

	tbl, err := (&jsonDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "tags"}, tbl.Columns)
	assert.Equal(t, common.Null(), tbl.Rows[0][1])
}

func TestReadScalarValues(t *testing.T) {
	in := `[{"n": 3.5, "b": true, "x": null, "s": "text"}]`

	tbl, err := (&jsonDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	row := tbl.Rows[0]
	assert.Equal(t, common.String("3.5"), row[0])
	assert.Equal(t, common.String("true"), row[1])
	assert.Equal(t, common.Null(), row[2])
	assert.Equal(t, common.String("text"), row[3])
}

func TestReadSkipsNonObjectElements(t *testing.T) {
	in := `[{"id": 1}, "stray", 42, {"id": 2}]`

	tbl, err := (&jsonDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)
}

func TestReadRaggedObjects(t *testing.T) {
	in := `[{"a": "1"}, {"b": "2"}]`

	tbl, err := (&jsonDriver{}).Read(strings.NewReader(in), readers.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, tbl.Columns)
	assert.Equal(t, common.Null(), tbl.Rows[0][1])
	assert.Equal(t, common.Null(), tbl.Rows[1][0])
}

func TestReadScalarRoot(t *testing.T) {
	_, err := (&jsonDriver{}).Read(strings.NewReader(`"just a string"`), readers.Options{})
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}

func TestReadInvalidJSON(t *testing.T) {
	_, err := (&jsonDriver{}).Read(strings.NewReader(`{"id": `), readers.Options{})
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}
