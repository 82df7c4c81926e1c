package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	mderrors "github.com/mdforge/mdforge/pkg/errors"
)

func TestGridsToXLSX(t *testing.T) {
	grids := []SheetGrid{
		{Name: "Revenue", Rows: [][]string{
			{"Month", "Total"},
			{"Jan", "100"},
		}},
		{Rows: [][]string{{"solo"}}},
	}

	data, err := GridsToXLSX(grids)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Revenue", "Sheet2"}, f.GetSheetList())

	got, err := f.GetCellValue("Revenue", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Month", got)

	got, err = f.GetCellValue("Revenue", "B2")
	require.NoError(t, err)
	assert.Equal(t, "100", got)

	got, err = f.GetCellValue("Sheet2", "A1")
	require.NoError(t, err)
	assert.Equal(t, "solo", got)
}

func TestGridsToXLSXRaggedRows(t *testing.T) {
	data, err := GridsToXLSX([]SheetGrid{{Name: "S", Rows: [][]string{
		{"a", "b", "c"},
		{"d"},
	}}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("S", "B2")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGridsToXLSXEmpty(t *testing.T) {
	_, err := GridsToXLSX(nil)
	require.Error(t, err)

	var mdErr *mderrors.MDForgeError
	require.ErrorAs(t, err, &mdErr)
	assert.Equal(t, mderrors.ErrCodeEmptyGrid, mdErr.Code)
}
