package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
	"github.com/xuri/excelize/v2"
)

// newSheetFile writes cells to Sheet1 of a new workbook and reopens it.
func newSheetFile(t *testing.T, cells map[string]any) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for cell, value := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}

	tmpFile := filepath.Join(t.TempDir(), "grid.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })

	return f2
}

func TestReadSheet(t *testing.T) {
	f := newSheetFile(t, map[string]any{
		"A1": 4,
		"B1": "6",
		"B2": "*",
		"C3": "#",
	})

	rows, err := ReadSheet(f, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"46.", ".*.", "..#"}, rows)
}

func TestReadSheetArea(t *testing.T) {
	f := newSheetFile(t, map[string]any{
		"A1": 4,
		"B2": "*",
		"C3": "#",
	})

	rows, err := ReadSheet(f, "Sheet1", &models.Area{R1: 2, C1: 2, R2: 4, C2: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"*...", ".#..", "...."}, rows)
}

func TestReadSheetMultiCharCell(t *testing.T) {
	f := newSheetFile(t, map[string]any{
		"A1": "1",
		"B2": 467,
	})

	_, err := ReadSheet(f, "", nil)

	var cellErr *CellError
	require.ErrorAs(t, err, &cellErr)
	assert.Equal(t, "B2", cellErr.Cell)
	assert.Equal(t, 1, cellErr.Row)
	assert.Equal(t, "467", cellErr.Value)
}

func TestReadSheetEmpty(t *testing.T) {
	f := newSheetFile(t, nil)

	rows, err := ReadSheet(f, "", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadSheetMissing(t *testing.T) {
	f := newSheetFile(t, map[string]any{"A1": "1"})

	_, err := ReadSheet(f, "NoSuchSheet", nil)
	assert.Error(t, err)
}

func TestFindDataExtent(t *testing.T) {
	tests := []struct {
		rows   [][]string
		maxRow int
		maxCol int
	}{
		{nil, -1, -1},
		{[][]string{{"", ""}, {}}, -1, -1},
		{[][]string{{"1"}}, 0, 0},
		{[][]string{{"1", ""}, {"", "", "*"}, {}}, 1, 2},
	}

	for _, tt := range tests {
		maxRow, maxCol := findDataExtent(tt.rows)
		assert.Equal(t, tt.maxRow, maxRow)
		assert.Equal(t, tt.maxCol, maxCol)
	}
}
