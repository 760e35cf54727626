package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates the workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// CellError reports a worksheet cell that cannot be used as a grid character.
type CellError struct {
	Sheet string
	Cell  string
	// Row is the 0-based grid row the cell maps to.
	Row   int
	Value string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s!%s holds %q, expected a single character", e.Sheet, e.Cell, e.Value)
}

// ReadSheet reads a worksheet as grid rows, one character per cell.
// Empty cells read as filler. When area is nil the grid spans from A1
// to the last used row and column.
func ReadSheet(f *excelize.File, sheetName string, area *models.Area) ([]string, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	bounds := area
	if bounds == nil {
		maxRow, maxCol := findDataExtent(rows)
		if maxRow < 0 {
			return nil, nil
		}
		bounds = &models.Area{R1: 1, C1: 1, R2: maxRow + 1, C2: maxCol + 1}
	}

	result := make([]string, 0, bounds.Height())
	for rowNum := bounds.R1; rowNum <= bounds.R2; rowNum++ {
		var sb strings.Builder
		sb.Grow(bounds.Width())

		for colNum := bounds.C1; colNum <= bounds.C2; colNum++ {
			value := cellValue(rows, rowNum-1, colNum-1)
			switch len(value) {
			case 0:
				sb.WriteByte(models.Filler)
			case 1:
				sb.WriteByte(value[0])
			default:
				cellName, _ := excelize.CoordinatesToCellName(colNum, rowNum)
				return nil, &CellError{
					Sheet: sheetName,
					Cell:  cellName,
					Row:   rowNum - bounds.R1,
					Value: value,
				}
			}
		}

		result = append(result, sb.String())
	}

	return result, nil
}

// cellValue returns the value at 0-based indices, or "" past the data.
func cellValue(rows [][]string, rowIdx, colIdx int) string {
	if rowIdx >= len(rows) || colIdx >= len(rows[rowIdx]) {
		return ""
	}
	return rows[rowIdx][colIdx]
}

// findDataExtent finds the last row and column holding a non-empty cell.
// Both are -1 when the sheet is empty.
func findDataExtent(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				maxRow = max(maxRow, rowIdx)
				maxCol = max(maxCol, colIdx)
			}
		}
	}

	return
}
