package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a cell range reference could not be parsed.
var ErrInvalidRange = errors.New("invalid cell range")

// ParseRange parses a range reference into a sheet name and area.
// Accepted forms: A1:D10, $A$1:$D$10, B2 and 'Sheet Name'!$A$1:$D$10.
// The sheet name is empty when the reference carries none.
func ParseRange(ref string) (string, models.Area, error) {
	ref = strings.TrimSpace(ref)

	var sheetName string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return "", models.Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", models.Area{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", models.Area{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	return sheetName, models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}
