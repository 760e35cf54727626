package models

import "strconv"

// Coordinate identifies a grid cell by 0-based row and column.
type Coordinate struct {
	// Row is the row index (0-based).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// String renders the coordinate as "row:col".
func (c Coordinate) String() string {
	return strconv.Itoa(c.Row) + ":" + strconv.Itoa(c.Col)
}
