package models

// Area represents 1-based inclusive cell bounds on a worksheet.
type Area struct {
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// Height returns the number of rows covered by the area.
func (a Area) Height() int { return a.R2 - a.R1 + 1 }

// Width returns the number of columns covered by the area.
func (a Area) Width() int { return a.C2 - a.C1 + 1 }
