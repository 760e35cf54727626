// Package models defines data structures for grid scanning.
package models

// Grid represents a rectangular character grid loaded from a source.
type Grid struct {
	// Rows holds the grid rows, all of length Width.
	Rows []string
	// Height is the number of rows.
	Height int
	// Width is the length of every row.
	Width int
}

// At returns the character at the given 0-based row and column.
func (g *Grid) At(row, col int) byte {
	return g.Rows[row][col]
}
