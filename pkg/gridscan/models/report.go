package models

// Match pairs a symbol cell with a digit found inside its window.
type Match struct {
	// Symbol is the symbol character.
	Symbol string `json:"symbol"`
	// At is the coordinate of the symbol cell.
	At Coordinate `json:"at"`
	// Digit is the coordinate of the adjacent digit cell.
	Digit Coordinate `json:"digit"`
}

// Report is the result of scanning a single source.
type Report struct {
	// Source is the input name (file base name or "-" for stdin).
	Source string `json:"source"`
	// Height is the grid row count.
	Height int `json:"height"`
	// Width is the grid column count.
	Width int `json:"width"`
	// Window is the neighbor window mode used for the scan.
	Window string `json:"window"`
	// Matches lists every (symbol, digit) occurrence in scan order.
	Matches []Match `json:"matches"`
}
