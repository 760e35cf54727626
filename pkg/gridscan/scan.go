package gridscan

import (
	"iter"
	"unicode/utf8"

	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
)

// Scan returns the matches of every symbol cell in g.
//
// Cells are visited in row-major order. For each symbol the window rows
// are visited in ascending order, then the window columns. A digit next
// to several symbols is yielded once per symbol. The returned sequence
// may be ranged over any number of times.
func Scan(g *models.Grid, w Window) iter.Seq[models.Match] {
	return func(yield func(models.Match) bool) {
		for r := 0; r < g.Height; r++ {
			for c := 0; c < g.Width; c++ {
				ch := g.At(r, c)
				if !models.IsSymbol(ch) {
					continue
				}

				at := models.Coordinate{Row: r, Col: c}
				symbol := symbolAt(g.Rows[r], c)
				y0, y1 := windowRange(r, g.Height, w)
				x0, x1 := windowRange(c, g.Width, w)
				for y := y0; y < y1; y++ {
					for x := x0; x < x1; x++ {
						if !models.IsDigit(g.At(y, x)) {
							continue
						}
						m := models.Match{
							Symbol: symbol,
							At:     at,
							Digit:  models.Coordinate{Row: y, Col: x},
						}
						if !yield(m) {
							return
						}
					}
				}
			}
		}
	}
}

// symbolAt returns the character starting at byte offset col of row.
// A byte that does not start a valid UTF-8 sequence is returned as is.
func symbolAt(row string, col int) string {
	r, size := utf8.DecodeRuneInString(row[col:])
	if r == utf8.RuneError && size <= 1 {
		return row[col : col+1]
	}
	return string(r)
}

// windowRange returns the half-open index range around idx, clipped to [0, bound).
func windowRange(idx, bound int, w Window) (start, stop int) {
	start = max(idx-1, 0)
	if w == WindowFull {
		return start, min(idx+2, bound)
	}
	return start, min(idx+1, bound)
}

// Digits returns the digit coordinates of matches, in order.
func Digits(matches iter.Seq[models.Match]) []models.Coordinate {
	var result []models.Coordinate
	for m := range matches {
		result = append(result, m.Digit)
	}
	return result
}
