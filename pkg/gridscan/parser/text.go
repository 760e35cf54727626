// Package parser provides row readers for grid sources.
package parser

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ReadText reads newline-separated rows from r.
// Trailing whitespace is trimmed from every row and blank rows at the
// end of the input are dropped. On error the rows read so far are
// returned with it.
func ReadText(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var rows []string
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), " \t\r\v\f"))
	}
	if err := scanner.Err(); err != nil {
		return rows, err
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return rows, nil
}
