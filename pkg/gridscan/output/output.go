// Package output renders scan results.
package output

import (
	"bufio"
	"encoding/json"
	"io"
	"iter"

	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
)

// WriteText writes one "row:col" line per match, using the digit coordinate.
func WriteText(w io.Writer, matches iter.Seq[models.Match]) error {
	bw := bufio.NewWriter(w)
	for m := range matches {
		if _, err := bw.WriteString(m.Digit.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ToJSON serializes a report to JSON.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
