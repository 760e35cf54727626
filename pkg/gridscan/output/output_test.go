package output

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
)

var sampleMatches = []models.Match{
	{Symbol: "*", At: models.Coordinate{Row: 1, Col: 3}, Digit: models.Coordinate{Row: 0, Col: 2}},
	{Symbol: "#", At: models.Coordinate{Row: 3, Col: 6}, Digit: models.Coordinate{Row: 2, Col: 6}},
	{Symbol: "#", At: models.Coordinate{Row: 3, Col: 7}, Digit: models.Coordinate{Row: 2, Col: 6}},
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, slices.Values(sampleMatches)))
	assert.Equal(t, "0:2\n2:6\n2:6\n", buf.String())
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, slices.Values([]models.Match(nil))))
	assert.Empty(t, buf.String())
}

func TestToJSON(t *testing.T) {
	report := &models.Report{
		Source:  "d3p1.log",
		Height:  10,
		Width:   10,
		Window:  "literal",
		Matches: sampleMatches[:1],
	}

	data, err := ToJSON(report, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"source": "d3p1.log",
		"height": 10,
		"width": 10,
		"window": "literal",
		"matches": [
			{"symbol": "*", "at": {"row": 1, "col": 3}, "digit": {"row": 0, "col": 2}}
		]
	}`, string(data))
	assert.NotContains(t, string(data), "\n")

	pretty, err := ToJSON(report, true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pretty), "\n  \"source\""))

	var decoded models.Report
	require.NoError(t, json.Unmarshal(pretty, &decoded))
	assert.Equal(t, *report, decoded)
}
