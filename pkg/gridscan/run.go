package gridscan

import (
	"path/filepath"
	"slices"

	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
)

// Run loads the grid at path and scans it.
func Run(path string, opts Options) (*models.Report, error) {
	grid, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	return NewReport(filepath.Base(path), grid, opts), nil
}

// NewReport scans grid and collects the matches into a report.
func NewReport(source string, grid *models.Grid, opts Options) *models.Report {
	w := opts.window()
	matches := slices.Collect(Scan(grid, w))
	if matches == nil {
		matches = []models.Match{}
	}

	opts.logger().Debug().
		Str("source", source).
		Str("window", string(w)).
		Int("matches", len(matches)).
		Msg("scan complete")

	return &models.Report{
		Source:  source,
		Height:  grid.Height,
		Width:   grid.Width,
		Window:  string(w),
		Matches: matches,
	}
}
