package gridscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
	"github.com/ukaji3/gridscan-go/pkg/gridscan/parser"
	"github.com/xuri/excelize/v2"
)

// sheetExtensions lists file extensions read as worksheets.
var sheetExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// NewGrid builds a grid from rows. The width is taken from the first row
// and every other row must match it.
func NewGrid(rows []string) (*models.Grid, error) {
	if len(rows) == 0 {
		return nil, &MalformedInputError{Row: -1, Reason: "no rows"}
	}

	width := len(rows[0])
	if width == 0 {
		return nil, &MalformedInputError{Row: 0, Reason: "empty first row"}
	}

	for i, row := range rows {
		if len(row) != width {
			return nil, &MalformedInputError{
				Row:    i,
				Width:  width,
				Length: len(row),
				Reason: fmt.Sprintf("length %d, expected %d", len(row), width),
			}
		}
	}

	return &models.Grid{
		Rows:   append([]string(nil), rows...),
		Height: len(rows),
		Width:  width,
	}, nil
}

// LoadReader reads a text grid from r.
func LoadReader(r io.Reader) (*models.Grid, error) {
	rows, err := parser.ReadText(r)
	if err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &MalformedInputError{Row: len(rows), Reason: "line too long", Err: err}
		}
		return nil, err
	}
	return NewGrid(rows)
}

// Load reads a grid from the file at path.
func Load(path string, opts Options) (*models.Grid, error) {
	log := opts.logger()

	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: notFound(err)}
	}
	if info.IsDir() {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: is a directory", ErrFileNotFound)}
	}

	source := opts.Source
	if source == SourceAuto {
		source = SourceText
		if sheetExtensions[strings.ToLower(filepath.Ext(path))] {
			source = SourceSheet
		}
	}
	log.Debug().Str("path", path).Str("source", string(source)).Msg("loading grid")

	var grid *models.Grid
	switch source {
	case SourceSheet:
		grid, err = loadSheet(path, opts)
	case SourceText:
		grid, err = loadText(path)
	default:
		err = fmt.Errorf("%w: source %q", ErrInvalidOption, source)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	log.Debug().Int("height", grid.Height).Int("width", grid.Width).Msg("grid loaded")
	return grid, nil
}

func loadText(path string) (*models.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, notFound(err)
	}
	defer f.Close()

	return LoadReader(f)
}

func loadSheet(path string, opts Options) (*models.Grid, error) {
	sheetName := opts.Sheet

	var area *models.Area
	if opts.Range != "" {
		rangeSheet, a, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
		}
		if sheetName == "" {
			sheetName = rangeSheet
		}
		area = &a
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, notFound(err)
		}
		return nil, &MalformedInputError{Row: -1, Reason: "not a readable workbook", Err: err}
	}
	defer f.Close()

	rows, err := parser.ReadSheet(f, sheetName, area)
	if err != nil {
		var cellErr *parser.CellError
		if errors.As(err, &cellErr) {
			return nil, &MalformedInputError{
				Row:    cellErr.Row,
				Length: len(cellErr.Value),
				Reason: cellErr.Error(),
				Err:    err,
			}
		}
		return nil, err
	}

	return NewGrid(rows)
}

// notFound maps open failures onto ErrFileNotFound.
func notFound(err error) error {
	return fmt.Errorf("%w: %v", ErrFileNotFound, err)
}
