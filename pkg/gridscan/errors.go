package gridscan

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist or cannot be opened.
var ErrFileNotFound = errors.New("file not found")

// ErrMalformedInput indicates the input is not a rectangular character grid.
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidOption indicates an option value is not recognized.
var ErrInvalidOption = errors.New("invalid option")

// LoadError represents an error while loading a grid from a path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MalformedInputError describes why input could not form a grid.
type MalformedInputError struct {
	// Row is the 0-based offending row, or -1 when not row specific.
	Row    int
	Width  int
	Length int
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedInput, e.Reason)
	}
	return fmt.Sprintf("%v: row %d: %s", ErrMalformedInput, e.Row, e.Reason)
}

// Is reports whether target is ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
