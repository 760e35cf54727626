// Package gridscan finds digit cells adjacent to symbol cells in a character grid.
package gridscan

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Window represents the neighbor window used around each symbol.
type Window string

const (
	// WindowLiteral spans [i-1, i+1) on each axis, clipped to the grid.
	// It covers the symbol cell and its upper and left neighbors only.
	WindowLiteral Window = "literal"
	// WindowFull spans the symmetric 3x3 box [i-1, i+2), clipped to the grid.
	WindowFull Window = "full"
)

// Source represents the kind of input a grid is read from.
type Source string

const (
	// SourceAuto picks the source kind from the file extension.
	SourceAuto Source = ""
	// SourceText reads newline-separated rows.
	SourceText Source = "text"
	// SourceSheet reads a worksheet, one character per cell.
	SourceSheet Source = "sheet"
)

// Options configures loading and scanning.
type Options struct {
	// Window specifies the neighbor window (literal, full).
	Window Window
	// Source forces the input kind. Auto by default.
	Source Source
	// Sheet names the worksheet to read. Defaults to the first sheet.
	Sheet string
	// Range restricts worksheet input to a cell range such as A1:J10.
	Range string
	// Logger receives debug output. If nil, logging is disabled.
	Logger *zerolog.Logger
}

// DefaultOptions returns default scan options.
func DefaultOptions() Options {
	return Options{
		Window: WindowLiteral,
	}
}

// ParseWindow converts a window name into a Window.
func ParseWindow(name string) (Window, error) {
	switch w := Window(name); w {
	case WindowLiteral, WindowFull:
		return w, nil
	case "":
		return WindowLiteral, nil
	default:
		return "", fmt.Errorf("%w: window %q (must be literal or full)", ErrInvalidOption, name)
	}
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

func (o Options) window() Window {
	if o.Window == "" {
		return WindowLiteral
	}
	return o.Window
}
