package gridscan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadErrorUnwrap(t *testing.T) {
	err := &LoadError{Path: "logs/d3p1.log", Err: notFound(errors.New("no such file"))}

	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, `load "logs/d3p1.log": file not found: no such file`, err.Error())
}

func TestMalformedInputError(t *testing.T) {
	err := &MalformedInputError{Row: 2, Width: 3, Length: 4, Reason: "length 4, expected 3"}
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Equal(t, "malformed input: row 2: length 4, expected 3", err.Error())

	err = &MalformedInputError{Row: -1, Reason: "no rows"}
	assert.Equal(t, "malformed input: no rows", err.Error())
	assert.NotErrorIs(t, err, ErrFileNotFound)
}
