package models

// Kind classifies a single grid character.
type Kind int

const (
	// KindSymbol is any character that is neither a digit nor filler.
	KindSymbol Kind = iota
	// KindDigit is one of '0' through '9'.
	KindDigit
	// KindFiller is the '.' character.
	KindFiller
)

// Filler is the character that marks an empty cell.
const Filler = '.'

// Classify returns the kind of a grid character.
func Classify(ch byte) Kind {
	switch {
	case ch >= '0' && ch <= '9':
		return KindDigit
	case ch == Filler:
		return KindFiller
	default:
		return KindSymbol
	}
}

// IsDigit reports whether ch is an ASCII digit.
func IsDigit(ch byte) bool { return Classify(ch) == KindDigit }

// IsSymbol reports whether ch is neither a digit nor filler.
func IsSymbol(ch byte) bool { return Classify(ch) == KindSymbol }
