package segmenter

// Kind classifies the characters a Word is made of.
type Kind int

const (
	// KindAlphabetic is a word consisting entirely of ASCII letters.
	KindAlphabetic Kind = iota
	// KindNumeric is a word consisting entirely of ASCII digits.
	// Digits are never merged with letters into the same word.
	KindNumeric
	// KindLiteral is a single character outside the supported set, passed
	// through untouched when strict mode is disabled. Casing rules never
	// apply to literal words.
	KindLiteral
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindAlphabetic:
		return "alphabetic"
	case KindNumeric:
		return "numeric"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Word is a segmentation unit: a maximal run of characters treated as one
// semantic unit during re-casing. Words are immutable values; the original
// casing of Text is preserved here and discarded by the formatter.
type Word struct {
	// Text is the word's characters as they appeared in the input.
	Text string
	// Kind tags the word's character class.
	Kind Kind
}

// String returns the word text.
func (w Word) String() string {
	return w.Text
}
