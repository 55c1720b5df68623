// Package segmenter splits identifier strings into ordered sequences of
// semantic words.
//
// Segmentation relies solely on character class transitions and explicit
// delimiters ('_', '-', and space); it never consults a dictionary, so
// "username" stays one word while "userName" splits into two. The scan is a
// single left-to-right pass: linear time, no allocation beyond the result.
//
// The boundary rules match the widely used camel/snake conventions:
//
//	"userId"        -> "user", "Id"
//	"userID"        -> "user", "ID"
//	"parseHTMLFile" -> "parse", "HTML", "File"
//	"v2Api"         -> "v", "2", "Api"
//	"already_snake" -> "already", "snake"
//
// Concatenating the emitted words always reproduces the input's alphanumeric
// content exactly; delimiters are discarded and nothing else is created,
// duplicated, or lost.
package segmenter

import "github.com/casetools/naming/namingerrors"

// charClass partitions input characters for the boundary state machine.
type charClass int

const (
	classLower charClass = iota
	classUpper
	classDigit
	classDelimiter
	classOther
)

// classify maps a rune to its character class. Only ASCII letters and digits
// are treated as identifier content; locale-aware folding is out of scope.
func classify(r rune) charClass {
	switch {
	case r >= 'a' && r <= 'z':
		return classLower
	case r >= 'A' && r <= 'Z':
		return classUpper
	case r >= '0' && r <= '9':
		return classDigit
	case r == '_' || r == '-' || r == ' ':
		return classDelimiter
	default:
		return classOther
	}
}

// Segmenter splits identifiers into word sequences.
type Segmenter struct {
	// Strict rejects any character outside ASCII letters, digits, and the
	// delimiters '_', '-', and space with an InvalidCharacterError.
	// When disabled (the default), such characters pass through as their
	// own single-character literal word.
	Strict bool
}

// New creates a new Segmenter instance with default settings.
func New() *Segmenter {
	return &Segmenter{}
}

// Segment converts input into an ordered sequence of words, left to right.
//
// Delimiters terminate the current word and are discarded; consecutive or
// leading/trailing delimiters produce no empty words. An input that is empty
// after delimiter removal yields an empty (nil) sequence, which is valid.
//
// The only possible error is *namingerrors.InvalidCharacterError, raised in
// strict mode for characters outside the supported set.
func (s *Segmenter) Segment(input string) ([]Word, error) {
	var words []Word
	var cur []rune
	curKind := KindAlphabetic
	prev := classDelimiter

	flush := func() {
		if len(cur) > 0 {
			words = append(words, Word{Text: string(cur), Kind: curKind})
			cur = cur[:0:0]
		}
	}

	for i, r := range input {
		class := classify(r)
		switch class {
		case classDelimiter:
			flush()

		case classOther:
			if s.Strict {
				return nil, &namingerrors.InvalidCharacterError{
					Input:    input,
					Char:     r,
					Position: i,
				}
			}
			flush()
			words = append(words, Word{Text: string(r), Kind: KindLiteral})

		case classDigit:
			if len(cur) > 0 && curKind != KindNumeric {
				flush()
			}
			curKind = KindNumeric
			cur = append(cur, r)

		case classLower:
			switch {
			case len(cur) == 0 || curKind != KindAlphabetic:
				flush()
				curKind = KindAlphabetic
				cur = append(cur, r)
			case prev == classUpper && len(cur) >= 2:
				// An uppercase run followed by lowercase splits one
				// character early: the trailing capital starts the
				// next word ("HTMLFile" -> "HTML", "File").
				words = append(words, Word{Text: string(cur[:len(cur)-1]), Kind: KindAlphabetic})
				cur = []rune{cur[len(cur)-1], r}
			default:
				cur = append(cur, r)
			}

		case classUpper:
			switch {
			case len(cur) == 0 || curKind != KindAlphabetic:
				flush()
				curKind = KindAlphabetic
				cur = append(cur, r)
			case prev == classLower:
				// Standard camel boundary: "userId" -> "user", "Id".
				flush()
				curKind = KindAlphabetic
				cur = append(cur, r)
			default:
				// Uppercase run continues: "userID" -> "user", "ID".
				cur = append(cur, r)
			}
		}
		prev = class
	}
	flush()

	return words, nil
}

// Segment splits input using a default non-strict Segmenter.
func Segment(input string) ([]Word, error) {
	return New().Segment(input)
}
