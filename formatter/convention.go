package formatter

import (
	"fmt"
	"strings"
)

// Convention identifies a target naming convention.
type Convention int

const (
	// ScreamingSnake is SCREAMING_SNAKE_CASE.
	ScreamingSnake Convention = iota
	// Snake is snake_case.
	Snake
	// Kebab is kebab-case.
	Kebab
	// Camel is camelCase.
	Camel
	// Pascal is PascalCase.
	Pascal
)

// Conventions returns all conventions in their canonical output order:
// screaming_snake, snake, kebab, camel, pascal. This order is a
// compatibility contract for consumers parsing multi-convention output.
func Conventions() []Convention {
	return []Convention{ScreamingSnake, Snake, Kebab, Camel, Pascal}
}

// String returns the convention's canonical name.
func (c Convention) String() string {
	switch c {
	case ScreamingSnake:
		return "screaming_snake"
	case Snake:
		return "snake"
	case Kebab:
		return "kebab"
	case Camel:
		return "camel"
	case Pascal:
		return "pascal"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// ParseConvention parses a convention name (case-insensitive). It accepts
// the canonical names plus the single-letter short forms used by the CLI
// filter option: S (screaming snake), s (snake), k (kebab), c (camel),
// p (pascal).
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "S":
		return ScreamingSnake, nil
	case "s":
		return Snake, nil
	case "k":
		return Kebab, nil
	case "c":
		return Camel, nil
	case "p":
		return Pascal, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "screaming_snake", "screaming-snake", "screamingsnake":
		return ScreamingSnake, nil
	case "snake":
		return Snake, nil
	case "kebab":
		return Kebab, nil
	case "camel":
		return Camel, nil
	case "pascal":
		return Pascal, nil
	default:
		return ScreamingSnake, fmt.Errorf("formatter: unknown convention: %q", s)
	}
}

// caseRule selects the per-word casing transformation.
type caseRule int

const (
	caseUpper caseRule = iota
	caseLower
	caseTitle
)

// spec is the fixed (separator, casing) record for one convention.
type spec struct {
	separator string
	// wordCase applies to every word after the first.
	wordCase caseRule
	// firstWordCase applies to the word at position zero.
	firstWordCase caseRule
}

// conventionSpecs is the compile-time rule table. It is never mutated.
var conventionSpecs = map[Convention]spec{
	ScreamingSnake: {separator: "_", wordCase: caseUpper, firstWordCase: caseUpper},
	Snake:          {separator: "_", wordCase: caseLower, firstWordCase: caseLower},
	Kebab:          {separator: "-", wordCase: caseLower, firstWordCase: caseLower},
	Camel:          {separator: "", wordCase: caseTitle, firstWordCase: caseLower},
	Pascal:         {separator: "", wordCase: caseTitle, firstWordCase: caseTitle},
}
