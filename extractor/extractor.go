// Package extractor captures identifier-like tokens from free-form text.
//
// The extractor is the input side of the conversion pipeline: it pulls
// candidate identifiers out of arbitrary text (source snippets, notes, log
// lines) so the converter can render them. By default every maximal run of
// ASCII letters, digits, underscores, and hyphens is captured. When markers
// are configured, only tokens immediately following a marker string are
// captured, which lets callers annotate interesting names in prose:
//
//	e := extractor.New()
//	e.Markers = []string{"@name"}
//	tokens, _ := e.Extract("rename @name userId and keep the rest")
//	// tokens: ["userId"]
//
// A custom Locator pattern replaces the default token shape entirely; a
// pattern that does not compile surfaces as *namingerrors.ExtractError.
package extractor

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/casetools/naming/namingerrors"
)

// tokenPattern matches a maximal identifier-like run. Tokens consisting
// only of delimiters are discarded after matching.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_-]+`)

// tokenAtStartPattern anchors tokenPattern to the start of a string, for
// matching directly after a marker.
var tokenAtStartPattern = regexp.MustCompile(`^[ \t]*([A-Za-z0-9_-]+)`)

// Extractor captures identifier tokens from text.
type Extractor struct {
	// Markers restricts capturing to tokens immediately following one of
	// these strings. Empty means every token in the text is captured.
	Markers []string
	// Locator is a custom regular expression replacing the default token
	// pattern. Empty uses the default (runs of ASCII letters, digits,
	// '_', and '-').
	Locator string
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Extractor instance with default settings.
func New() *Extractor {
	return &Extractor{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (e *Extractor) log() Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return NopLogger{}
}

// patterns returns the token pattern and its marker-anchored form,
// compiling the custom Locator when one is set.
func (e *Extractor) patterns() (*regexp.Regexp, *regexp.Regexp, error) {
	if e.Locator == "" {
		return tokenPattern, tokenAtStartPattern, nil
	}
	token, err := regexp.Compile(e.Locator)
	if err != nil {
		return nil, nil, &namingerrors.ExtractError{
			Pattern: e.Locator,
			Message: "invalid locator pattern",
			Cause:   err,
		}
	}
	// The wrapping group is always group 1, regardless of any groups
	// inside the user's pattern.
	atStart, err := regexp.Compile(`^[ \t]*(` + e.Locator + `)`)
	if err != nil {
		return nil, nil, &namingerrors.ExtractError{
			Pattern: e.Locator,
			Message: "locator pattern cannot be anchored after a marker",
			Cause:   err,
		}
	}
	return token, atStart, nil
}

// hasAlphanumeric reports whether s contains at least one letter or digit.
// A token of bare delimiters ("--", "_") is not an identifier.
func hasAlphanumeric(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
	})
}

// Extract returns the identifier tokens found in text, in order of
// appearance. The text may span multiple lines.
//
// The only possible error is *namingerrors.ExtractError, raised when a
// custom Locator does not compile.
func (e *Extractor) Extract(text string) ([]string, error) {
	token, atStart, err := e.patterns()
	if err != nil {
		return nil, err
	}
	if len(e.Markers) == 0 {
		return e.extractAll(text, token), nil
	}
	return e.extractMarked(text, atStart), nil
}

func (e *Extractor) extractAll(text string, token *regexp.Regexp) []string {
	var tokens []string
	for _, tok := range token.FindAllString(text, -1) {
		if !hasAlphanumeric(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	e.log().Debug("extracted identifiers", "count", len(tokens))
	return tokens
}

// capture is a token paired with its position, used to restore text order
// when multiple markers match.
type capture struct {
	pos   int
	token string
}

func (e *Extractor) extractMarked(text string, atStart *regexp.Regexp) []string {
	var captures []capture
	for _, marker := range e.Markers {
		if marker == "" {
			continue
		}
		from := 0
		for {
			idx := strings.Index(text[from:], marker)
			if idx < 0 {
				break
			}
			pos := from + idx + len(marker)
			from = pos
			m := atStart.FindStringSubmatch(text[pos:])
			if m == nil || !hasAlphanumeric(m[1]) {
				e.log().Debug("marker without trailing identifier", "marker", marker, "position", pos)
				continue
			}
			captures = append(captures, capture{pos: pos, token: m[1]})
		}
	}

	slices.SortFunc(captures, func(a, b capture) int { return cmp.Compare(a.pos, b.pos) })

	tokens := make([]string, 0, len(captures))
	for _, c := range captures {
		tokens = append(tokens, c.token)
	}
	e.log().Debug("extracted marked identifiers", "markers", len(e.Markers), "count", len(tokens))
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
