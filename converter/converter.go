package converter

import (
	"strings"

	"github.com/casetools/naming/formatter"
	"github.com/casetools/naming/segmenter"
)

// Converter turns identifier strings into per-convention renderings.
type Converter struct {
	// Filter selects which inputs are converted based on their existing
	// format. If nil, every input is converted.
	Filter *Filter
	// Order lists the conventions included in line and regex output, in
	// order. If nil, the canonical order is used. Structured records always
	// carry all five renderings regardless of Order.
	Order []formatter.Convention
	// Strict rejects inputs containing characters outside ASCII letters,
	// digits, and delimiters instead of passing them through.
	Strict bool
}

// New creates a new Converter instance with default settings.
func New() *Converter {
	return &Converter{}
}

// Convert segments each identifier and renders it into all five conventions.
// Inputs dropped by the filter produce no record. With hungarian filtering
// enabled, a camelCase input loses its type-prefix word and its origin is
// rewritten to the PascalCase remainder ("intPageSize" -> "PageSize").
//
// In strict mode the first invalid input aborts the conversion with a
// *namingerrors.InvalidCharacterError.
func (c *Converter) Convert(identifiers []string) ([]formatter.Conversion, error) {
	hungarian := false
	if c.Filter != nil {
		identifiers = c.Filter.Apply(identifiers)
		hungarian = c.Filter.Hungarian()
	}

	seg := segmenter.New()
	seg.Strict = c.Strict

	conversions := make([]formatter.Conversion, 0, len(identifiers))
	for _, id := range identifiers {
		words, err := seg.Segment(id)
		if err != nil {
			return nil, err
		}

		origin := id
		if hungarian && IsCamel(id) && len(words) > 1 {
			words = words[1:]
			origin = formatter.Format(words, formatter.Pascal)
		}

		conversions = append(conversions, formatter.Convert(origin, words))
	}
	return conversions, nil
}

// Lines renders conversions in the plain line format, one input per line:
//
//	<origin> <first convention> <second convention> ...
func (c *Converter) Lines(conversions []formatter.Conversion) string {
	lines := make([]string, len(conversions))
	for i, conv := range conversions {
		parts := append([]string{conv.Origin}, conv.Rendering().Strings(c.Order)...)
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

// RegexLines renders conversions with each line carrying the origin and a
// single OR-regex matching every selected convention:
//
//	<origin> <r1|r2|...>
func (c *Converter) RegexLines(conversions []formatter.Conversion) string {
	lines := make([]string, len(conversions))
	for i, conv := range conversions {
		lines[i] = conv.Origin + " " + conv.Rendering().Regex(c.Order)
	}
	return strings.Join(lines, "\n")
}

// Result is the structured output envelope: {"result":[...]}.
// Each array element pairs an origin with all five renderings.
type Result struct {
	Result []formatter.Conversion `json:"result" yaml:"result"`
}

// RegexConversion pairs an origin with its OR-regex alternation.
type RegexConversion struct {
	Origin string `json:"origin" yaml:"origin"`
	Regex  string `json:"regex" yaml:"regex"`
}

// RegexResult is the structured regex output envelope: {"result":[...]}.
type RegexResult struct {
	Result []RegexConversion `json:"result" yaml:"result"`
}

// RegexRecords builds the structured regex records for conversions,
// honoring the converter's Order.
func (c *Converter) RegexRecords(conversions []formatter.Conversion) []RegexConversion {
	records := make([]RegexConversion, len(conversions))
	for i, conv := range conversions {
		records[i] = RegexConversion{
			Origin: conv.Origin,
			Regex:  conv.Rendering().Regex(c.Order),
		}
	}
	return records
}
