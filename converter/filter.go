package converter

import (
	"slices"

	"github.com/casetools/naming/namingerrors"
)

// Filter option flags, matching the CLI's --filter short forms.
const (
	FilterScreamingSnake = "S"
	FilterSnake          = "s"
	FilterKebab          = "k"
	FilterCamel          = "c"
	FilterHungarian      = "h"
	FilterPascal         = "p"
)

// filterPredicates maps each filter flag to its format predicate. Hungarian
// notation is camelCase with a leading type prefix, so it shares the camel
// predicate.
var filterPredicates = map[string]func(string) bool{
	FilterScreamingSnake: IsScreamingSnake,
	FilterSnake:          IsSnake,
	FilterKebab:          IsKebab,
	FilterCamel:          IsCamel,
	FilterHungarian:      IsCamel,
	FilterPascal:         IsPascal,
}

// Filter keeps only the identifiers whose existing format matches one of the
// selected flags. An empty option list keeps everything.
type Filter struct {
	options []string
}

// NewFilter validates the given filter flags and creates a Filter.
// At most one of hungarian ("h") and camel ("c") may appear: both match
// camelCase inputs but disagree on how to segment them.
func NewFilter(options []string) (*Filter, error) {
	for _, opt := range options {
		if _, ok := filterPredicates[opt]; !ok {
			return nil, &namingerrors.ConfigError{
				Option:  "filter",
				Value:   opt,
				Message: "unknown filter flag (valid: S s k c h p)",
			}
		}
	}
	if slices.Contains(options, FilterHungarian) && slices.Contains(options, FilterCamel) {
		return nil, &namingerrors.ConfigError{
			Option:  "filter",
			Message: "at most one of hungarian notation (h) and camel case (c) can appear",
		}
	}
	return &Filter{options: slices.Clone(options)}, nil
}

// Hungarian reports whether camelCase inputs should be treated as hungarian
// notation (type prefix dropped, remainder formatted as PascalCase).
func (f *Filter) Hungarian() bool {
	return slices.Contains(f.options, FilterHungarian)
}

// Apply returns the identifiers whose format matches a selected flag,
// preserving input order. With no flags selected, all identifiers are kept.
func (f *Filter) Apply(identifiers []string) []string {
	if len(f.options) == 0 {
		return identifiers
	}
	var kept []string
	for _, id := range identifiers {
		for _, opt := range f.options {
			if filterPredicates[opt](id) {
				kept = append(kept, id)
				break
			}
		}
	}
	return kept
}
