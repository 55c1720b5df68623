// Package formatter renders word sequences into naming conventions.
//
// Each convention is a fixed (separator, per-word casing, first-word casing)
// record; rendering is total and never fails. The empty word sequence
// renders to the empty string for every convention.
package formatter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/casetools/naming/segmenter"
)

// Casers are shared and safe for concurrent use via String().
// Use golang.org/x/text/cases for title casing (strings.Title is deprecated).
var (
	upperCaser = cases.Upper(language.English)
	lowerCaser = cases.Lower(language.English)
	titleCaser = cases.Title(language.English)
)

// applyCase recases an alphabetic word. Numeric and literal words have no
// case and are returned unchanged.
func applyCase(w segmenter.Word, rule caseRule) string {
	if w.Kind != segmenter.KindAlphabetic {
		return w.Text
	}
	switch rule {
	case caseUpper:
		return upperCaser.String(w.Text)
	case caseLower:
		return lowerCaser.String(w.Text)
	case caseTitle:
		return titleCaser.String(w.Text)
	default:
		return w.Text
	}
}

// Format renders words into the given convention. It never fails: any word
// sequence, including the empty one, is renderable.
//
// Numeric and literal words are emitted unchanged but still participate in
// separator placement and position rules; a numeric word at position zero of
// Camel or Pascal output is emitted as-is since it has no letters to case.
func Format(words []segmenter.Word, c Convention) string {
	sp, ok := conventionSpecs[c]
	if !ok {
		return ""
	}

	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sp.separator)
		}
		rule := sp.wordCase
		if i == 0 {
			rule = sp.firstWordCase
		}
		b.WriteString(applyCase(w, rule))
	}
	return b.String()
}

// Rendering holds one identifier rendered into all five conventions.
type Rendering struct {
	ScreamingSnake string
	Snake          string
	Kebab          string
	Camel          string
	Pascal         string
}

// FormatAll renders words into every convention.
func FormatAll(words []segmenter.Word) Rendering {
	return Rendering{
		ScreamingSnake: Format(words, ScreamingSnake),
		Snake:          Format(words, Snake),
		Kebab:          Format(words, Kebab),
		Camel:          Format(words, Camel),
		Pascal:         Format(words, Pascal),
	}
}

// Get returns the rendering for the given convention.
func (r Rendering) Get(c Convention) string {
	switch c {
	case ScreamingSnake:
		return r.ScreamingSnake
	case Snake:
		return r.Snake
	case Kebab:
		return r.Kebab
	case Camel:
		return r.Camel
	case Pascal:
		return r.Pascal
	default:
		return ""
	}
}

// Strings returns the renderings for the given conventions, in order.
// When conventions is nil the canonical order is used.
func (r Rendering) Strings(conventions []Convention) []string {
	if conventions == nil {
		conventions = Conventions()
	}
	out := make([]string, len(conventions))
	for i, c := range conventions {
		out[i] = r.Get(c)
	}
	return out
}

// Regex joins the renderings for the given conventions into a single
// regular-expression alternation, e.g. "USER_ID|user_id|user-id|userId|UserId".
// When conventions is nil the canonical order is used.
func (r Rendering) Regex(conventions []Convention) string {
	return strings.Join(r.Strings(conventions), "|")
}
