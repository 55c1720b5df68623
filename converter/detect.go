package converter

import (
	"regexp"

	"github.com/casetools/naming/formatter"
)

// Anchored patterns describing a well-formed identifier in each convention.
// A lone lowercase word such as "word" is simultaneously valid snake, kebab,
// and camel; Detect resolves the ambiguity by checking in canonical order.
var (
	screamingSnakePattern = regexp.MustCompile(`^[A-Z0-9]+(_[A-Z0-9]+)*$`)
	snakePattern          = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)
	kebabPattern          = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	camelPattern          = regexp.MustCompile(`^[a-z0-9]+([A-Z][a-z0-9]*)*$`)
	pascalPattern         = regexp.MustCompile(`^([A-Z][a-z0-9]*)+$`)
)

// IsScreamingSnake reports whether s is a well-formed SCREAMING_SNAKE_CASE identifier.
func IsScreamingSnake(s string) bool { return screamingSnakePattern.MatchString(s) }

// IsSnake reports whether s is a well-formed snake_case identifier.
func IsSnake(s string) bool { return snakePattern.MatchString(s) }

// IsKebab reports whether s is a well-formed kebab-case identifier.
func IsKebab(s string) bool { return kebabPattern.MatchString(s) }

// IsCamel reports whether s is a well-formed camelCase identifier.
func IsCamel(s string) bool { return camelPattern.MatchString(s) }

// IsPascal reports whether s is a well-formed PascalCase identifier.
func IsPascal(s string) bool { return pascalPattern.MatchString(s) }

// Detect returns the convention s is written in. The second return value is
// false when s matches no convention (for example "-invalid_").
func Detect(s string) (formatter.Convention, bool) {
	switch {
	case IsScreamingSnake(s):
		return formatter.ScreamingSnake, true
	case IsSnake(s):
		return formatter.Snake, true
	case IsKebab(s):
		return formatter.Kebab, true
	case IsCamel(s):
		return formatter.Camel, true
	case IsPascal(s):
		return formatter.Pascal, true
	default:
		return 0, false
	}
}
