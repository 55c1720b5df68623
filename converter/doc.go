// Package converter provides the end-to-end identifier conversion pipeline:
// convention detection, format-based filtering, and rendering into line,
// regex, and structured outputs.
//
// Import path: github.com/casetools/naming/converter
//
// # Detection
//
// The Is* predicates and [Detect] classify an identifier's existing format
// using anchored patterns:
//
//	conv, ok := converter.Detect("kebab-case")
//	// conv == formatter.Kebab, ok == true
//
// # Filtering
//
// A [Filter] restricts conversion to identifiers already written in selected
// conventions, using the same single-letter flags as the CLI's --filter
// option (S s k c h p). The "h" flag treats camelCase inputs as hungarian
// notation: the leading type prefix is dropped and the remainder is handled
// as PascalCase.
//
// # Conversion
//
//	c := converter.New()
//	conversions, err := c.Convert([]string{"snake_case", "kebab-case"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Lines(conversions))
//	// snake_case SNAKE_CASE snake_case snake-case snakeCase SnakeCase
//	// kebab-case KEBAB_CASE kebab_case kebab-case kebabCase KebabCase
package converter
