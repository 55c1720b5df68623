// Package naming provides tools for extracting identifier strings from text
// and converting them between naming conventions.
//
// The toolkit understands five conventions: SCREAMING_SNAKE_CASE, snake_case,
// kebab-case, camelCase, and PascalCase. At its core is a segmenter that
// splits an arbitrary identifier into semantic words using only character
// class transitions and explicit delimiters (no dictionary), and a formatter
// that reassembles those words under each convention's separator and casing
// rules.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - segmenter: Split identifiers into ordered word sequences
//   - formatter: Render word sequences into each naming convention
//   - converter: Detect conventions, filter inputs, and produce conversions
//   - extractor: Capture identifier tokens from free-form text
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/casetools/naming
//
// # Quick Start
//
// Segment an identifier:
//
//	import "github.com/casetools/naming/segmenter"
//
//	words, err := segmenter.Segment("parseHTMLFile")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// words: "parse", "HTML", "File"
//
// Render all conventions:
//
//	import "github.com/casetools/naming/formatter"
//
//	r := formatter.FormatAll(words)
//	fmt.Println(r.Snake)  // parse_html_file
//	fmt.Println(r.Pascal) // ParseHtmlFile
//
// Convert identifiers end to end:
//
//	import "github.com/casetools/naming/converter"
//
//	c := converter.New()
//	conversions, err := c.Convert([]string{"userId"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(conversions[0].Kebab) // user-id
//
// # Error Handling
//
// Structured errors live in the namingerrors package and support errors.Is
// and errors.As. The core raises InvalidCharacterError when strict mode
// rejects an input byte, and ExtractError when a custom locator pattern
// does not compile; all other inputs, including empty strings and
// delimiter-only strings, are valid and produce deterministic (possibly
// empty) output.
//
// # Command-Line Interface
//
// In addition to the library packages, a command-line interface is provided:
//
//	# Convert identifiers read from stdin
//	echo userId | naming convert
//
//	# Extract identifiers from free text, then convert
//	naming extract --marker @name notes.txt
//
//	# Structured output
//	naming convert -f json identifiers.txt
//
//	# Run the MCP server over stdio
//	naming mcp
//
// Install the CLI:
//
//	go install github.com/casetools/naming/cmd/naming@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/casetools/naming
//   - Go Package Documentation: https://pkg.go.dev/github.com/casetools/naming
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package naming
