// Package namingerrors provides structured error types for the naming toolkit.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InvalidCharacterError: a byte outside the supported character set was
//     encountered while segmenting in strict mode
//   - ConfigError: invalid filter, order, or locator configuration
//   - ExtractError: a locator pattern failed to compile
//
// # Usage with errors.As
//
//	words, err := seg.Segment(input)
//	if err != nil {
//	    var charErr *namingerrors.InvalidCharacterError
//	    if errors.As(err, &charErr) {
//	        fmt.Printf("bad byte %q at position %d\n", charErr.Char, charErr.Position)
//	    }
//	}
package namingerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidCharacter indicates an unsupported byte was found in an input.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrExtract indicates an extraction failure.
	ErrExtract = errors.New("extraction error")
)

// InvalidCharacterError reports a character outside the supported set
// (ASCII letters, ASCII digits, and the delimiters '_', '-', and space)
// encountered while segmenting an identifier in strict mode.
//
// It is never raised outside strict mode: a mis-segmented identifier would
// convert to an incorrect result the caller cannot detect, so the error is
// always surfaced rather than recovered.
type InvalidCharacterError struct {
	// Input is the identifier string being segmented
	Input string
	// Char is the offending rune
	Char rune
	// Position is the byte offset of Char within Input
	Position int
}

// Error returns a human-readable error message.
func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d in %q", e.Char, e.Position, e.Input)
}

// Is reports whether target matches this error type.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// ConfigError represents an invalid configuration option, such as an
// unknown filter flag or conflicting filter combination.
type ConfigError struct {
	// Option is the configuration option that was invalid
	Option string
	// Value is the rejected value, if applicable
	Value string
	// Message describes why the configuration is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += fmt.Sprintf(" in option %q", e.Option)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(": invalid value %q", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ExtractError represents a failure to compile or apply a locator pattern
// during identifier extraction.
type ExtractError struct {
	// Pattern is the locator pattern that failed
	Pattern string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ExtractError) Error() string {
	msg := "extraction error"
	if e.Pattern != "" {
		msg += fmt.Sprintf(" for pattern %q", e.Pattern)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ExtractError) Is(target error) bool {
	return target == ErrExtract
}
