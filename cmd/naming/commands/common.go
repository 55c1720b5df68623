// Package commands provides CLI command handlers for naming.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/casetools/naming/converter"
	"github.com/casetools/naming/formatter"
	"github.com/casetools/naming/internal/cliutil"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = cliutil.StdinPath

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalStructured marshals data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	bytes, err := MarshalStructured(data, format)
	if err != nil {
		return err
	}
	fmt.Println(string(bytes))
	return nil
}

// ParseFilterOptions splits a condensed filter string such as "Ssk" into its
// individual flags. Validation of the flags themselves happens in
// converter.NewFilter.
func ParseFilterOptions(condensed string) []string {
	if condensed == "" {
		return nil
	}
	options := make([]string, 0, len(condensed))
	for _, r := range condensed {
		options = append(options, string(r))
	}
	return options
}

// ParseOrder parses a condensed order string such as "pcs" into the
// conventions to include in line output, in order. Each letter is one of
// S (screaming snake), s (snake), k (kebab), c (camel), p (pascal).
func ParseOrder(condensed string) ([]formatter.Convention, error) {
	if condensed == "" {
		return nil, nil
	}
	order := make([]formatter.Convention, 0, len(condensed))
	for _, r := range condensed {
		c, err := formatter.ParseConvention(string(r))
		if err != nil {
			return nil, fmt.Errorf("invalid order '%s': %w (valid letters: S s k c p)", condensed, err)
		}
		order = append(order, c)
	}
	return order, nil
}

// NewConverter builds a converter from the shared conversion flag values.
func NewConverter(filter, order string, strict bool) (*converter.Converter, error) {
	c := converter.New()
	c.Strict = strict

	if filter != "" {
		f, err := converter.NewFilter(ParseFilterOptions(filter))
		if err != nil {
			return nil, err
		}
		c.Filter = f
	}

	parsed, err := ParseOrder(order)
	if err != nil {
		return nil, err
	}
	c.Order = parsed
	return c, nil
}

// WriteOutput writes data to the output path, or stdout when path is empty.
func WriteOutput(data []byte, path string) error {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
