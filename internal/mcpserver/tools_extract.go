package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/casetools/naming/converter"
	"github.com/casetools/naming/extractor"
	"github.com/casetools/naming/formatter"
)

type extractInput struct {
	Text      string   `json:"text"                 jsonschema:"The free-form text to extract identifiers from"`
	Markers   []string `json:"markers,omitempty"    jsonschema:"Capture only tokens immediately following one of these marker strings (e.g. @name); empty captures every token"`
	Locator   string   `json:"locator,omitempty"    jsonschema:"Custom token regular expression replacing the default identifier shape"`
	NoConvert bool     `json:"no_convert,omitempty" jsonschema:"Return only the extracted identifiers without conversions"`
	Strict    *bool    `json:"strict,omitempty"     jsonschema:"Reject extracted identifiers containing unsupported characters"`
	Offset    int      `json:"offset,omitempty"     jsonschema:"Skip the first N identifiers (for pagination)"`
	Limit     int      `json:"limit,omitempty"      jsonschema:"Maximum number of identifiers to return (default 100)"`
}

type extractOutput struct {
	Total       int                    `json:"total"`
	Returned    int                    `json:"returned"`
	Identifiers []string               `json:"identifiers,omitempty"`
	Conversions []formatter.Conversion `json:"conversions,omitempty"`
}

func handleExtract(_ context.Context, _ *mcp.CallToolRequest, input extractInput) (*mcp.CallToolResult, extractOutput, error) {
	e := extractor.New()
	e.Markers = input.Markers
	e.Locator = input.Locator

	identifiers, err := e.Extract(input.Text)
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}

	output := extractOutput{Total: len(identifiers)}
	output.Identifiers = paginate(identifiers, input.Offset, input.Limit)
	output.Returned = len(output.Identifiers)

	if input.NoConvert {
		return nil, output, nil
	}

	strict := cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	c := converter.New()
	c.Strict = strict

	conversions, err := c.Convert(output.Identifiers)
	if err != nil {
		return errResult(err), extractOutput{}, nil
	}
	output.Conversions = conversions

	return nil, output, nil
}
