package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/casetools/naming/converter"
	"github.com/casetools/naming/formatter"
)

type convertInput struct {
	Identifiers []string `json:"identifiers"        jsonschema:"The identifier strings to convert, one per element"`
	Filter      []string `json:"filter,omitempty"   jsonschema:"Filter flags restricting conversion to identifiers already in selected formats: S (screaming snake), s (snake), k (kebab), c (camel), h (hungarian), p (pascal)"`
	Strict      *bool    `json:"strict,omitempty"   jsonschema:"Reject identifiers containing unsupported characters instead of passing them through"`
	Regex       bool     `json:"regex,omitempty"    jsonschema:"Also return an OR-regex alternation per identifier (e.g. USER_ID|user_id|user-id|userId|UserId)"`
	Offset      int      `json:"offset,omitempty"   jsonschema:"Skip the first N conversions (for pagination)"`
	Limit       int      `json:"limit,omitempty"    jsonschema:"Maximum number of conversions to return (default 100)"`
}

type convertOutput struct {
	Total       int                         `json:"total"`
	Returned    int                         `json:"returned"`
	Conversions []formatter.Conversion      `json:"conversions,omitempty"`
	Regexes     []converter.RegexConversion `json:"regexes,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	c := converter.New()
	c.Strict = strict

	if len(input.Filter) > 0 {
		f, err := converter.NewFilter(input.Filter)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		c.Filter = f
	}

	conversions, err := c.Convert(input.Identifiers)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{Total: len(conversions)}
	output.Conversions = paginate(conversions, input.Offset, input.Limit)
	output.Returned = len(output.Conversions)

	if input.Regex {
		output.Regexes = c.RegexRecords(output.Conversions)
	}

	return nil, output, nil
}
