package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/casetools/naming/converter"
)

type detectInput struct {
	Identifiers []string `json:"identifiers"      jsonschema:"The identifier strings to classify"`
	Offset      int      `json:"offset,omitempty" jsonschema:"Skip the first N results (for pagination)"`
	Limit       int      `json:"limit,omitempty"  jsonschema:"Maximum number of results to return (default 100)"`
}

type detection struct {
	Identifier string `json:"identifier"`
	Convention string `json:"convention,omitempty"`
	Valid      bool   `json:"valid"`
}

type detectOutput struct {
	Total    int         `json:"total"`
	Returned int         `json:"returned"`
	Results  []detection `json:"results,omitempty"`
}

func handleDetect(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	results := makeSlice[detection](len(input.Identifiers))
	for _, id := range input.Identifiers {
		d := detection{Identifier: id}
		if conv, ok := converter.Detect(id); ok {
			d.Convention = conv.String()
			d.Valid = true
		}
		results = append(results, d)
	}

	output := detectOutput{Total: len(results)}
	output.Results = paginate(results, input.Offset, input.Limit)
	output.Returned = len(output.Results)

	return nil, output, nil
}
