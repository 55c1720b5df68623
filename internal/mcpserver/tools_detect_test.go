package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTool(t *testing.T) {
	input := detectInput{
		Identifiers: []string{"SCREAMING_SNAKE", "kebab-case", "camelCase", "-invalid_"},
	}
	_, output, err := handleDetect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Results, 4)
	assert.Equal(t, detection{Identifier: "SCREAMING_SNAKE", Convention: "screaming_snake", Valid: true}, output.Results[0])
	assert.Equal(t, detection{Identifier: "kebab-case", Convention: "kebab", Valid: true}, output.Results[1])
	assert.Equal(t, detection{Identifier: "camelCase", Convention: "camel", Valid: true}, output.Results[2])
	assert.Equal(t, detection{Identifier: "-invalid_", Valid: false}, output.Results[3])
}

func TestDetectTool_Empty(t *testing.T) {
	_, output, err := handleDetect(context.Background(), &mcp.CallToolRequest{}, detectInput{})
	require.NoError(t, err)

	assert.Zero(t, output.Total)
	assert.Empty(t, output.Results)
}
