package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTool(t *testing.T) {
	input := convertInput{
		Identifiers: []string{"userId"},
	}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Conversions, 1)
	conv := output.Conversions[0]
	assert.Equal(t, "userId", conv.Origin)
	assert.Equal(t, "USER_ID", conv.ScreamingSnake)
	assert.Equal(t, "user_id", conv.Snake)
	assert.Equal(t, "user-id", conv.Kebab)
	assert.Equal(t, "userId", conv.Camel)
	assert.Equal(t, "UserId", conv.Pascal)
	assert.Equal(t, 1, output.Total)
	assert.Equal(t, 1, output.Returned)
	assert.Empty(t, output.Regexes)
}

func TestConvertTool_Regex(t *testing.T) {
	input := convertInput{
		Identifiers: []string{"userId"},
		Regex:       true,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Regexes, 1)
	assert.Equal(t, "USER_ID|user_id|user-id|userId|UserId", output.Regexes[0].Regex)
}

func TestConvertTool_Filter(t *testing.T) {
	input := convertInput{
		Identifiers: []string{"snake_case", "camelCase"},
		Filter:      []string{"s"},
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Conversions, 1)
	assert.Equal(t, "snake_case", output.Conversions[0].Origin)
}

func TestConvertTool_InvalidFilter(t *testing.T) {
	input := convertInput{
		Identifiers: []string{"snake_case"},
		Filter:      []string{"c", "h"},
	}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_Strict(t *testing.T) {
	strict := true
	input := convertInput{
		Identifiers: []string{"not.valid"},
		Strict:      &strict,
	}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_Pagination(t *testing.T) {
	input := convertInput{
		Identifiers: []string{"one", "two", "three"},
		Offset:      1,
		Limit:       1,
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 3, output.Total)
	assert.Equal(t, 1, output.Returned)
	require.Len(t, output.Conversions, 1)
	assert.Equal(t, "two", output.Conversions[0].Origin)
}
