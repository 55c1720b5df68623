// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the naming toolkit as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/casetools/naming"
)

const serverInstructions = `naming MCP server — converts identifiers between naming conventions, extracts identifiers from text, and detects an identifier's existing convention.

Conventions: screaming_snake (USER_ID), snake (user_id), kebab (user-id), camel (userId), pascal (UserId). Segmentation is purely mechanical (character class transitions and delimiters); no dictionary splitting.

Configuration: defaults are configurable via NAMING_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- NAMING_STRICT (default: false) — reject identifiers containing characters outside ASCII letters, digits, '_', '-', space
- NAMING_LIMIT (default: 100) — default result limit for list outputs
- NAMING_MAX_LIMIT (default: 1000) — hard cap on requested limits`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "naming", Version: naming.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert identifier strings between naming conventions. Returns each identifier rendered as screaming_snake, snake, kebab, camel, and pascal, plus an OR-regex alternation when regex=true. Use filter to restrict conversion to identifiers already in selected formats (S s k c h p; h treats camelCase as hungarian notation). Strict mode default is configurable via NAMING_STRICT.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract",
		Description: "Extract identifier-like tokens from free-form text and convert them. By default every run of letters, digits, '_' and '-' is captured; pass markers to capture only tokens immediately following a marker string (e.g. \"@name\"), or locator to replace the token shape with a custom regular expression. Use offset/limit to paginate through results.",
	}, handleExtract)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect the naming convention each identifier is written in. Returns screaming_snake, snake, kebab, camel, or pascal per identifier, or valid=false for strings that match no convention. Ambiguous lowercase single words resolve to snake.",
	}, handleDetect)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.Limit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.Limit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
