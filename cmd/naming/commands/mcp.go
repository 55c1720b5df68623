package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/casetools/naming/internal/cliutil"
	"github.com/casetools/naming/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: naming mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the Model Context Protocol server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes convert, extract, and detect as MCP tools for AI\n")
		cliutil.Writef(fs.Output(), "assistants. It reads JSON-RPC from stdin and writes to stdout, so it is\n")
		cliutil.Writef(fs.Output(), "meant to be launched by an MCP client, not used interactively.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  NAMING_STRICT       default strict mode for tools (true/false)\n")
		cliutil.Writef(fs.Output(), "  NAMING_LIMIT        default page size for paginated results\n")
		cliutil.Writef(fs.Output(), "  NAMING_MAX_LIMIT    upper bound on the page size\n")
		cliutil.Writef(fs.Output(), "\nExample client configuration:\n")
		cliutil.Writef(fs.Output(), "  {\"mcpServers\": {\"naming\": {\"command\": \"naming\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
