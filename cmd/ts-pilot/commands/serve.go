package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consigcody94/ts-pilot/config"
	"github.com/consigcody94/ts-pilot/server"
)

// ServeCmd runs the MCP server over stdio
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ts-pilot MCP server on stdio",
	Long: `Run the ts-pilot MCP server.

The server speaks newline-delimited JSON-RPC 2.0 on stdin/stdout; diagnostics
go to stderr. It exits when stdin closes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		return server.New(cfg).Serve(cmd.Context())
	},
}
