package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consigcody94/ts-pilot/cmd/ts-pilot/commands"
	"github.com/consigcody94/ts-pilot/config"
	"github.com/consigcody94/ts-pilot/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ts-pilot",
	Short: "ts-pilot - TypeScript type assistant over MCP",
	Long: `ts-pilot - TypeScript type assistant.

ts-pilot generates TypeScript type declarations from JSON, diagnoses compiler
error messages, and scores snippets against type-safety heuristics. It runs as
a Model Context Protocol server over stdio, or one-shot from the command line.

Available commands:
  serve     - Run the MCP server on stdio
  generate  - Generate a type declaration from JSON
  explain   - Suggest fixes for a TypeScript error message
  check     - Run heuristic analysis on a snippet
  patterns  - Show typed example patterns for a framework

Examples:
  ts-pilot serve                        # Run as an MCP server
  ts-pilot generate payload.json        # Infer types from a JSON file
  echo '{"id":1}' | ts-pilot generate - # Infer types from stdin
  ts-pilot check --mode strict app.ts   # Strict-mode compliance issues`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		if verbosity == 0 {
			verbosity = cfg.Log.Verbosity
		}

		if err := logger.Initialize(verbosity, cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.ExplainCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.PatternsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
