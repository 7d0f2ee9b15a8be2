package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/consigcody94/ts-pilot/diagnose"
)

// ExplainCmd diagnoses a TypeScript compiler error message
var ExplainCmd = &cobra.Command{
	Use:   "explain <error message>",
	Short: "Suggest fixes for a TypeScript error message",
	Long: `Match a TypeScript compiler error message against known error shapes and
print remediation suggestions.

Example:
  ts-pilot explain "Property 'email' does not exist on type 'User'."`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		fmt.Fprintln(cmd.OutOrStdout(), diagnose.Analyze(message).Render())
		return nil
	},
}
