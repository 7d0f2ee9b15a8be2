package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/consigcody94/ts-pilot/patterns"
)

// PatternsCmd prints the example catalogue for a framework
var PatternsCmd = &cobra.Command{
	Use:   "patterns <framework>",
	Short: "Show typed example patterns for a framework",
	Long: fmt.Sprintf(`Print the static catalogue of typed TypeScript examples for a framework.

Supported frameworks: %s`, strings.Join(patterns.Frameworks(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		examples, err := patterns.Lookup(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), examples)
		return nil
	},
}
