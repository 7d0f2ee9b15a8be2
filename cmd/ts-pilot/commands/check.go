package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consigcody94/ts-pilot/errors"
	"github.com/consigcody94/ts-pilot/heuristics"
)

var checkMode string

// CheckCmd runs one heuristic rule set against a snippet
var CheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run heuristic analysis on a TypeScript snippet",
	Long: `Score a TypeScript snippet against one of the heuristic rule sets.

Modes:
  refactor - type-safety refactoring advisories
  generics - generic-opportunity advisories with worked examples
  strict   - strict-mode compliance issues

Reads the snippet from the named file, or from stdin when the argument is "-"
or absent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readInput(args)
		if err != nil {
			return err
		}

		var report string
		switch checkMode {
		case "refactor":
			report = heuristics.RefactorReport(code)
		case "generics":
			report = heuristics.GenericsReport(code)
		case "strict":
			report = heuristics.StrictReport(code)
		default:
			return errors.Newf("unknown mode %q (supported: refactor, generics, strict)", checkMode)
		}

		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	CheckCmd.Flags().StringVarP(&checkMode, "mode", "m", "refactor", "Rule set to run: refactor, generics, strict")
}
