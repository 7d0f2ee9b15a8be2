package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consigcody94/ts-pilot/config"
	"github.com/consigcody94/ts-pilot/inference"
)

var (
	generateName     string
	generateStrict   bool
	generateReadonly bool
)

// GenerateCmd generates a TypeScript declaration from JSON input
var GenerateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a TypeScript type declaration from JSON",
	Long: `Generate a TypeScript type declaration from a JSON document.

Reads the document from the named file, or from stdin when the argument is "-"
or absent. Flags override configuration defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		input, err := readInput(args)
		if err != nil {
			return err
		}

		opts := inference.Options{
			Name:     cfg.Generate.DefaultName,
			Strict:   cfg.Generate.Strict,
			Readonly: cfg.Generate.Readonly,
		}
		if cmd.Flags().Changed("name") {
			opts.Name = generateName
		}
		if cmd.Flags().Changed("strict") {
			opts.Strict = generateStrict
		}
		if cmd.Flags().Changed("readonly") {
			opts.Readonly = generateReadonly
		}

		declaration, err := inference.Generate(input, opts)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), declaration)
		return nil
	},
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateName, "name", "n", "Generated", "Name for the generated type")
	GenerateCmd.Flags().BoolVar(&generateStrict, "strict", true, "Strict inference (never[] for empty arrays, bare null)")
	GenerateCmd.Flags().BoolVar(&generateReadonly, "readonly", false, "Mark top-level fields readonly")
}
