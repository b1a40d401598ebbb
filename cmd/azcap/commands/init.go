package commands

import (
	"github.com/spf13/cobra"

	"github.com/azcap/azcap/cmd/azcap/handlers"
)

// Init returns the command for interactively creating a project configuration.
//
// This command guides users through creating azcap.yaml using an interactive
// wizard with text inputs and single-select prompts.
//
// Flags:
//
//	--output, -o: Path to output file (default "azcap.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a project configuration",
		Long: `Interactively create a project configuration file.

This command guides you through configuring your project step by step.
It will ask about:

  - Project name (all resource names derive from it)
  - Azure location
  - Build agent sizing
  - Workspace file share quota
  - Optional container registry name override

The generated file records your choices along with the resource names
derived from them, so you can review or pin any name before running
setup.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "azcap.yaml", "Output file path")

	return cmd
}
