package commands

import (
	"github.com/spf13/cobra"

	"github.com/azcap/azcap/cmd/azcap/handlers"
)

// Doctor returns the command for checking local prerequisites.
//
// This command verifies everything a provisioning run needs before any
// Azure resource is touched: the az and docker CLIs, the active Azure
// session, the docker daemon, and the project configuration file.
//
// Optional flags:
//
//	--config, -c: Path to project configuration YAML file (default: auto-detect azcap.yaml)
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check local tooling and Azure session readiness",
		Long: `Check that your machine is ready to provision.

The checklist covers:
  - az CLI installed
  - an active Azure session with a resolvable subscription
  - docker CLI installed and the daemon reachable
  - a valid configuration file

Exits non-zero when any check fails.

Examples:
  # Check against azcap.yaml in the current directory
  azcap doctor

  # Check against a specific config file
  azcap doctor -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: azcap.yaml)")

	return cmd
}
