package commands

import (
	"github.com/spf13/cobra"

	"github.com/azcap/azcap/cmd/azcap/handlers"
)

// Setup returns the command for provisioning the core project infrastructure.
//
// This command runs the full setup pipeline: resource provider registration,
// resource group, storage account and file share, container registry,
// Log Analytics workspace, and the Container Apps managed environment.
//
// Optional arguments and flags:
//
//	[subscription-id]: Azure subscription to provision into (default: resolved
//	  from the config file, AZURE_SUBSCRIPTION_ID, or the active az session)
//	--config, -c: Path to project configuration YAML file (default: auto-detect azcap.yaml)
//	--redact: Mask secret values in the final summary
func Setup() *cobra.Command {
	var configPath string
	var redact bool

	cmd := &cobra.Command{
		Use:   "setup [subscription-id]",
		Short: "Provision the project infrastructure",
		Long: `Provision the core Azure infrastructure for your project.

This command creates (or verifies) the resource group, storage account,
file share, container registry, Log Analytics workspace, and Container
Apps managed environment. Phases run in order and stop at the first
failure; resources created before the failure are left in place, and
re-running converges because every create is create-or-verify.

The subscription is resolved from the positional argument, then the
config file, then AZURE_SUBSCRIPTION_ID, then the active az session.

The final summary includes generated credentials (storage key, registry
password, workspace shared key). Pass --redact to mask them.

Examples:
  # Provision using azcap.yaml in the current directory
  azcap setup

  # Provision into an explicit subscription
  azcap setup 00000000-0000-0000-0000-000000000000

  # Provision using a specific config file, masking secrets
  azcap setup -c production.yaml --redact`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscription := ""
			if len(args) > 0 {
				subscription = args[0]
			}
			return handlers.Setup(cmd.Context(), configPath, subscription, redact)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: azcap.yaml)")
	cmd.Flags().BoolVar(&redact, "redact", false, "Mask secret values in the summary")

	return cmd
}
