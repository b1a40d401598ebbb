package commands

import (
	"github.com/spf13/cobra"

	"github.com/azcap/azcap/cmd/azcap/handlers"
)

// Agent returns the command for provisioning a containerized build agent.
//
// This command builds the agent image with the local docker CLI, pushes it
// to a project container registry (resolving a globally unique registry
// name first), and deploys it as an Azure Container Instances container
// group with the project file share mounted and a public address.
//
// Optional arguments and flags:
//
//	[subscription-id]: Azure subscription to provision into (default: resolved
//	  from the config file, AZURE_SUBSCRIPTION_ID, or the active az session)
//	--config, -c: Path to project configuration YAML file (default: auto-detect azcap.yaml)
//	--redact: Mask secret values in the final summary
func Agent() *cobra.Command {
	var configPath string
	var redact bool

	cmd := &cobra.Command{
		Use:   "agent [subscription-id]",
		Short: "Build and deploy the containerized build agent",
		Long: `Build and deploy the project build agent on Azure Container Instances.

This command registers the required resource providers, ensures the
resource group, resolves a globally unique container registry name
(probing availability and falling back to suffixed candidates when the
configured name is taken), builds the agent image from the configured
Dockerfile, pushes it with a bounded retry, and deploys a container
group with the project file share mounted at the configured path and a
public address on the configured port.

Requires a local docker daemon for the image build and push.

Examples:
  # Build and deploy using azcap.yaml in the current directory
  azcap agent

  # Deploy into an explicit subscription
  azcap agent 00000000-0000-0000-0000-000000000000

  # Deploy using a specific config file
  azcap agent -c production.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subscription := ""
			if len(args) > 0 {
				subscription = args[0]
			}
			return handlers.Agent(cmd.Context(), configPath, subscription, redact)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: azcap.yaml)")
	cmd.Flags().BoolVar(&redact, "redact", false, "Mask secret values in the summary")

	return cmd
}
