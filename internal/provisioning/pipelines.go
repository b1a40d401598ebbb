package provisioning

// Resource providers each pipeline depends on. Subscriptions start with
// most providers unregistered, so both pipelines register theirs up front.
var (
	setupProviderNamespaces = []string{
		"Microsoft.Storage",
		"Microsoft.ContainerRegistry",
		"Microsoft.OperationalInsights",
		"Microsoft.App",
	}

	agentProviderNamespaces = []string{
		"Microsoft.Storage",
		"Microsoft.ContainerRegistry",
		"Microsoft.ContainerInstance",
	}
)

// SetupPhases returns the phases that provision the Container Apps
// foundation: resource group, storage, registry, workspace, and environment.
func SetupPhases() []Phase {
	return []Phase{
		&ValidationPhase{},
		&ProvidersPhase{Namespaces: setupProviderNamespaces},
		&ResourceGroupPhase{},
		&StoragePhase{},
		&RegistryPhase{},
		&WorkspacePhase{},
		&EnvironmentPhase{},
	}
}

// AgentPhases returns the phases that build the agent image and run it as a
// container group with a public address and a mounted file share. The
// registry phase probes for an available name instead of failing when the
// derived name is taken.
func AgentPhases() []Phase {
	return []Phase{
		&ValidationPhase{CheckAgentInputs: true},
		&ProvidersPhase{Namespaces: agentProviderNamespaces},
		&ResourceGroupPhase{},
		&RegistryPhase{ResolveName: true},
		&StoragePhase{},
		&ImagePhase{},
		&InstancePhase{},
		&AddressPhase{},
	}
}
