package provisioning

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Infrastructure results
	ResourceGroup  string
	StorageAccount string
	StorageKey     string
	FileShare      string

	// Registry results. RegistryName may differ from the configured name
	// when the name probe had to pick an alternative.
	RegistryName     string
	RegistryServer   string
	RegistryUsername string
	RegistryPassword string

	// Workspace and environment results
	WorkspaceCustomerID string
	WorkspaceSharedKey  string
	EnvironmentID       string
	EnvironmentDomain   string
	EnvironmentStaticIP string

	// Agent results
	ImageRef     string
	AgentAddress string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
