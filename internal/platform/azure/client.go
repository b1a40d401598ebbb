package azure

import "context"

// RegistryInfo describes a provisioned container registry.
type RegistryInfo struct {
	Name        string
	LoginServer string
}

// RegistryCredentials holds the admin credentials of a registry.
type RegistryCredentials struct {
	Username string
	Password string
}

// WorkspaceInfo describes a provisioned Log Analytics workspace.
type WorkspaceInfo struct {
	Name       string
	CustomerID string
}

// EnvironmentInfo describes a provisioned Container Apps environment.
type EnvironmentInfo struct {
	ID            string
	DefaultDomain string
	StaticIP      string
}

// ContainerGroupSpec holds all parameters for deploying a container group.
type ContainerGroupSpec struct {
	Name             string
	Location         string
	Image            string
	RegistryServer   string
	RegistryUsername string
	RegistryPassword string
	CPU              float64
	MemoryGB         float64
	Port             int32
	StorageAccount   string
	StorageKey       string
	ShareName        string
	MountPath        string
}

// ProviderRegistrar defines the interface for resource provider registration.
type ProviderRegistrar interface {
	// RegisterProvider issues a registration request for the namespace.
	// Registration completes asynchronously; poll ProviderRegistrationState
	// until it reports "Registered".
	RegisterProvider(ctx context.Context, namespace string) error
	ProviderRegistrationState(ctx context.Context, namespace string) (string, error)
}

// ResourceGroupManager defines the interface for managing resource groups.
type ResourceGroupManager interface {
	EnsureResourceGroup(ctx context.Context, name, location string) error
}

// StorageManager defines the interface for managing storage accounts and
// file shares.
type StorageManager interface {
	EnsureStorageAccount(ctx context.Context, resourceGroup, name, location string) error
	// StorageAccountKey returns the primary access key of the account.
	StorageAccountKey(ctx context.Context, resourceGroup, name string) (string, error)
	EnsureFileShare(ctx context.Context, resourceGroup, account, share string, quotaGiB int32) error
}

// RegistryManager defines the interface for managing container registries.
type RegistryManager interface {
	// IsRegistryNameAvailable reports whether the globally unique registry
	// name is still free.
	IsRegistryNameAvailable(ctx context.Context, name string) (bool, error)
	EnsureRegistry(ctx context.Context, resourceGroup, name, location string) (RegistryInfo, error)
	RegistryCredentials(ctx context.Context, resourceGroup, name string) (RegistryCredentials, error)
}

// WorkspaceManager defines the interface for managing Log Analytics workspaces.
type WorkspaceManager interface {
	EnsureWorkspace(ctx context.Context, resourceGroup, name, location string, retentionDays int32) (WorkspaceInfo, error)
	WorkspaceSharedKey(ctx context.Context, resourceGroup, name string) (string, error)
}

// EnvironmentManager defines the interface for managing Container Apps
// environments.
type EnvironmentManager interface {
	EnsureEnvironment(ctx context.Context, resourceGroup, name, location, customerID, sharedKey string) (EnvironmentInfo, error)
}

// InstanceManager defines the interface for managing container instances.
type InstanceManager interface {
	DeployContainerGroup(ctx context.Context, resourceGroup string, spec ContainerGroupSpec) error
	// ContainerGroupAddress returns the public IP of the group, or an empty
	// string while no address has been assigned yet.
	ContainerGroupAddress(ctx context.Context, resourceGroup, name string) (string, error)
}

// InfrastructureManager combines all infrastructure interfaces.
type InfrastructureManager interface {
	ProviderRegistrar
	ResourceGroupManager
	StorageManager
	RegistryManager
	WorkspaceManager
	EnvironmentManager
	InstanceManager
}
