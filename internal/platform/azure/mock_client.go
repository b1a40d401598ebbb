package azure

import "context"

// MockClient is a mock implementation of InfrastructureManager.
type MockClient struct {
	RegisterProviderFunc          func(ctx context.Context, namespace string) error
	ProviderRegistrationStateFunc func(ctx context.Context, namespace string) (string, error)

	EnsureResourceGroupFunc func(ctx context.Context, name, location string) error

	// Storage
	EnsureStorageAccountFunc func(ctx context.Context, resourceGroup, name, location string) error
	StorageAccountKeyFunc    func(ctx context.Context, resourceGroup, name string) (string, error)
	EnsureFileShareFunc      func(ctx context.Context, resourceGroup, account, share string, quotaGiB int32) error

	// Registry
	IsRegistryNameAvailableFunc func(ctx context.Context, name string) (bool, error)
	EnsureRegistryFunc          func(ctx context.Context, resourceGroup, name, location string) (RegistryInfo, error)
	RegistryCredentialsFunc     func(ctx context.Context, resourceGroup, name string) (RegistryCredentials, error)

	// Workspace
	EnsureWorkspaceFunc    func(ctx context.Context, resourceGroup, name, location string, retentionDays int32) (WorkspaceInfo, error)
	WorkspaceSharedKeyFunc func(ctx context.Context, resourceGroup, name string) (string, error)

	// Environment
	EnsureEnvironmentFunc func(ctx context.Context, resourceGroup, name, location, customerID, sharedKey string) (EnvironmentInfo, error)

	// Instance
	DeployContainerGroupFunc  func(ctx context.Context, resourceGroup string, spec ContainerGroupSpec) error
	ContainerGroupAddressFunc func(ctx context.Context, resourceGroup, name string) (string, error)
}

// Ensure interface compliance
var _ InfrastructureManager = (*MockClient)(nil)

// RegisterProvider mocks provider registration.
func (m *MockClient) RegisterProvider(ctx context.Context, namespace string) error {
	if m.RegisterProviderFunc != nil {
		return m.RegisterProviderFunc(ctx, namespace)
	}
	return nil
}

// ProviderRegistrationState mocks reading the registration state.
func (m *MockClient) ProviderRegistrationState(ctx context.Context, namespace string) (string, error) {
	if m.ProviderRegistrationStateFunc != nil {
		return m.ProviderRegistrationStateFunc(ctx, namespace)
	}
	return "Registered", nil
}

// EnsureResourceGroup mocks resource group creation.
func (m *MockClient) EnsureResourceGroup(ctx context.Context, name, location string) error {
	if m.EnsureResourceGroupFunc != nil {
		return m.EnsureResourceGroupFunc(ctx, name, location)
	}
	return nil
}

// Storage mocks
func (m *MockClient) EnsureStorageAccount(ctx context.Context, resourceGroup, name, location string) error {
	if m.EnsureStorageAccountFunc != nil {
		return m.EnsureStorageAccountFunc(ctx, resourceGroup, name, location)
	}
	return nil
}
func (m *MockClient) StorageAccountKey(ctx context.Context, resourceGroup, name string) (string, error) {
	if m.StorageAccountKeyFunc != nil {
		return m.StorageAccountKeyFunc(ctx, resourceGroup, name)
	}
	return "mock-storage-key", nil
}
func (m *MockClient) EnsureFileShare(ctx context.Context, resourceGroup, account, share string, quotaGiB int32) error {
	if m.EnsureFileShareFunc != nil {
		return m.EnsureFileShareFunc(ctx, resourceGroup, account, share, quotaGiB)
	}
	return nil
}

// Registry mocks
func (m *MockClient) IsRegistryNameAvailable(ctx context.Context, name string) (bool, error) {
	if m.IsRegistryNameAvailableFunc != nil {
		return m.IsRegistryNameAvailableFunc(ctx, name)
	}
	return true, nil
}
func (m *MockClient) EnsureRegistry(ctx context.Context, resourceGroup, name, location string) (RegistryInfo, error) {
	if m.EnsureRegistryFunc != nil {
		return m.EnsureRegistryFunc(ctx, resourceGroup, name, location)
	}
	return RegistryInfo{Name: name, LoginServer: name + ".azurecr.io"}, nil
}
func (m *MockClient) RegistryCredentials(ctx context.Context, resourceGroup, name string) (RegistryCredentials, error) {
	if m.RegistryCredentialsFunc != nil {
		return m.RegistryCredentialsFunc(ctx, resourceGroup, name)
	}
	return RegistryCredentials{Username: name, Password: "mock-password"}, nil
}

// Workspace mocks
func (m *MockClient) EnsureWorkspace(ctx context.Context, resourceGroup, name, location string, retentionDays int32) (WorkspaceInfo, error) {
	if m.EnsureWorkspaceFunc != nil {
		return m.EnsureWorkspaceFunc(ctx, resourceGroup, name, location, retentionDays)
	}
	return WorkspaceInfo{Name: name, CustomerID: "mock-customer-id"}, nil
}
func (m *MockClient) WorkspaceSharedKey(ctx context.Context, resourceGroup, name string) (string, error) {
	if m.WorkspaceSharedKeyFunc != nil {
		return m.WorkspaceSharedKeyFunc(ctx, resourceGroup, name)
	}
	return "mock-shared-key", nil
}

// Environment mocks
func (m *MockClient) EnsureEnvironment(ctx context.Context, resourceGroup, name, location, customerID, sharedKey string) (EnvironmentInfo, error) {
	if m.EnsureEnvironmentFunc != nil {
		return m.EnsureEnvironmentFunc(ctx, resourceGroup, name, location, customerID, sharedKey)
	}
	return EnvironmentInfo{ID: "mock-environment-id", DefaultDomain: "mock.eastus.azurecontainerapps.io"}, nil
}

// Instance mocks
func (m *MockClient) DeployContainerGroup(ctx context.Context, resourceGroup string, spec ContainerGroupSpec) error {
	if m.DeployContainerGroupFunc != nil {
		return m.DeployContainerGroupFunc(ctx, resourceGroup, spec)
	}
	return nil
}
func (m *MockClient) ContainerGroupAddress(ctx context.Context, resourceGroup, name string) (string, error) {
	if m.ContainerGroupAddressFunc != nil {
		return m.ContainerGroupAddressFunc(ctx, resourceGroup, name)
	}
	return "20.0.0.1", nil
}
