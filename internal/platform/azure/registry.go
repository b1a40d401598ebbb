package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerregistry/armcontainerregistry"
)

// registryResourceType is the ARM type string required by the name
// availability endpoint.
const registryResourceType = "Microsoft.ContainerRegistry/registries"

// IsRegistryNameAvailable reports whether a registry name is globally free.
func (c *RealClient) IsRegistryNameAvailable(ctx context.Context, name string) (bool, error) {
	resp, err := c.registries.CheckNameAvailability(ctx, armcontainerregistry.RegistryNameCheckRequest{
		Name: to.Ptr(name),
		Type: to.Ptr(registryResourceType),
	}, nil)
	if err != nil {
		return false, fmt.Errorf("checking registry name %s: %w", name, err)
	}
	return resp.NameAvailable != nil && *resp.NameAvailable, nil
}

// EnsureRegistry creates the registry if needed and returns its login
// server. The admin account is enabled so docker and container instances
// can authenticate with the registry credentials.
func (c *RealClient) EnsureRegistry(ctx context.Context, resourceGroup, name, location string) (RegistryInfo, error) {
	poller, err := c.registries.BeginCreate(ctx, resourceGroup, name, armcontainerregistry.Registry{
		Location: to.Ptr(location),
		SKU: &armcontainerregistry.SKU{
			Name: to.Ptr(armcontainerregistry.SKUNameBasic),
		},
		Properties: &armcontainerregistry.RegistryProperties{
			AdminUserEnabled: to.Ptr(true),
		},
	}, nil)
	if err != nil {
		return RegistryInfo{}, fmt.Errorf("creating registry %s: %w", name, err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return RegistryInfo{}, fmt.Errorf("waiting for registry %s: %w", name, err)
	}

	info := RegistryInfo{Name: name}
	if resp.Properties != nil && resp.Properties.LoginServer != nil {
		info.LoginServer = *resp.Properties.LoginServer
	}
	if info.LoginServer == "" {
		return RegistryInfo{}, fmt.Errorf("registry %s has no login server", name)
	}
	return info, nil
}

// RegistryCredentials returns the admin username and first password of the
// registry.
func (c *RealClient) RegistryCredentials(ctx context.Context, resourceGroup, name string) (RegistryCredentials, error) {
	resp, err := c.registries.ListCredentials(ctx, resourceGroup, name, nil)
	if err != nil {
		return RegistryCredentials{}, fmt.Errorf("listing credentials for registry %s: %w", name, err)
	}

	var creds RegistryCredentials
	if resp.Username != nil {
		creds.Username = *resp.Username
	}
	for _, pw := range resp.Passwords {
		if pw != nil && pw.Value != nil && *pw.Value != "" {
			creds.Password = *pw.Value
			break
		}
	}
	if creds.Username == "" || creds.Password == "" {
		return RegistryCredentials{}, fmt.Errorf("registry %s returned incomplete admin credentials", name)
	}
	return creds, nil
}
