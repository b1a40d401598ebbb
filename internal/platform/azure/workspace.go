package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights/v2"
)

// EnsureWorkspace creates the Log Analytics workspace if needed and returns
// its customer ID, which Container Apps environments use as the log
// destination identifier.
func (c *RealClient) EnsureWorkspace(ctx context.Context, resourceGroup, name, location string, retentionDays int32) (WorkspaceInfo, error) {
	poller, err := c.workspaces.BeginCreateOrUpdate(ctx, resourceGroup, name, armoperationalinsights.Workspace{
		Location: to.Ptr(location),
		Properties: &armoperationalinsights.WorkspaceProperties{
			RetentionInDays: to.Ptr(retentionDays),
			SKU: &armoperationalinsights.WorkspaceSKU{
				Name: to.Ptr(armoperationalinsights.WorkspaceSKUNameEnumPerGB2018),
			},
		},
	}, nil)
	if err != nil {
		return WorkspaceInfo{}, fmt.Errorf("creating workspace %s: %w", name, err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return WorkspaceInfo{}, fmt.Errorf("waiting for workspace %s: %w", name, err)
	}

	info := WorkspaceInfo{Name: name}
	if resp.Properties != nil && resp.Properties.CustomerID != nil {
		info.CustomerID = *resp.Properties.CustomerID
	}
	if info.CustomerID == "" {
		return WorkspaceInfo{}, fmt.Errorf("workspace %s has no customer ID", name)
	}
	return info, nil
}

// WorkspaceSharedKey returns the primary shared key of the workspace.
func (c *RealClient) WorkspaceSharedKey(ctx context.Context, resourceGroup, name string) (string, error) {
	resp, err := c.sharedKeys.GetSharedKeys(ctx, resourceGroup, name, nil)
	if err != nil {
		return "", fmt.Errorf("reading shared keys for workspace %s: %w", name, err)
	}
	if resp.PrimarySharedKey == nil || *resp.PrimarySharedKey == "" {
		return "", fmt.Errorf("workspace %s returned no primary shared key", name)
	}
	return *resp.PrimarySharedKey, nil
}
