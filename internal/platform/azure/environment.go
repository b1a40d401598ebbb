package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v2"
)

// logAnalyticsDestination routes environment logs to a Log Analytics
// workspace.
const logAnalyticsDestination = "log-analytics"

// EnsureEnvironment creates the Container Apps environment wired to the
// Log Analytics workspace and returns its identifiers.
func (c *RealClient) EnsureEnvironment(ctx context.Context, resourceGroup, name, location, customerID, sharedKey string) (EnvironmentInfo, error) {
	poller, err := c.environments.BeginCreateOrUpdate(ctx, resourceGroup, name, armappcontainers.ManagedEnvironment{
		Location: to.Ptr(location),
		Properties: &armappcontainers.ManagedEnvironmentProperties{
			AppLogsConfiguration: &armappcontainers.AppLogsConfiguration{
				Destination: to.Ptr(logAnalyticsDestination),
				LogAnalyticsConfiguration: &armappcontainers.LogAnalyticsConfiguration{
					CustomerID: to.Ptr(customerID),
					SharedKey:  to.Ptr(sharedKey),
				},
			},
		},
	}, nil)
	if err != nil {
		return EnvironmentInfo{}, fmt.Errorf("creating environment %s: %w", name, err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return EnvironmentInfo{}, fmt.Errorf("waiting for environment %s: %w", name, err)
	}

	var info EnvironmentInfo
	if resp.ID != nil {
		info.ID = *resp.ID
	}
	if resp.Properties != nil {
		if resp.Properties.DefaultDomain != nil {
			info.DefaultDomain = *resp.Properties.DefaultDomain
		}
		if resp.Properties.StaticIP != nil {
			info.StaticIP = *resp.Properties.StaticIP
		}
	}
	if info.ID == "" {
		return EnvironmentInfo{}, fmt.Errorf("environment %s has no resource ID", name)
	}
	return info, nil
}
