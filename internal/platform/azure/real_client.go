package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerinstance/armcontainerinstance/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerregistry/armcontainerregistry"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

// RealClient implements InfrastructureManager using the Azure Resource
// Manager API.
type RealClient struct {
	subscriptionID string
	credential     azcore.TokenCredential
	armOptions     *arm.ClientOptions

	providers       *armresources.ProvidersClient
	groups          *armresources.ResourceGroupsClient
	accounts        *armstorage.AccountsClient
	shares          *armstorage.FileSharesClient
	registries      *armcontainerregistry.RegistriesClient
	workspaces      *armoperationalinsights.WorkspacesClient
	sharedKeys      *armoperationalinsights.SharedKeysClient
	environments    *armappcontainers.ManagedEnvironmentsClient
	containerGroups *armcontainerinstance.ContainerGroupsClient
}

var _ InfrastructureManager = (*RealClient)(nil)

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithCredential sets a custom token credential (useful for testing).
func WithCredential(cred azcore.TokenCredential) ClientOption {
	return func(c *RealClient) {
		c.credential = cred
	}
}

// WithARMClientOptions sets custom ARM client options, e.g. a sovereign
// cloud configuration or an injected HTTP transport.
func WithARMClientOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.armOptions = opts
	}
}

// NewRealClient creates a new RealClient for the subscription.
// Without an explicit credential it authenticates via the default Azure
// credential chain, which includes the active az session.
func NewRealClient(subscriptionID string, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{subscriptionID: subscriptionID}
	for _, opt := range opts {
		opt(c)
	}

	if c.credential == nil {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("building azure credential: %w", err)
		}
		c.credential = cred
	}

	var err error
	if c.providers, err = armresources.NewProvidersClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating providers client: %w", err)
	}
	if c.groups, err = armresources.NewResourceGroupsClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating resource groups client: %w", err)
	}
	if c.accounts, err = armstorage.NewAccountsClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating storage accounts client: %w", err)
	}
	if c.shares, err = armstorage.NewFileSharesClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating file shares client: %w", err)
	}
	if c.registries, err = armcontainerregistry.NewRegistriesClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating registries client: %w", err)
	}
	if c.workspaces, err = armoperationalinsights.NewWorkspacesClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating workspaces client: %w", err)
	}
	if c.sharedKeys, err = armoperationalinsights.NewSharedKeysClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating shared keys client: %w", err)
	}
	if c.environments, err = armappcontainers.NewManagedEnvironmentsClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating managed environments client: %w", err)
	}
	if c.containerGroups, err = armcontainerinstance.NewContainerGroupsClient(subscriptionID, c.credential, c.armOptions); err != nil {
		return nil, fmt.Errorf("creating container groups client: %w", err)
	}

	return c, nil
}

// SubscriptionID returns the subscription the client operates on.
func (c *RealClient) SubscriptionID() string {
	return c.subscriptionID
}
