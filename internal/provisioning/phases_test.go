package provisioning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/azcap/azcap/internal/config"
	"github.com/azcap/azcap/internal/platform/azure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext builds a provisioning context with a mock client, a mock
// observer, and short poll budgets so tests never wait on real timers.
func newTestContext(t *testing.T, infra azure.InfrastructureManager) *Context {
	t.Helper()

	cfg := &config.Config{
		Project:      "demo",
		Subscription: "00000000-0000-0000-0000-000000000000",
	}
	cfg.ApplyDefaults()

	return &Context{
		Context:  context.Background(),
		Config:   cfg,
		State:    NewState(),
		Infra:    infra,
		Observer: NewMockObserver(),
		Timeouts: &config.Timeouts{
			ProviderRegister:     100 * time.Millisecond,
			ProviderPollInterval: time.Millisecond,
			AddressWait:          100 * time.Millisecond,
			AddressPollInterval:  time.Millisecond,
			PushAttempts:         3,
			PushDelay:            0,
			NameAttempts:         12,
		},
	}
}

func TestResourceGroupPhase(t *testing.T) {
	t.Parallel()

	var gotName, gotLocation string
	mock := &azure.MockClient{
		EnsureResourceGroupFunc: func(_ context.Context, name, location string) error {
			gotName, gotLocation = name, location
			return nil
		},
	}
	ctx := newTestContext(t, mock)

	phase := &ResourceGroupPhase{}
	require.NoError(t, phase.Provision(ctx))

	assert.Equal(t, "demo-rg", gotName)
	assert.Equal(t, "eastus", gotLocation)
	assert.Equal(t, "demo-rg", ctx.State.ResourceGroup)
}

func TestResourceGroupPhase_Error(t *testing.T) {
	t.Parallel()

	mock := &azure.MockClient{
		EnsureResourceGroupFunc: func(_ context.Context, _, _ string) error {
			return errors.New("forbidden")
		},
	}
	ctx := newTestContext(t, mock)

	err := (&ResourceGroupPhase{}).Provision(ctx)
	require.Error(t, err)
	assert.Empty(t, ctx.State.ResourceGroup)

	observer := ctx.Observer.(*MockObserver)
	assert.True(t, observer.hasEvent(EventResourceFailed))
}

func TestStoragePhase(t *testing.T) {
	t.Parallel()

	var gotShare string
	var gotQuota int32
	mock := &azure.MockClient{
		EnsureFileShareFunc: func(_ context.Context, _, _, share string, quotaGiB int32) error {
			gotShare, gotQuota = share, quotaGiB
			return nil
		},
	}
	ctx := newTestContext(t, mock)
	ctx.State.ResourceGroup = "demo-rg"

	phase := &StoragePhase{}
	require.NoError(t, phase.Provision(ctx))

	assert.Equal(t, "demostor", ctx.State.StorageAccount)
	assert.Equal(t, "mock-storage-key", ctx.State.StorageKey)
	assert.Equal(t, "demo-share", ctx.State.FileShare)
	assert.Equal(t, "demo-share", gotShare)
	assert.Equal(t, int32(100), gotQuota)
}

func TestStoragePhase_KeyError(t *testing.T) {
	t.Parallel()

	mock := &azure.MockClient{
		StorageAccountKeyFunc: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("listing keys failed")
		},
	}
	ctx := newTestContext(t, mock)

	err := (&StoragePhase{}).Provision(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing keys failed")
	assert.Empty(t, ctx.State.FileShare)
}

func TestWorkspacePhase(t *testing.T) {
	t.Parallel()

	var gotRetention int32
	mock := &azure.MockClient{
		EnsureWorkspaceFunc: func(_ context.Context, _, name, _ string, retentionDays int32) (azure.WorkspaceInfo, error) {
			gotRetention = retentionDays
			return azure.WorkspaceInfo{Name: name, CustomerID: "11111111-2222-3333-4444-555555555555"}, nil
		},
		WorkspaceSharedKeyFunc: func(_ context.Context, _, _ string) (string, error) {
			return "c2hhcmVkLWtleQ==", nil
		},
	}
	ctx := newTestContext(t, mock)
	ctx.State.ResourceGroup = "demo-rg"

	phase := &WorkspacePhase{}
	require.NoError(t, phase.Provision(ctx))

	assert.Equal(t, int32(30), gotRetention)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", ctx.State.WorkspaceCustomerID)
	assert.Equal(t, "c2hhcmVkLWtleQ==", ctx.State.WorkspaceSharedKey)
}

func TestEnvironmentPhase(t *testing.T) {
	t.Parallel()

	var gotCustomerID, gotSharedKey string
	mock := &azure.MockClient{
		EnsureEnvironmentFunc: func(_ context.Context, _, name, _, customerID, sharedKey string) (azure.EnvironmentInfo, error) {
			gotCustomerID, gotSharedKey = customerID, sharedKey
			return azure.EnvironmentInfo{
				ID:            "/subscriptions/x/managedEnvironments/" + name,
				DefaultDomain: "demo.eastus.azurecontainerapps.io",
				StaticIP:      "20.1.2.3",
			}, nil
		},
	}
	ctx := newTestContext(t, mock)
	ctx.State.ResourceGroup = "demo-rg"
	ctx.State.WorkspaceCustomerID = "customer-id"
	ctx.State.WorkspaceSharedKey = "shared-key"

	phase := &EnvironmentPhase{}
	require.NoError(t, phase.Provision(ctx))

	assert.Equal(t, "customer-id", gotCustomerID)
	assert.Equal(t, "shared-key", gotSharedKey)
	assert.Equal(t, "/subscriptions/x/managedEnvironments/demo-env", ctx.State.EnvironmentID)
	assert.Equal(t, "demo.eastus.azurecontainerapps.io", ctx.State.EnvironmentDomain)
	assert.Equal(t, "20.1.2.3", ctx.State.EnvironmentStaticIP)
}

func TestInstancePhase(t *testing.T) {
	t.Parallel()

	var gotGroup string
	var gotSpec azure.ContainerGroupSpec
	mock := &azure.MockClient{
		DeployContainerGroupFunc: func(_ context.Context, resourceGroup string, spec azure.ContainerGroupSpec) error {
			gotGroup, gotSpec = resourceGroup, spec
			return nil
		},
	}
	ctx := newTestContext(t, mock)
	ctx.State.ResourceGroup = "demo-rg"
	ctx.State.StorageAccount = "demostor"
	ctx.State.StorageKey = "storage-key"
	ctx.State.FileShare = "demo-share"
	ctx.State.RegistryServer = "demoacr.azurecr.io"
	ctx.State.RegistryUsername = "demoacr"
	ctx.State.RegistryPassword = "registry-password"
	ctx.State.ImageRef = "demoacr.azurecr.io/agent:latest"

	phase := &InstancePhase{}
	require.NoError(t, phase.Provision(ctx))

	assert.Equal(t, "demo-rg", gotGroup)
	assert.Equal(t, "demo-agent", gotSpec.Name)
	assert.Equal(t, "eastus", gotSpec.Location)
	assert.Equal(t, "demoacr.azurecr.io/agent:latest", gotSpec.Image)
	assert.Equal(t, "demoacr.azurecr.io", gotSpec.RegistryServer)
	assert.Equal(t, "demoacr", gotSpec.RegistryUsername)
	assert.Equal(t, "registry-password", gotSpec.RegistryPassword)
	assert.Equal(t, 1.0, gotSpec.CPU)
	assert.Equal(t, 2.0, gotSpec.MemoryGB)
	assert.Equal(t, int32(8080), gotSpec.Port)
	assert.Equal(t, "demostor", gotSpec.StorageAccount)
	assert.Equal(t, "storage-key", gotSpec.StorageKey)
	assert.Equal(t, "demo-share", gotSpec.ShareName)
	assert.Equal(t, "/workspace", gotSpec.MountPath)
}
