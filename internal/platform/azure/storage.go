package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

// EnsureStorageAccount creates the storage account if needed and waits for
// provisioning to complete. Re-running against an existing account with the
// same parameters succeeds.
func (c *RealClient) EnsureStorageAccount(ctx context.Context, resourceGroup, name, location string) error {
	poller, err := c.accounts.BeginCreate(ctx, resourceGroup, name, armstorage.AccountCreateParameters{
		Kind:     to.Ptr(armstorage.KindStorageV2),
		Location: to.Ptr(location),
		SKU: &armstorage.SKU{
			Name: to.Ptr(armstorage.SKUNameStandardLRS),
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("creating storage account %s: %w", name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("waiting for storage account %s: %w", name, err)
	}
	return nil
}

// StorageAccountKey returns the primary access key of the account.
func (c *RealClient) StorageAccountKey(ctx context.Context, resourceGroup, name string) (string, error) {
	resp, err := c.accounts.ListKeys(ctx, resourceGroup, name, nil)
	if err != nil {
		return "", fmt.Errorf("listing keys for storage account %s: %w", name, err)
	}
	for _, key := range resp.Keys {
		if key != nil && key.Value != nil && *key.Value != "" {
			return *key.Value, nil
		}
	}
	return "", fmt.Errorf("storage account %s returned no keys", name)
}

// EnsureFileShare creates the file share, treating an existing share as
// success.
func (c *RealClient) EnsureFileShare(ctx context.Context, resourceGroup, account, share string, quotaGiB int32) error {
	_, err := c.shares.Create(ctx, resourceGroup, account, share, armstorage.FileShare{
		FileShareProperties: &armstorage.FileShareProperties{
			ShareQuota: to.Ptr(quotaGiB),
		},
	}, nil)
	if err != nil {
		// The share already exists.
		if IsConflict(err) {
			return nil
		}
		return fmt.Errorf("creating file share %s: %w", share, err)
	}
	return nil
}
