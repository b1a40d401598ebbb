package provisioning

// StoragePhase implements the Phase interface for the storage account, its
// access key, and the workspace file share.
type StoragePhase struct{}

// Name implements the Phase interface.
func (p *StoragePhase) Name() string {
	return "storage"
}

// Provision creates the storage account, fetches its primary key, and
// creates the file share inside it.
func (p *StoragePhase) Provision(ctx *Context) error {
	cfg := ctx.Config
	account := cfg.Storage.Account

	LogResourceCreating(ctx.Observer, p.Name(), "storage account", account)
	if err := ctx.Infra.EnsureStorageAccount(ctx, ctx.State.ResourceGroup, account, cfg.Location); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), "storage account", account, err)
		return err
	}
	ctx.State.StorageAccount = account
	LogResourceCreated(ctx.Observer, p.Name(), "storage account", account, account)

	key, err := ctx.Infra.StorageAccountKey(ctx, ctx.State.ResourceGroup, account)
	if err != nil {
		return err
	}
	ctx.State.StorageKey = key

	share := cfg.Storage.Share
	LogResourceCreating(ctx.Observer, p.Name(), "file share", share)
	if err := ctx.Infra.EnsureFileShare(ctx, ctx.State.ResourceGroup, account, share, cfg.Storage.QuotaGiB); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), "file share", share, err)
		return err
	}
	ctx.State.FileShare = share
	LogResourceCreated(ctx.Observer, p.Name(), "file share", share, share)

	return nil
}
