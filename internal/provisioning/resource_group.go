package provisioning

// ResourceGroupPhase implements the Phase interface for the resource group.
type ResourceGroupPhase struct{}

// Name implements the Phase interface.
func (p *ResourceGroupPhase) Name() string {
	return "resource-group"
}

// Provision creates the resource group that holds every other resource.
func (p *ResourceGroupPhase) Provision(ctx *Context) error {
	name := ctx.Config.ResourceGroup

	LogResourceCreating(ctx.Observer, p.Name(), "resource group", name)
	if err := ctx.Infra.EnsureResourceGroup(ctx, name, ctx.Config.Location); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), "resource group", name, err)
		return err
	}

	ctx.State.ResourceGroup = name
	LogResourceCreated(ctx.Observer, p.Name(), "resource group", name, name)
	return nil
}
