package provisioning

// WorkspacePhase implements the Phase interface for the Log Analytics
// workspace backing environment logs.
type WorkspacePhase struct{}

// Name implements the Phase interface.
func (p *WorkspacePhase) Name() string {
	return "workspace"
}

// Provision creates the workspace and reads the customer ID and shared key
// the environment phase wires into its log configuration.
func (p *WorkspacePhase) Provision(ctx *Context) error {
	cfg := ctx.Config
	name := cfg.Workspace.Name

	LogResourceCreating(ctx.Observer, p.Name(), "log analytics workspace", name)
	info, err := ctx.Infra.EnsureWorkspace(ctx, ctx.State.ResourceGroup, name, cfg.Location, cfg.Workspace.RetentionDays)
	if err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), "log analytics workspace", name, err)
		return err
	}
	ctx.State.WorkspaceCustomerID = info.CustomerID
	LogResourceCreated(ctx.Observer, p.Name(), "log analytics workspace", name, info.CustomerID)

	key, err := ctx.Infra.WorkspaceSharedKey(ctx, ctx.State.ResourceGroup, name)
	if err != nil {
		return err
	}
	ctx.State.WorkspaceSharedKey = key

	return nil
}
