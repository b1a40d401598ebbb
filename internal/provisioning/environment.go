package provisioning

// EnvironmentPhase implements the Phase interface for the Container Apps
// managed environment.
type EnvironmentPhase struct{}

// Name implements the Phase interface.
func (p *EnvironmentPhase) Name() string {
	return "environment"
}

// Provision creates the managed environment wired to the workspace
// provisioned earlier.
func (p *EnvironmentPhase) Provision(ctx *Context) error {
	name := ctx.Config.Environment.Name

	LogResourceCreating(ctx.Observer, p.Name(), "container apps environment", name)
	info, err := ctx.Infra.EnsureEnvironment(ctx, ctx.State.ResourceGroup, name, ctx.Config.Location,
		ctx.State.WorkspaceCustomerID, ctx.State.WorkspaceSharedKey)
	if err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), "container apps environment", name, err)
		return err
	}

	ctx.State.EnvironmentID = info.ID
	ctx.State.EnvironmentDomain = info.DefaultDomain
	ctx.State.EnvironmentStaticIP = info.StaticIP
	LogResourceCreated(ctx.Observer, p.Name(), "container apps environment", name, info.ID)

	return nil
}
