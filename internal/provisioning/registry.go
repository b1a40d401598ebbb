package provisioning

import "github.com/azcap/azcap/internal/util/naming"

// RegistryPhase implements the Phase interface for the container registry.
type RegistryPhase struct {
	// ResolveName probes the configured name against the global registry
	// namespace and falls back to suffixed candidates when it is taken.
	// Without it the configured name is used verbatim.
	ResolveName bool
}

// Name implements the Phase interface.
func (p *RegistryPhase) Name() string {
	return "registry"
}

// Provision creates the registry and reads its admin credentials.
func (p *RegistryPhase) Provision(ctx *Context) error {
	name := ctx.Config.Registry.Name

	if p.ResolveName {
		resolved, err := naming.Resolve(ctx, name, ctx.Infra.IsRegistryNameAvailable,
			naming.WithAttempts(ctx.Timeouts.NameAttempts))
		if err != nil {
			return err
		}
		if resolved != name {
			ctx.Observer.Printf("[registry] name %s is taken, using %s", name, resolved)
		}
		name = resolved
	}

	LogResourceCreating(ctx.Observer, p.Name(), "container registry", name)
	info, err := ctx.Infra.EnsureRegistry(ctx, ctx.State.ResourceGroup, name, ctx.Config.Location)
	if err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), "container registry", name, err)
		return err
	}
	ctx.State.RegistryName = info.Name
	ctx.State.RegistryServer = info.LoginServer
	LogResourceCreated(ctx.Observer, p.Name(), "container registry", info.Name, info.LoginServer)

	creds, err := ctx.Infra.RegistryCredentials(ctx, ctx.State.ResourceGroup, info.Name)
	if err != nil {
		return err
	}
	ctx.State.RegistryUsername = creds.Username
	ctx.State.RegistryPassword = creds.Password

	return nil
}
