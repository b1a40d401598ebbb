package provisioning

import "github.com/azcap/azcap/internal/platform/azure"

// InstancePhase implements the Phase interface for the agent container
// group.
type InstancePhase struct{}

// Name implements the Phase interface.
func (p *InstancePhase) Name() string {
	return "instance"
}

// Provision deploys the agent container group running the pushed image with
// the file share mounted as its workspace.
func (p *InstancePhase) Provision(ctx *Context) error {
	cfg := ctx.Config
	state := ctx.State

	spec := azure.ContainerGroupSpec{
		Name:             cfg.Agent.Name,
		Location:         cfg.Location,
		Image:            state.ImageRef,
		RegistryServer:   state.RegistryServer,
		RegistryUsername: state.RegistryUsername,
		RegistryPassword: state.RegistryPassword,
		CPU:              cfg.Agent.CPU,
		MemoryGB:         cfg.Agent.MemoryGB,
		Port:             cfg.Agent.Port,
		StorageAccount:   state.StorageAccount,
		StorageKey:       state.StorageKey,
		ShareName:        state.FileShare,
		MountPath:        cfg.Agent.MountPath,
	}

	LogResourceCreating(ctx.Observer, p.Name(), "container group", spec.Name)
	if err := ctx.Infra.DeployContainerGroup(ctx, state.ResourceGroup, spec); err != nil {
		LogResourceFailed(ctx.Observer, p.Name(), "container group", spec.Name, err)
		return err
	}
	LogResourceCreated(ctx.Observer, p.Name(), "container group", spec.Name, spec.Image)

	return nil
}
