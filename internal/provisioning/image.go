package provisioning

import (
	"fmt"

	"github.com/azcap/azcap/internal/util/retry"
)

// ImagePhase implements the Phase interface for building the agent image
// and pushing it to the registry provisioned earlier.
type ImagePhase struct{}

// Name implements the Phase interface.
func (p *ImagePhase) Name() string {
	return "image"
}

// Provision builds the image, logs in to the registry with its admin
// credentials, and pushes. Pushes against a freshly created registry fail
// transiently while its DNS record propagates, so the push is retried on a
// fixed delay.
func (p *ImagePhase) Provision(ctx *Context) error {
	cfg := ctx.Config
	state := ctx.State

	image := cfg.ImageRef(state.RegistryServer)

	ctx.Observer.Printf("[image] Building %s...", image)
	if err := ctx.Docker.Build(ctx, image, cfg.Image.Dockerfile, cfg.Image.Context); err != nil {
		return err
	}

	ctx.Observer.Printf("[image] Logging in to %s...", state.RegistryServer)
	if err := ctx.Docker.Login(ctx, state.RegistryServer, state.RegistryUsername, state.RegistryPassword); err != nil {
		return err
	}

	ctx.Observer.Printf("[image] Pushing %s...", image)
	push := func() error {
		return ctx.Docker.Push(ctx, image)
	}
	err := retry.Do(ctx, push,
		retry.WithAttempts(ctx.Timeouts.PushAttempts),
		retry.WithDelay(ctx.Timeouts.PushDelay),
	)
	if err != nil {
		return fmt.Errorf("%w (verify the docker daemon is running and the registry is reachable, then push manually with 'docker push %s')", err, image)
	}

	state.ImageRef = image
	return nil
}
