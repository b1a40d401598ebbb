package provisioning

import (
	"context"
	"fmt"

	"github.com/azcap/azcap/internal/util/poll"
)

// providerRegistered is the terminal registration state reported by ARM.
const providerRegistered = "Registered"

// ProvidersPhase implements the Phase interface for resource provider
// registration.
type ProvidersPhase struct {
	// Namespaces lists the resource providers the pipeline depends on,
	// e.g. "Microsoft.Storage".
	Namespaces []string
}

// Name implements the Phase interface.
func (p *ProvidersPhase) Name() string {
	return "providers"
}

// Provision registers each namespace and waits until ARM reports it as
// Registered. The registration request itself is best-effort: if it fails,
// the poll still decides whether the provider converged.
func (p *ProvidersPhase) Provision(ctx *Context) error {
	for i, namespace := range p.Namespaces {
		ctx.Observer.Progress(p.Name(), i+1, len(p.Namespaces))

		state, err := ctx.Infra.ProviderRegistrationState(ctx, namespace)
		if err == nil && state == providerRegistered {
			LogResourceExists(ctx.Observer, p.Name(), "resource provider", namespace, state)
			continue
		}

		LogResourceCreating(ctx.Observer, p.Name(), "resource provider", namespace)
		if err := ctx.Infra.RegisterProvider(ctx, namespace); err != nil {
			ctx.Observer.Printf("[providers] register request for %s failed: %v", namespace, err)
		}

		target := fmt.Sprintf("provider %s registration", namespace)
		err = poll.Until(ctx, target, p.registrationProbe(ctx, namespace),
			poll.WithTimeout(ctx.Timeouts.ProviderRegister),
			poll.WithInterval(ctx.Timeouts.ProviderPollInterval),
		)
		if err != nil {
			return err
		}

		LogResourceCreated(ctx.Observer, p.Name(), "resource provider", namespace, providerRegistered)
	}
	return nil
}

// registrationProbe reads the registration state of the namespace. Lookup
// errors count as not-yet-registered so a flaky read does not abort the wait.
func (p *ProvidersPhase) registrationProbe(pctx *Context, namespace string) poll.Probe {
	return func(ctx context.Context) (bool, string, error) {
		state, err := pctx.Infra.ProviderRegistrationState(ctx, namespace)
		if err != nil {
			return false, "", err
		}
		return state == providerRegistered, state, nil
	}
}
