package provisioning

import (
	"context"

	"github.com/azcap/azcap/internal/util/poll"
)

// AddressPhase implements the Phase interface for the agent's public
// address, which ACI assigns some time after the deployment completes.
type AddressPhase struct{}

// Name implements the Phase interface.
func (p *AddressPhase) Name() string {
	return "address"
}

// Provision polls the container group until it reports a public IP.
func (p *AddressPhase) Provision(ctx *Context) error {
	name := ctx.Config.Agent.Name

	var address string
	probe := func(pctx context.Context) (bool, string, error) {
		ip, err := ctx.Infra.ContainerGroupAddress(pctx, ctx.State.ResourceGroup, name)
		if err != nil {
			return false, "", err
		}
		if ip == "" {
			return false, "no address assigned", nil
		}
		address = ip
		return true, ip, nil
	}

	err := poll.Until(ctx, "agent public address", probe,
		poll.WithTimeout(ctx.Timeouts.AddressWait),
		poll.WithInterval(ctx.Timeouts.AddressPollInterval),
	)
	if err != nil {
		return err
	}

	ctx.State.AgentAddress = address
	ctx.Observer.Printf("[address] Agent reachable at %s:%d", address, ctx.Config.Agent.Port)
	return nil
}
