package provisioning

import (
	"context"

	"github.com/azcap/azcap/internal/config"
	"github.com/azcap/azcap/internal/platform/azure"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Infra    azure.InfrastructureManager
	Docker   ImageBuilder
	Observer Observer
	Timeouts *config.Timeouts
}

// NewContext creates a new provisioning context.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	infra azure.InfrastructureManager,
	docker ImageBuilder,
) *Context {
	observer := NewConsoleObserver()
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Infra:    infra,
		Docker:   docker,
		Observer: observer,
		Timeouts: config.LoadTimeouts(),
	}
}
