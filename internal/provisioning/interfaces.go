package provisioning

import "context"

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// ImageBuilder defines the interface for building and pushing the agent
// image. Implemented by internal/platform/docker.Client.
type ImageBuilder interface {
	// Build builds an image from the given dockerfile and build context.
	Build(ctx context.Context, image, dockerfile, contextDir string) error

	// Login authenticates against a registry before pushing.
	Login(ctx context.Context, server, username, password string) error

	// Push uploads the image to its registry.
	Push(ctx context.Context, image string) error
}
