// Package docker drives the local docker CLI for image builds, registry
// logins, and pushes.
package docker

import (
	"context"
	"fmt"
	"strings"
)

// Client runs docker commands through a Runner.
type Client struct {
	runner Runner
}

// Option configures a Client.
type Option func(*Client)

// WithRunner replaces the command runner used to invoke docker.
func WithRunner(r Runner) Option {
	return func(c *Client) {
		c.runner = r
	}
}

// NewClient creates a docker CLI client.
func NewClient(opts ...Option) *Client {
	c := &Client{runner: &DefaultRunner{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Build builds an image from the given dockerfile and build context.
func (c *Client) Build(ctx context.Context, image, dockerfile, contextDir string) error {
	out, err := c.runner.Run(ctx, "docker", "build", "-t", image, "-f", dockerfile, contextDir)
	if err != nil {
		return fmt.Errorf("failed to build image %s: %w, output: %s", image, err, strings.TrimSpace(out))
	}
	return nil
}

// Login authenticates the docker CLI against a registry. The password is
// piped to stdin and never appears in the argument list.
func (c *Client) Login(ctx context.Context, server, username, password string) error {
	out, err := c.runner.RunWithInput(ctx, password, "docker", "login", server, "--username", username, "--password-stdin")
	if err != nil {
		return fmt.Errorf("failed to log in to %s: %w, output: %s", server, err, strings.TrimSpace(out))
	}
	return nil
}

// Push uploads the image to its registry.
func (c *Client) Push(ctx context.Context, image string) error {
	out, err := c.runner.Run(ctx, "docker", "push", image)
	if err != nil {
		return fmt.Errorf("failed to push image %s: %w, output: %s", image, err, strings.TrimSpace(out))
	}
	return nil
}

// ServerVersion reports the docker daemon version. It fails when the CLI
// cannot reach the daemon.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "docker", "version", "--format", "{{.Server.Version}}")
	if err != nil {
		return "", fmt.Errorf("failed to reach docker daemon: %w, output: %s", err, strings.TrimSpace(out))
	}
	return strings.TrimSpace(out), nil
}
