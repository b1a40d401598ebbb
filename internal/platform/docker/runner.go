package docker

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner is an interface for executing commands and getting the output/error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	// RunWithInput runs a command with the given string piped to stdin.
	RunWithInput(ctx context.Context, input, name string, args ...string) (string, error)
}

// DefaultRunner runs commands with os/exec. Combined output is streamed to
// stderr as the command produces it and captured for error reporting.
type DefaultRunner struct{}

var _ Runner = &DefaultRunner{}

func (d *DefaultRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	return d.run(ctx, nil, name, args...)
}

func (d *DefaultRunner) RunWithInput(ctx context.Context, input, name string, args ...string) (string, error) {
	return d.run(ctx, strings.NewReader(input), name, args...)
}

func (d *DefaultRunner) run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error) {
	var buf bytes.Buffer
	out := io.MultiWriter(&buf, os.Stderr)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	return buf.String(), err
}
