// Package poll provides fixed-interval polling with a bounded time budget.
//
// The [Until] function probes a condition at a fixed interval until it
// holds, the timeout budget is spent, or the context is cancelled. It is
// used to wait for provider registrations and container addresses that
// converge asynchronously after a provisioning call returns.
package poll

import (
	"context"
	"fmt"
	"time"
)

// Probe reports whether the awaited condition holds, plus the observed
// status text. A non-nil error counts as an unmet condition and its text
// becomes the observed status, so transient lookup failures do not abort
// the wait.
type Probe func(ctx context.Context) (done bool, status string, err error)

// Config holds polling configuration.
type Config struct {
	Timeout  time.Duration
	Interval time.Duration
	Sleep    SleepFunc
}

// SleepFunc waits between probes. Tests substitute a fake to avoid real
// sleeps.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option is a functional option for polling configuration.
type Option func(*Config)

// TimeoutError reports an exhausted polling budget along with the last
// status the probe observed.
type TimeoutError struct {
	Target     string
	Timeout    time.Duration
	LastStatus string
}

func (e *TimeoutError) Error() string {
	if e.LastStatus == "" {
		return fmt.Sprintf("timed out after %v waiting for %s", e.Timeout, e.Target)
	}
	return fmt.Sprintf("timed out after %v waiting for %s (last status: %s)", e.Timeout, e.Target, e.LastStatus)
}

// Until probes the target condition at a fixed interval until it holds.
// The probe count is bounded by the budget: once waiting one more interval
// would exceed the timeout, Until gives up and returns a [TimeoutError]
// carrying the last observed status.
func Until(ctx context.Context, target string, probe Probe, opts ...Option) error {
	cfg := &Config{
		Timeout:  2 * time.Minute,
		Interval: 5 * time.Second,
		Sleep:    sleepContext,
	}

	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}

	var lastStatus string

	for elapsed := time.Duration(0); ; elapsed += cfg.Interval {
		done, status, err := probe(ctx)
		if err != nil {
			status = err.Error()
		}
		if status != "" {
			lastStatus = status
		}
		if done && err == nil {
			return nil
		}

		if elapsed+cfg.Interval > cfg.Timeout {
			return &TimeoutError{Target: target, Timeout: cfg.Timeout, LastStatus: lastStatus}
		}

		if err := cfg.Sleep(ctx, cfg.Interval); err != nil {
			return fmt.Errorf("context cancelled waiting for %s: %w", target, err)
		}
	}
}

// WithTimeout sets the total polling budget.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithInterval sets the delay between probes.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// WithSleep replaces the function that waits between probes.
func WithSleep(sleep SleepFunc) Option {
	return func(c *Config) {
		c.Sleep = sleep
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
