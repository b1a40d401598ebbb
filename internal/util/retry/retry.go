// Package retry provides fixed-delay retry logic for flaky operations.
//
// The [Do] function runs an operation up to a configured attempt budget,
// sleeping a fixed delay between attempts. It is used for registry pushes
// and other operations that fail transiently right after a resource is
// provisioned.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds retry configuration.
type Config struct {
	Attempts int
	Delay    time.Duration
	Sleep    SleepFunc
}

// SleepFunc waits out the delay between attempts. Tests substitute a fake
// to avoid real sleeps.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option is a functional option for retry configuration.
type Option func(*Config)

// Do executes the operation up to the configured number of attempts, with a
// fixed delay between them. Context cancellation is respected while waiting.
//
// Errors wrapped with Fatal() are not retried.
func Do(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &Config{
		Attempts: 3,
		Delay:    10 * time.Second,
		Sleep:    sleepContext,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	var lastErr error

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// Check if error is fatal (non-retryable)
		if IsFatal(err) {
			return fmt.Errorf("fatal error (not retrying): %w", err)
		}

		if attempt < cfg.Attempts {
			if err := cfg.Sleep(ctx, cfg.Delay); err != nil {
				return fmt.Errorf("context cancelled after %d attempts: %w", attempt, err)
			}
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", cfg.Attempts, lastErr)
}

// WithAttempts sets the total attempt budget.
func WithAttempts(n int) Option {
	return func(c *Config) {
		c.Attempts = n
	}
}

// WithDelay sets the fixed delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *Config) {
		c.Delay = d
	}
}

// WithSleep replaces the function that waits between attempts.
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

// FatalError wraps an error to mark it as fatal (non-retryable).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal (non-retryable).
// Operations that encounter fatal errors will not be retried.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal checks if an error is fatal (non-retryable).
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
