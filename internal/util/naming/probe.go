package naming

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// DefaultResolveAttempts bounds the generate-and-check loop in Resolve.
const DefaultResolveAttempts = 12

// fallbackStem seeds candidate generation when normalization strips a base
// name down to nothing.
const fallbackStem = "acr"

// AvailabilityFunc reports whether a globally unique name is still free.
type AvailabilityFunc func(ctx context.Context, name string) (bool, error)

// ResolveConfig holds candidate generation parameters for Resolve.
type ResolveConfig struct {
	Attempts int
	Rand     *rand.Rand
}

// ResolveOption modifies the resolve configuration.
type ResolveOption func(*ResolveConfig)

// WithAttempts sets the candidate budget.
func WithAttempts(attempts int) ResolveOption {
	return func(c *ResolveConfig) {
		c.Attempts = attempts
	}
}

// WithRand sets the suffix source, letting tests generate deterministic
// candidates.
func WithRand(rng *rand.Rand) ResolveOption {
	return func(c *ResolveConfig) {
		c.Rand = rng
	}
}

// Candidate returns the registry name candidate for a one-based attempt.
// Attempt 1 is the normalized base verbatim. Later attempts append a random
// suffix prefixed with the attempt number, re-truncating the base so the
// result stays within RegistryMaxLength. The attempt prefix guarantees
// candidates never repeat across attempts.
func Candidate(base string, attempt int, rng *rand.Rand) string {
	name := Normalize(base, RegistryMaxLength)
	if name == "" {
		name = fallbackStem
	}
	if attempt <= 1 {
		return name
	}
	suffix := fmt.Sprintf("%d%05d", attempt, rng.Intn(100000))
	if len(name)+len(suffix) > RegistryMaxLength {
		name = name[:RegistryMaxLength-len(suffix)]
	}
	return name + suffix
}

// Resolve probes candidates derived from base until available reports one as
// free and returns it. It fails when the availability check itself errors or
// once the attempt budget is exhausted.
func Resolve(ctx context.Context, base string, available AvailabilityFunc, opts ...ResolveOption) (string, error) {
	cfg := ResolveConfig{
		Attempts: DefaultResolveAttempts,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		candidate := Candidate(base, attempt, cfg.Rand)
		free, err := available(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking availability of %q: %w", candidate, err)
		}
		if free {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no available name derived from %q after %d attempts", base, cfg.Attempts)
}
