package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	ProviderRegister     time.Duration // Budget for provider registration polling
	ProviderPollInterval time.Duration // Delay between provider registration probes
	AddressWait          time.Duration // Budget for container address polling
	AddressPollInterval  time.Duration // Delay between container address probes
	PushAttempts         int           // Attempt budget for registry pushes
	PushDelay            time.Duration // Fixed delay between push attempts
	NameAttempts         int           // Candidate budget for the registry name probe
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - AZCAP_TIMEOUT_PROVIDER_REGISTER (default: 2m)
//   - AZCAP_INTERVAL_PROVIDER_REGISTER (default: 5s)
//   - AZCAP_TIMEOUT_ADDRESS (default: 3m)
//   - AZCAP_INTERVAL_ADDRESS (default: 5s)
//   - AZCAP_PUSH_ATTEMPTS (default: 3)
//   - AZCAP_PUSH_DELAY (default: 10s)
//   - AZCAP_NAME_ATTEMPTS (default: 12)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		ProviderRegister:     parseDuration("AZCAP_TIMEOUT_PROVIDER_REGISTER", 2*time.Minute),
		ProviderPollInterval: parseDuration("AZCAP_INTERVAL_PROVIDER_REGISTER", 5*time.Second),
		AddressWait:          parseDuration("AZCAP_TIMEOUT_ADDRESS", 3*time.Minute),
		AddressPollInterval:  parseDuration("AZCAP_INTERVAL_ADDRESS", 5*time.Second),
		PushAttempts:         parseInt("AZCAP_PUSH_ATTEMPTS", 3),
		PushDelay:            parseDuration("AZCAP_PUSH_DELAY", 10*time.Second),
		NameAttempts:         parseInt("AZCAP_NAME_ATTEMPTS", 12),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
