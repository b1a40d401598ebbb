package azure

import (
	"context"
	"fmt"
)

// RegisterProvider issues a registration request for a resource provider
// namespace. ARM treats registration as idempotent; re-registering an
// already registered namespace succeeds immediately.
func (c *RealClient) RegisterProvider(ctx context.Context, namespace string) error {
	if _, err := c.providers.Register(ctx, namespace, nil); err != nil {
		return fmt.Errorf("registering provider %s: %w", namespace, err)
	}
	return nil
}

// ProviderRegistrationState returns the current registration state of a
// namespace, e.g. "Registered", "Registering", or "NotRegistered".
func (c *RealClient) ProviderRegistrationState(ctx context.Context, namespace string) (string, error) {
	resp, err := c.providers.Get(ctx, namespace, nil)
	if err != nil {
		return "", fmt.Errorf("reading provider %s: %w", namespace, err)
	}
	if resp.RegistrationState == nil {
		return "", nil
	}
	return *resp.RegistrationState, nil
}
