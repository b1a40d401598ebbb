// Package azure provides a wrapper around the Azure Resource Manager API
// with narrow per-concern interfaces, error classification, and a mock
// client for tests.
//
// # Architecture
//
// The package is organized into domain-specific modules:
//
//   - client.go: Interfaces and result types shared by real and mock clients
//   - real_client.go: ARM client initialization and configuration
//   - providers.go: Resource provider registration
//   - resource_group.go: Resource group management
//   - storage.go: Storage accounts, access keys, and file shares
//   - registry.go: Container registries, name availability, and credentials
//   - workspace.go: Log Analytics workspaces and shared keys
//   - environment.go: Container Apps managed environments
//   - instance.go: Container instance groups
//   - azcli.go: Active az session lookup for subscription resolution
//   - errors.go: Error classification for ARM response errors
//   - mock_client.go: Configurable fake for tests
//
// All Ensure operations lean on ARM's idempotent create-or-update
// semantics: re-running them against existing resources succeeds and
// leaves matching resources in place.
package azure
