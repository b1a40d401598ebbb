// Package provisioning provides shared types, interfaces, and orchestration
// for provisioning Azure infrastructure.
//
// # Phases
//
//   - validation.go — pre-flight configuration checks
//   - providers.go — resource provider registration
//   - resource_group.go — resource group
//   - storage.go — storage account, access key, file share
//   - registry.go — container registry, optional name probe, credentials
//   - workspace.go — Log Analytics workspace and shared key
//   - environment.go — Container Apps managed environment
//   - image.go — agent image build, login, push with retry
//   - instance.go — agent container group deployment
//   - address.go — public address wait
//
// # Core Types
//
// Context carries configuration, state, platform clients, and the observer.
// Phase defines a provisioning step with Name() and Provision() methods.
// State accumulates results from each phase (resource names, keys,
// credentials, the agent address) for later phases and the final summary.
// Pipeline runs phases sequentially and stops at the first failure; already
// provisioned resources are left in place.
package provisioning
