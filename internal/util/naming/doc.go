// Package naming provides consistent naming functions for Azure resources.
//
// Grouped resources (resource groups, file shares, workspaces, Container
// Apps environments) follow the pattern {project}-{type}. Globally unique
// resources (storage accounts, container registries) use a normalized
// lowercase alphanumeric form; [Resolve] probes attempt-derived candidates
// until the provider reports one as available.
package naming
