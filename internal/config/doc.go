// Package config provides the opinionated azcap configuration schema.
//
// Users specify only the project name and the package derives every
// resource name (resource group, storage account, registry, workspace,
// environment, agent) from it via [Config.ApplyDefaults]. Any derived
// value can be pinned explicitly in azcap.yaml.
//
// The schema enforces Azure naming rules (lowercase alphanumeric storage
// and registry names, length bounds) and validates all fields before a
// pipeline runs.
package config
