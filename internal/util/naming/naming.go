package naming

import (
	"fmt"
	"strings"
)

// Naming functions for project resources.
// All Azure resources follow consistent naming patterns so a project's
// footprint is easy to identify in the portal and in cleanup scripts.

// Azure length bounds for globally unique resource names.
const (
	StorageAccountMaxLength = 24
	RegistryMinLength       = 5
	RegistryMaxLength       = 50
)

func ResourceGroup(project string) string {
	return fmt.Sprintf("%s-rg", project)
}

func StorageAccount(project string) string {
	return Normalize(project+"stor", StorageAccountMaxLength)
}

func FileShare(project string) string {
	return fmt.Sprintf("%s-share", project)
}

func Registry(project string) string {
	return Normalize(project+"acr", RegistryMaxLength)
}

func Workspace(project string) string {
	return fmt.Sprintf("%s-logs", project)
}

func Environment(project string) string {
	return fmt.Sprintf("%s-env", project)
}

func AgentImage(project string) string {
	return fmt.Sprintf("%s-agent", project)
}

func AgentContainerGroup(project string) string {
	return fmt.Sprintf("%s-agent", project)
}

// Normalize lowercases name, strips every character outside [a-z0-9], and
// truncates the result to maxLen. Azure rejects hyphens and uppercase in
// storage account and registry names.
func Normalize(name string, maxLen int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if len(normalized) > maxLen {
		normalized = normalized[:maxLen]
	}
	return normalized
}
