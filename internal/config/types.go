package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/azcap/azcap/internal/util/naming"
)

// subscriptionRegex is compiled once at package init for subscription ID validation.
var subscriptionRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// Config is the opinionated configuration for azcap.
// Only the project name is required; every resource name and sizing knob
// derives from it unless pinned explicitly.
type Config struct {
	// Project is the project name, used to derive resource names.
	// Must be DNS-safe: lowercase alphanumeric and hyphens, must start with letter.
	Project string `yaml:"project"`

	// Location is the Azure region resources are created in.
	Location string `yaml:"location,omitempty"`

	// Subscription pins the Azure subscription ID. When empty, the CLI
	// argument, the AZURE_SUBSCRIPTION_ID environment variable, and the
	// active az session are consulted in that order.
	Subscription string `yaml:"subscription,omitempty"`

	// ResourceGroup overrides the derived {project}-rg name.
	ResourceGroup string `yaml:"resourceGroup,omitempty"`

	// Storage configures the storage account and file share.
	Storage Storage `yaml:"storage,omitempty"`

	// Registry configures the container registry.
	Registry Registry `yaml:"registry,omitempty"`

	// Workspace configures the Log Analytics workspace.
	Workspace Workspace `yaml:"workspace,omitempty"`

	// Environment configures the Container Apps environment.
	Environment Environment `yaml:"environment,omitempty"`

	// Image configures the agent image build.
	Image Image `yaml:"image,omitempty"`

	// Agent configures the build agent container instance.
	Agent Agent `yaml:"agent,omitempty"`
}

// Storage defines the storage account and file share.
type Storage struct {
	// Account overrides the derived storage account name.
	// Azure requires 3-24 lowercase alphanumeric characters.
	Account string `yaml:"account,omitempty"`

	// Share overrides the derived {project}-share file share name.
	Share string `yaml:"share,omitempty"`

	// QuotaGiB is the file share quota in GiB.
	QuotaGiB int32 `yaml:"quotaGiB,omitempty"`
}

// Registry defines the container registry.
type Registry struct {
	// Name overrides the derived registry name. The setup pipeline uses
	// it verbatim; the agent pipeline treats it as the base for the
	// availability probe.
	Name string `yaml:"name,omitempty"`
}

// Workspace defines the Log Analytics workspace.
type Workspace struct {
	// Name overrides the derived {project}-logs workspace name.
	Name string `yaml:"name,omitempty"`

	// RetentionDays is the log retention period.
	RetentionDays int32 `yaml:"retentionDays,omitempty"`
}

// Environment defines the Container Apps environment.
type Environment struct {
	// Name overrides the derived {project}-env environment name.
	Name string `yaml:"name,omitempty"`
}

// Image defines the agent image build.
type Image struct {
	// Repository overrides the derived {project}-agent repository name.
	Repository string `yaml:"repository,omitempty"`

	// Tag is the image tag to build and push.
	Tag string `yaml:"tag,omitempty"`

	// Dockerfile is the path to the agent Dockerfile.
	Dockerfile string `yaml:"dockerfile,omitempty"`

	// Context is the docker build context directory.
	Context string `yaml:"context,omitempty"`
}

// Agent defines the build agent container instance.
type Agent struct {
	// Name overrides the derived {project}-agent container group name.
	Name string `yaml:"name,omitempty"`

	// CPU is the vCPU allocation.
	CPU float64 `yaml:"cpu,omitempty"`

	// MemoryGB is the memory allocation in GB.
	MemoryGB float64 `yaml:"memoryGB,omitempty"`

	// Port is the TCP port exposed on the public address.
	Port int32 `yaml:"port,omitempty"`

	// MountPath is where the file share is mounted inside the container.
	MountPath string `yaml:"mountPath,omitempty"`
}

// Defaults applied to omitted fields.
const (
	DefaultLocation      = "eastus"
	DefaultQuotaGiB      = 100
	DefaultRetentionDays = 30
	DefaultImageTag      = "latest"
	DefaultDockerfile    = "Dockerfile.agent"
	DefaultBuildContext  = "."
	DefaultAgentCPU      = 1.0
	DefaultAgentMemoryGB = 2.0
	DefaultAgentPort     = 8080
	DefaultMountPath     = "/workspace"
)

// ApplyDefaults fills omitted fields with derived names and default sizing.
func (c *Config) ApplyDefaults() {
	if c.Location == "" {
		c.Location = DefaultLocation
	}
	if c.ResourceGroup == "" {
		c.ResourceGroup = naming.ResourceGroup(c.Project)
	}
	if c.Storage.Account == "" {
		c.Storage.Account = naming.StorageAccount(c.Project)
	}
	if c.Storage.Share == "" {
		c.Storage.Share = naming.FileShare(c.Project)
	}
	if c.Storage.QuotaGiB == 0 {
		c.Storage.QuotaGiB = DefaultQuotaGiB
	}
	if c.Registry.Name == "" {
		c.Registry.Name = naming.Registry(c.Project)
	}
	if c.Workspace.Name == "" {
		c.Workspace.Name = naming.Workspace(c.Project)
	}
	if c.Workspace.RetentionDays == 0 {
		c.Workspace.RetentionDays = DefaultRetentionDays
	}
	if c.Environment.Name == "" {
		c.Environment.Name = naming.Environment(c.Project)
	}
	if c.Image.Repository == "" {
		c.Image.Repository = naming.AgentImage(c.Project)
	}
	if c.Image.Tag == "" {
		c.Image.Tag = DefaultImageTag
	}
	if c.Image.Dockerfile == "" {
		c.Image.Dockerfile = DefaultDockerfile
	}
	if c.Image.Context == "" {
		c.Image.Context = DefaultBuildContext
	}
	if c.Agent.Name == "" {
		c.Agent.Name = naming.AgentContainerGroup(c.Project)
	}
	if c.Agent.CPU == 0 {
		c.Agent.CPU = DefaultAgentCPU
	}
	if c.Agent.MemoryGB == 0 {
		c.Agent.MemoryGB = DefaultAgentMemoryGB
	}
	if c.Agent.Port == 0 {
		c.Agent.Port = DefaultAgentPort
	}
	if c.Agent.MountPath == "" {
		c.Agent.MountPath = DefaultMountPath
	}
}

// Validate validates the configuration and returns an error if invalid.
// It expects defaults to have been applied already.
func (c *Config) Validate() error {
	var errs []error

	// Project: required, DNS-safe, long enough to derive unique names
	if c.Project == "" {
		errs = append(errs, errors.New("project is required"))
	} else if !isValidDNSName(c.Project) {
		errs = append(errs, errors.New("project must be DNS-safe (lowercase alphanumeric and hyphens, must start with letter)"))
	} else if len(naming.Normalize(c.Project, 63)) < 2 {
		errs = append(errs, errors.New("project must contain at least 2 alphanumeric characters"))
	}

	// Location: Azure region names are lowercase alphanumeric
	if !isLowerAlnum(c.Location) || len(c.Location) < 3 || len(c.Location) > 30 {
		errs = append(errs, errors.New("location must be an Azure region name (lowercase alphanumeric, e.g. eastus)"))
	}

	// Subscription: optional, must be a subscription ID when set
	if c.Subscription != "" && !subscriptionRegex.MatchString(c.Subscription) {
		errs = append(errs, errors.New("subscription must be a subscription ID (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)"))
	}

	if c.ResourceGroup == "" {
		errs = append(errs, errors.New("resourceGroup must not be empty"))
	}

	// Storage account: 3-24 lowercase alphanumeric characters
	if !isLowerAlnum(c.Storage.Account) || len(c.Storage.Account) < 3 || len(c.Storage.Account) > 24 {
		errs = append(errs, errors.New("storage.account must be 3-24 lowercase alphanumeric characters"))
	}
	if !isValidDNSName(c.Storage.Share) {
		errs = append(errs, errors.New("storage.share must be DNS-safe (lowercase alphanumeric and hyphens)"))
	}
	if c.Storage.QuotaGiB < 1 || c.Storage.QuotaGiB > 102400 {
		errs = append(errs, errors.New("storage.quotaGiB must be 1-102400"))
	}

	// Registry: Azure requires 5-50 alphanumeric characters
	if !isLowerAlnum(c.Registry.Name) || len(c.Registry.Name) < naming.RegistryMinLength || len(c.Registry.Name) > naming.RegistryMaxLength {
		errs = append(errs, fmt.Errorf("registry.name must be %d-%d lowercase alphanumeric characters",
			naming.RegistryMinLength, naming.RegistryMaxLength))
	}

	if !isValidDNSName(c.Workspace.Name) || len(c.Workspace.Name) < 4 {
		errs = append(errs, errors.New("workspace.name must be 4-63 characters (lowercase alphanumeric and hyphens)"))
	}
	if c.Workspace.RetentionDays < 7 || c.Workspace.RetentionDays > 730 {
		errs = append(errs, errors.New("workspace.retentionDays must be 7-730"))
	}

	if !isValidDNSName(c.Environment.Name) {
		errs = append(errs, errors.New("environment.name must be DNS-safe (lowercase alphanumeric and hyphens)"))
	}

	if c.Image.Repository == "" {
		errs = append(errs, errors.New("image.repository must not be empty"))
	}
	if c.Image.Tag == "" {
		errs = append(errs, errors.New("image.tag must not be empty"))
	}
	if c.Image.Dockerfile == "" {
		errs = append(errs, errors.New("image.dockerfile must not be empty"))
	}
	if c.Image.Context == "" {
		errs = append(errs, errors.New("image.context must not be empty"))
	}

	if !isValidDNSName(c.Agent.Name) {
		errs = append(errs, errors.New("agent.name must be DNS-safe (lowercase alphanumeric and hyphens)"))
	}
	if c.Agent.CPU < 0.25 || c.Agent.CPU > 4 {
		errs = append(errs, errors.New("agent.cpu must be 0.25-4"))
	}
	if c.Agent.MemoryGB < 0.5 || c.Agent.MemoryGB > 16 {
		errs = append(errs, errors.New("agent.memoryGB must be 0.5-16"))
	}
	if c.Agent.Port < 1 || c.Agent.Port > 65535 {
		errs = append(errs, errors.New("agent.port must be 1-65535"))
	}
	if !strings.HasPrefix(c.Agent.MountPath, "/") {
		errs = append(errs, errors.New("agent.mountPath must be an absolute path"))
	}

	return errors.Join(errs...)
}

// ImageRef returns the fully qualified image reference for a registry
// login server.
func (c *Config) ImageRef(loginServer string) string {
	return fmt.Sprintf("%s/%s:%s", loginServer, c.Image.Repository, c.Image.Tag)
}

// isValidDNSName checks if a string is a valid DNS name.
// Must be lowercase, alphanumeric with hyphens, start with a letter, max 63 chars.
func isValidDNSName(name string) bool {
	if len(name) == 0 || len(name) > 63 {
		return false
	}
	// Must start with lowercase letter
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	// Must end with lowercase letter or digit
	last := name[len(name)-1]
	if (last < 'a' || last > 'z') && (last < '0' || last > '9') {
		return false
	}
	// Must contain only lowercase letters, digits, and hyphens
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	// Must not have consecutive hyphens
	if strings.Contains(name, "--") {
		return false
	}
	return true
}

// isLowerAlnum checks if a string contains only lowercase letters and digits.
func isLowerAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
