package config

import (
	"strings"
	"testing"
)

// validConfig returns a minimal config with defaults applied.
func validConfig() *Config {
	cfg := &Config{Project: "research"}
	cfg.ApplyDefaults()
	return cfg
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()
	cfg := validConfig()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Location", cfg.Location, "eastus"},
		{"ResourceGroup", cfg.ResourceGroup, "research-rg"},
		{"Storage.Account", cfg.Storage.Account, "researchstor"},
		{"Storage.Share", cfg.Storage.Share, "research-share"},
		{"Registry.Name", cfg.Registry.Name, "researchacr"},
		{"Workspace.Name", cfg.Workspace.Name, "research-logs"},
		{"Environment.Name", cfg.Environment.Name, "research-env"},
		{"Image.Repository", cfg.Image.Repository, "research-agent"},
		{"Image.Tag", cfg.Image.Tag, "latest"},
		{"Image.Dockerfile", cfg.Image.Dockerfile, "Dockerfile.agent"},
		{"Image.Context", cfg.Image.Context, "."},
		{"Agent.Name", cfg.Agent.Name, "research-agent"},
		{"Agent.MountPath", cfg.Agent.MountPath, "/workspace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if cfg.Storage.QuotaGiB != 100 {
		t.Errorf("Storage.QuotaGiB = %d, want 100", cfg.Storage.QuotaGiB)
	}
	if cfg.Workspace.RetentionDays != 30 {
		t.Errorf("Workspace.RetentionDays = %d, want 30", cfg.Workspace.RetentionDays)
	}
	if cfg.Agent.CPU != 1.0 {
		t.Errorf("Agent.CPU = %v, want 1.0", cfg.Agent.CPU)
	}
	if cfg.Agent.MemoryGB != 2.0 {
		t.Errorf("Agent.MemoryGB = %v, want 2.0", cfg.Agent.MemoryGB)
	}
	if cfg.Agent.Port != 8080 {
		t.Errorf("Agent.Port = %d, want 8080", cfg.Agent.Port)
	}
}

func TestConfig_ApplyDefaults_PreservesOverrides(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		Project:       "research",
		Location:      "westeurope",
		ResourceGroup: "custom-rg",
		Storage:       Storage{Account: "customstor", QuotaGiB: 50},
		Registry:      Registry{Name: "customacr"},
	}
	cfg.ApplyDefaults()

	if cfg.Location != "westeurope" {
		t.Errorf("Location = %q, want the override preserved", cfg.Location)
	}
	if cfg.ResourceGroup != "custom-rg" {
		t.Errorf("ResourceGroup = %q, want the override preserved", cfg.ResourceGroup)
	}
	if cfg.Storage.Account != "customstor" {
		t.Errorf("Storage.Account = %q, want the override preserved", cfg.Storage.Account)
	}
	if cfg.Storage.QuotaGiB != 50 {
		t.Errorf("Storage.QuotaGiB = %d, want the override preserved", cfg.Storage.QuotaGiB)
	}
	if cfg.Registry.Name != "customacr" {
		t.Errorf("Registry.Name = %q, want the override preserved", cfg.Registry.Name)
	}
	// Untouched fields still default
	if cfg.Storage.Share != "research-share" {
		t.Errorf("Storage.Share = %q, want the derived default", cfg.Storage.Share)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() on a default config = %v, want nil", err)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing project", func(c *Config) { c.Project = "" }, "project is required"},
		{"uppercase project", func(c *Config) { c.Project = "Research" }, "DNS-safe"},
		{"project starts with digit", func(c *Config) { c.Project = "1research" }, "DNS-safe"},
		{"single char project", func(c *Config) { c.Project = "a" }, "at least 2 alphanumeric"},
		{"bad location", func(c *Config) { c.Location = "East US" }, "location"},
		{"bad subscription", func(c *Config) { c.Subscription = "not-a-uuid" }, "subscription"},
		{"empty resource group", func(c *Config) { c.ResourceGroup = "" }, "resourceGroup"},
		{"short storage account", func(c *Config) { c.Storage.Account = "ab" }, "storage.account"},
		{"hyphenated storage account", func(c *Config) { c.Storage.Account = "my-stor" }, "storage.account"},
		{"long storage account", func(c *Config) { c.Storage.Account = strings.Repeat("a", 25) }, "storage.account"},
		{"zero quota", func(c *Config) { c.Storage.QuotaGiB = 0 }, "quotaGiB"},
		{"short registry", func(c *Config) { c.Registry.Name = "abcd" }, "registry.name"},
		{"hyphenated registry", func(c *Config) { c.Registry.Name = "my-acr" }, "registry.name"},
		{"short workspace", func(c *Config) { c.Workspace.Name = "abc" }, "workspace.name"},
		{"low retention", func(c *Config) { c.Workspace.RetentionDays = 3 }, "retentionDays"},
		{"high retention", func(c *Config) { c.Workspace.RetentionDays = 1000 }, "retentionDays"},
		{"empty tag", func(c *Config) { c.Image.Tag = "" }, "image.tag"},
		{"zero cpu", func(c *Config) { c.Agent.CPU = 0 }, "agent.cpu"},
		{"oversized memory", func(c *Config) { c.Agent.MemoryGB = 64 }, "agent.memoryGB"},
		{"bad port", func(c *Config) { c.Agent.Port = 70000 }, "agent.port"},
		{"relative mount path", func(c *Config) { c.Agent.MountPath = "workspace" }, "mountPath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_ValidSubscription(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Subscription = "12345678-1234-1234-1234-123456789abc"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for a well-formed subscription ID", err)
	}
}

func TestConfig_ImageRef(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	got := cfg.ImageRef("researchacr.azurecr.io")
	want := "researchacr.azurecr.io/research-agent:latest"
	if got != want {
		t.Errorf("ImageRef() = %q, want %q", got, want)
	}
}

func TestIsValidDNSName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "research", true},
		{"with hyphen", "my-project", true},
		{"with digits", "proj123", true},
		{"empty", "", false},
		{"uppercase", "Research", false},
		{"leading digit", "1project", false},
		{"trailing hyphen", "project-", false},
		{"double hyphen", "my--project", false},
		{"underscore", "my_project", false},
		{"too long", strings.Repeat("a", 64), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isValidDNSName(tt.input); got != tt.want {
				t.Errorf("isValidDNSName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
