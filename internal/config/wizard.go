package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	Project  string
	Location string
	AgentCPU float64
	QuotaGiB int32
	Registry string
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Location: DefaultLocation,
		AgentCPU: DefaultAgentCPU,
		QuotaGiB: DefaultQuotaGiB,
	}

	// Build the form
	form := huh.NewForm(
		// Project identity
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("A unique name for your project (DNS-safe, lowercase)").
				Placeholder("my-project").
				Value(&result.Project).
				Validate(validateProjectName),
		),

		// Region selection
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Location").
				Description("Azure region for all resources").
				Options(
					huh.NewOption("East US (eastus)", "eastus"),
					huh.NewOption("East US 2 (eastus2)", "eastus2"),
					huh.NewOption("West US 2 (westus2)", "westus2"),
					huh.NewOption("West Europe (westeurope)", "westeurope"),
					huh.NewOption("North Europe (northeurope)", "northeurope"),
					huh.NewOption("UK South (uksouth)", "uksouth"),
					huh.NewOption("Southeast Asia (southeastasia)", "southeastasia"),
				).
				Value(&result.Location),
		),

		// Agent sizing
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Agent size").
				Description("vCPU allocation for the build agent (memory scales at 2GB per vCPU)").
				Options(
					huh.NewOption("0.5 vCPU, 1GB RAM", 0.5),
					huh.NewOption("1 vCPU, 2GB RAM", 1.0),
					huh.NewOption("2 vCPU, 4GB RAM", 2.0),
					huh.NewOption("4 vCPU, 8GB RAM", 4.0),
				).
				Value(&result.AgentCPU),

			huh.NewSelect[int32]().
				Title("Workspace share quota").
				Description("Azure Files quota mounted at /workspace").
				Options(
					huh.NewOption("50 GiB", int32(50)),
					huh.NewOption("100 GiB", int32(100)),
					huh.NewOption("500 GiB", int32(500)),
					huh.NewOption("1 TiB", int32(1024)),
				).
				Value(&result.QuotaGiB),
		),

		// Optional registry override
		huh.NewGroup(
			huh.NewInput().
				Title("Registry name (optional)").
				Description("Globally unique ACR name. Leave empty to derive from the project.").
				Placeholder("myprojectacr").
				Value(&result.Registry).
				Validate(validateRegistryName),
		),
	)

	// Run the form
	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config with defaults applied.
// The project name is lowercased to match what the validator accepted.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		Project:  strings.ToLower(r.Project),
		Location: r.Location,
		Storage: Storage{
			QuotaGiB: r.QuotaGiB,
		},
		Registry: Registry{
			Name: r.Registry,
		},
		Agent: Agent{
			CPU:      r.AgentCPU,
			MemoryGB: r.AgentCPU * 2,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// validateProjectName validates the project name.
func validateProjectName(s string) error {
	if s == "" {
		return fmt.Errorf("project name is required")
	}
	s = strings.ToLower(s)
	if len(s) > 63 {
		return fmt.Errorf("project name must be 63 characters or less")
	}
	// Basic DNS-safe validation
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return fmt.Errorf("project name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return fmt.Errorf("project name cannot start or end with a hyphen")
	}
	return nil
}

// validateRegistryName validates the optional registry override.
func validateRegistryName(s string) error {
	if s == "" {
		return nil // Optional
	}
	if len(s) < 5 || len(s) > 50 {
		return fmt.Errorf("registry name must be 5-50 characters")
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
			return fmt.Errorf("registry name can only contain lowercase letters and numbers")
		}
	}
	return nil
}
