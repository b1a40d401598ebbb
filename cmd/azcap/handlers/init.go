package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/azcap/azcap/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfigFile writes the config to a file.
	writeConfigFile = config.Save
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()

	if err := writeConfigFile(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("azcap - Azure infrastructure for containerized projects")
	fmt.Println("========================================================")
	fmt.Println()
	fmt.Println("This wizard creates a project configuration with sensible defaults.")
	fmt.Println("Just answer a few questions; every resource name derives from the")
	fmt.Println("project name unless you pin it in the generated file.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Project Summary")
	fmt.Println("---------------")
	fmt.Printf("  Project:         %s\n", cfg.Project)
	fmt.Printf("  Location:        %s\n", cfg.Location)
	fmt.Printf("  Resource group:  %s\n", cfg.ResourceGroup)
	fmt.Printf("  Storage account: %s\n", cfg.Storage.Account)
	fmt.Printf("  File share:      %s (%d GiB)\n", cfg.Storage.Share, cfg.Storage.QuotaGiB)
	fmt.Printf("  Registry:        %s\n", cfg.Registry.Name)
	fmt.Printf("  Workspace:       %s\n", cfg.Workspace.Name)
	fmt.Printf("  Environment:     %s\n", cfg.Environment.Name)
	fmt.Printf("  Agent:           %s (%.1f vCPU, %.1f GB)\n", cfg.Agent.Name, cfg.Agent.CPU, cfg.Agent.MemoryGB)
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Sign in to Azure:")
	fmt.Println("     az login")
	fmt.Println()
	fmt.Printf("  2. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Provision the project infrastructure:")
	fmt.Println("     azcap setup")
	fmt.Println()
	fmt.Println("  4. Build and deploy the build agent:")
	fmt.Println("     azcap agent")
	fmt.Println()
}
