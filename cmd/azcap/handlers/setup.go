// Package handlers contains the business logic for CLI commands.
//
// Handlers are framework-agnostic functions that implement command behavior.
// They use factory function variables for dependency injection, enabling
// comprehensive unit testing without an Azure subscription or a docker
// daemon.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/azcap/azcap/internal/config"
	"github.com/azcap/azcap/internal/platform/azure"
	"github.com/azcap/azcap/internal/platform/docker"
	"github.com/azcap/azcap/internal/provisioning"
	"github.com/azcap/azcap/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newInfraClient creates the Azure infrastructure client for a subscription.
	newInfraClient = func(subscriptionID string) (azure.InfrastructureManager, error) {
		return azure.NewRealClient(subscriptionID)
	}

	// newImageBuilder creates the docker CLI client that builds and pushes
	// the agent image.
	newImageBuilder = func() provisioning.ImageBuilder {
		return docker.NewClient()
	}

	// checkDefaultPrereqs verifies the tools setup needs.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// checkAgentPrereqs verifies the tools the agent build needs.
	checkAgentPrereqs = prerequisites.CheckForAgentBuild

	// loadConfigFile loads the configuration from an explicit path.
	loadConfigFile = config.Load

	// findConfigFile locates azcap.yaml in the working directory.
	findConfigFile = config.FindConfigFile

	// currentSubscription reads the subscription ID from the active az session.
	currentSubscription = azure.CurrentSubscription

	// lookupEnv reads an environment variable.
	lookupEnv = os.LookupEnv
)

// Setup provisions the core project infrastructure: resource providers,
// resource group, storage account and file share, container registry,
// Log Analytics workspace, and the Container Apps managed environment.
func Setup(ctx context.Context, configPath, subscriptionArg string, redact bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := resolveSubscription(ctx, cfg, subscriptionArg); err != nil {
		return err
	}

	if err := checkDefaultPrereqs().Error(); err != nil {
		return err
	}

	infra, err := newInfraClient(cfg.Subscription)
	if err != nil {
		return fmt.Errorf("failed to create azure client: %w", err)
	}

	log.Printf("Provisioning project %q in %s (subscription %s)", cfg.Project, cfg.Location, cfg.Subscription)

	pctx := provisioning.NewContext(ctx, cfg, infra, nil)
	pipeline := provisioning.NewPipeline(provisioning.SetupPhases()...)
	if err := pipeline.Run(pctx); err != nil {
		return err
	}

	printSetupSummary(cfg, pctx.State, redact)
	return nil
}

// loadConfig loads the configuration from the given path, falling back to
// azcap.yaml in the working directory when the path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w (run 'azcap init' to create one)", err)
		}
		path = found
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveSubscription fills cfg.Subscription from the positional argument,
// the config file, the AZURE_SUBSCRIPTION_ID environment variable, or the
// active az session, in that order.
func resolveSubscription(ctx context.Context, cfg *config.Config, arg string) error {
	if arg != "" {
		cfg.Subscription = arg
		return nil
	}
	if cfg.Subscription != "" {
		return nil
	}
	if id, ok := lookupEnv("AZURE_SUBSCRIPTION_ID"); ok && id != "" {
		cfg.Subscription = id
		return nil
	}

	id, err := currentSubscription(ctx)
	if err != nil {
		return fmt.Errorf("no subscription ID given and none could be resolved: %w", err)
	}
	cfg.Subscription = id
	return nil
}
