package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/azcap/azcap/internal/provisioning"
)

// Agent builds the agent container image and provisions it as an Azure
// Container Instances container group with the project file share mounted
// and a public address on the configured port.
func Agent(ctx context.Context, configPath, subscriptionArg string, redact bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := resolveSubscription(ctx, cfg, subscriptionArg); err != nil {
		return err
	}

	if err := checkAgentPrereqs().Error(); err != nil {
		return err
	}

	infra, err := newInfraClient(cfg.Subscription)
	if err != nil {
		return fmt.Errorf("failed to create azure client: %w", err)
	}

	log.Printf("Provisioning build agent for project %q in %s (subscription %s)", cfg.Project, cfg.Location, cfg.Subscription)

	pctx := provisioning.NewContext(ctx, cfg, infra, newImageBuilder())
	pipeline := provisioning.NewPipeline(provisioning.AgentPhases()...)
	if err := pipeline.Run(pctx); err != nil {
		return err
	}

	printAgentSummary(cfg, pctx.State, redact)
	return nil
}
