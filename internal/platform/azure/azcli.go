package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Account describes the active Azure CLI session as reported by
// `az account show`.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TenantID string `json:"tenantId"`
	User     struct {
		Name string `json:"name"`
	} `json:"user"`
}

// CurrentAccount reads the active az session. It fails when the CLI is
// missing or no user is logged in.
func CurrentAccount(ctx context.Context) (*Account, error) {
	cmd := exec.CommandContext(ctx, "az", "account", "show", "--output", "json")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("reading active az session (run 'az login'): %w", err)
	}

	var account Account
	if err := json.Unmarshal(out, &account); err != nil {
		return nil, fmt.Errorf("parsing az account output: %w", err)
	}
	if strings.TrimSpace(account.ID) == "" {
		return nil, fmt.Errorf("active az session has no subscription (run 'az account set')")
	}
	return &account, nil
}

// CurrentSubscription returns the subscription ID of the active az session.
func CurrentSubscription(ctx context.Context) (string, error) {
	account, err := CurrentAccount(ctx)
	if err != nil {
		return "", err
	}
	return account.ID, nil
}
