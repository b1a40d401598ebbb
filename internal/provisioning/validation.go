package provisioning

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents a configuration validation error or warning.
type ValidationError struct {
	Field    string // Configuration field that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}

// ValidationPhase implements the Phase interface for pre-flight validation.
// It runs before any Azure call is made.
type ValidationPhase struct {
	// CheckAgentInputs additionally verifies the local build inputs and
	// agent sizing used by the agent pipeline.
	CheckAgentInputs bool
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	ctx.Observer.Printf("[validation] Running pre-flight validation...")

	all := vp.validate(ctx)

	// Separate errors and warnings
	var errors []ValidationError
	var warnings []ValidationError
	for _, ve := range all {
		if ve.IsError() {
			errors = append(errors, ve)
		} else {
			warnings = append(warnings, ve)
		}
	}

	for _, warning := range warnings {
		ctx.Observer.Event(Event{
			Type:    EventValidationWarning,
			Phase:   vp.Name(),
			Message: warning.Message,
			Fields:  map[string]string{"field": warning.Field},
		})
	}

	if len(errors) > 0 {
		var errMsgs []string
		for _, e := range errors {
			ctx.Observer.Event(Event{
				Type:    EventValidationError,
				Phase:   vp.Name(),
				Message: e.Message,
				Fields:  map[string]string{"field": e.Field},
			})
			errMsgs = append(errMsgs, e.Error())
		}
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errMsgs, "\n  "))
	}

	ctx.Observer.Printf("[validation] Validation passed")
	return nil
}

// validate runs all validation checks and returns any errors or warnings.
func (vp *ValidationPhase) validate(ctx *Context) []ValidationError {
	var errs []ValidationError
	cfg := ctx.Config

	// --- Required fields ---

	if cfg.Subscription == "" {
		errs = append(errs, ValidationError{
			Field:    "Subscription",
			Message:  "subscription ID is required (pass one as an argument or run 'az login')",
			Severity: "error",
		})
	}

	if cfg.Project == "" {
		errs = append(errs, ValidationError{
			Field:    "Project",
			Message:  "project name is required",
			Severity: "error",
		})
	}

	if cfg.Location == "" {
		errs = append(errs, ValidationError{
			Field:    "Location",
			Message:  "location is required (e.g., 'eastus', 'westeurope')",
			Severity: "error",
		})
	}

	// --- Derived resource names ---

	names := []struct {
		field string
		value string
	}{
		{"ResourceGroup", cfg.ResourceGroup},
		{"Storage.Account", cfg.Storage.Account},
		{"Storage.Share", cfg.Storage.Share},
		{"Registry.Name", cfg.Registry.Name},
		{"Workspace.Name", cfg.Workspace.Name},
		{"Environment.Name", cfg.Environment.Name},
	}
	for _, n := range names {
		if n.value == "" {
			errs = append(errs, ValidationError{
				Field:    n.field,
				Message:  "resource name is empty",
				Severity: "error",
			})
		}
	}

	// --- Agent pipeline inputs ---

	if vp.CheckAgentInputs {
		if cfg.Agent.Name == "" {
			errs = append(errs, ValidationError{
				Field:    "Agent.Name",
				Message:  "agent name is required",
				Severity: "error",
			})
		}

		if _, err := os.Stat(cfg.Image.Dockerfile); err != nil {
			errs = append(errs, ValidationError{
				Field:    "Image.Dockerfile",
				Message:  fmt.Sprintf("dockerfile %s not found", cfg.Image.Dockerfile),
				Severity: "error",
			})
		}

		if info, err := os.Stat(cfg.Image.Context); err != nil || !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:    "Image.Context",
				Message:  fmt.Sprintf("build context %s is not a directory", cfg.Image.Context),
				Severity: "error",
			})
		}

		if cfg.Agent.MemoryGB != cfg.Agent.CPU*2 {
			errs = append(errs, ValidationError{
				Field:    "Agent.MemoryGB",
				Message:  "memory is not 2 GB per vCPU; ACI may reject unusual ratios",
				Severity: "warning",
			})
		}
	}

	return errs
}
