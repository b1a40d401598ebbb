package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/azcap/azcap/internal/config"
	"github.com/azcap/azcap/internal/provisioning"
)

// redactedValue replaces secret values when --redact is set.
const redactedValue = "********"

// summaryEntry is one name/value line in the final summary block.
type summaryEntry struct {
	Section string
	Name    string
	Value   string
	Secret  bool
}

// printSetupSummary writes the setup results to stdout, including the
// generated credentials that deploy tooling consumes. Status lines go to
// stderr, so the summary block is the only thing on stdout.
func printSetupSummary(cfg *config.Config, state *provisioning.State, redact bool) {
	warnSecrets(redact)

	entries := []summaryEntry{
		{Section: "Resources", Name: "resource group", Value: state.ResourceGroup},
		{Section: "Resources", Name: "location", Value: cfg.Location},
		{Section: "Resources", Name: "storage account", Value: state.StorageAccount},
		{Section: "Resources", Name: "file share", Value: state.FileShare},
		{Section: "Resources", Name: "registry", Value: state.RegistryServer},
		{Section: "Resources", Name: "workspace", Value: cfg.Workspace.Name},
		{Section: "Resources", Name: "environment", Value: cfg.Environment.Name},
		{Section: "Environment", Name: "default domain", Value: state.EnvironmentDomain},
		{Section: "Environment", Name: "static IP", Value: state.EnvironmentStaticIP},
		{Section: "Credentials", Name: "storage key", Value: state.StorageKey, Secret: true},
		{Section: "Credentials", Name: "registry username", Value: state.RegistryUsername},
		{Section: "Credentials", Name: "registry password", Value: state.RegistryPassword, Secret: true},
		{Section: "Credentials", Name: "workspace customer", Value: state.WorkspaceCustomerID},
		{Section: "Credentials", Name: "workspace key", Value: state.WorkspaceSharedKey, Secret: true},
	}

	printSummary(fmt.Sprintf("azcap setup: %s", cfg.Project), entries, redact)

	fmt.Println("Next steps")
	fmt.Println("----------")
	fmt.Println("  1. Deploy an app into the environment:")
	fmt.Printf("     az containerapp create --resource-group %s --environment %s --image <image>\n", state.ResourceGroup, cfg.Environment.Name)
	fmt.Println()
	fmt.Println("  2. Deploy the project build agent:")
	fmt.Println("     azcap agent")
	fmt.Println()
}

// printAgentSummary writes the agent connection details to stdout.
func printAgentSummary(cfg *config.Config, state *provisioning.State, redact bool) {
	warnSecrets(redact)

	entries := []summaryEntry{
		{Section: "Agent", Name: "address", Value: fmt.Sprintf("%s:%d", state.AgentAddress, cfg.Agent.Port)},
		{Section: "Agent", Name: "container group", Value: cfg.Agent.Name},
		{Section: "Agent", Name: "image", Value: state.ImageRef},
		{Section: "Workspace volume", Name: "file share", Value: state.FileShare},
		{Section: "Workspace volume", Name: "mount path", Value: cfg.Agent.MountPath},
		{Section: "Registry", Name: "server", Value: state.RegistryServer},
		{Section: "Registry", Name: "username", Value: state.RegistryUsername},
		{Section: "Registry", Name: "password", Value: state.RegistryPassword, Secret: true},
		{Section: "Storage", Name: "account", Value: state.StorageAccount},
		{Section: "Storage", Name: "key", Value: state.StorageKey, Secret: true},
	}

	printSummary(fmt.Sprintf("azcap agent: %s", cfg.Project), entries, redact)

	fmt.Println("Connect")
	fmt.Println("-------")
	fmt.Printf("  The agent listens on %s port %d.\n", state.AgentAddress, cfg.Agent.Port)
	fmt.Printf("  Files under %s persist in the %s share.\n", cfg.Agent.MountPath, state.FileShare)
	fmt.Println()
}

// warnSecrets prints a stderr notice when the summary will include secrets.
func warnSecrets(redact bool) {
	if redact {
		return
	}
	fmt.Fprintln(os.Stderr, "Warning: the summary below includes generated credentials. Use --redact to mask them.")
}

// printSummary renders a titled summary block to stdout, styled when stdout
// is a terminal and plain otherwise. Entries with empty values are skipped.
func printSummary(title string, entries []summaryEntry, redact bool) {
	var present []summaryEntry
	for _, entry := range entries {
		if entry.Value != "" {
			present = append(present, entry)
		}
	}

	if isInteractiveTTY() {
		printSummaryStyled(title, present, redact)
		return
	}
	printSummaryPlain(title, present, redact)
}

func printSummaryStyled(title string, entries []summaryEntry, redact bool) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9fafb"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	fmt.Println()
	fmt.Println(titleStyle.Render("  " + title))
	fmt.Println(dimStyle.Render("  " + strings.Repeat("=", 30)))
	fmt.Println()

	currentSection := ""
	for _, entry := range entries {
		if entry.Section != currentSection {
			if currentSection != "" {
				fmt.Println()
			}
			fmt.Println(sectionStyle.Render("  " + entry.Section))
			fmt.Println(dimStyle.Render("  " + strings.Repeat("-", 35)))
			currentSection = entry.Section
		}
		fmt.Printf("  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-18s", entry.Name)), valueStyle.Render(entryValue(entry, redact)))
	}
	fmt.Println()
}

func printSummaryPlain(title string, entries []summaryEntry, redact bool) {
	fmt.Println()
	fmt.Println("  " + title)
	fmt.Println("  " + strings.Repeat("=", 30))
	fmt.Println()

	currentSection := ""
	for _, entry := range entries {
		if entry.Section != currentSection {
			if currentSection != "" {
				fmt.Println()
			}
			fmt.Println("  " + entry.Section)
			fmt.Println("  " + strings.Repeat("-", 35))
			currentSection = entry.Section
		}
		fmt.Printf("  %-18s  %s\n", entry.Name, entryValue(entry, redact))
	}
	fmt.Println()
}

func entryValue(entry summaryEntry, redact bool) string {
	if entry.Secret && redact {
		return redactedValue
	}
	return entry.Value
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
