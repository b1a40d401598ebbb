package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/azcap/azcap/internal/platform/azure"
	"github.com/azcap/azcap/internal/platform/docker"
	"github.com/azcap/azcap/internal/util/prerequisites"
)

// Factory function variables for doctor - can be replaced in tests.
var (
	// checkTools looks up a tool set in PATH.
	checkTools = prerequisites.Check

	// currentAccount reads the active az session.
	currentAccount = azure.CurrentAccount

	// dockerServerVersion probes the local docker daemon.
	dockerServerVersion = func(ctx context.Context) (string, error) {
		return docker.NewClient().ServerVersion(ctx)
	}
)

// doctorCheck is one row in the preflight checklist.
type doctorCheck struct {
	Name   string
	OK     bool
	Detail string
}

// Doctor checks local tooling, the active Azure session, the docker daemon,
// and the project configuration, then prints a checklist. It returns an
// error when any check fails so the CLI exits non-zero.
func Doctor(ctx context.Context, configPath string) error {
	checks := []doctorCheck{
		checkToolRow("az CLI", prerequisites.DefaultTools()),
		checkSession(ctx),
		checkToolRow("docker CLI", prerequisites.AgentBuildTools()),
		checkDaemon(ctx),
		checkConfig(configPath),
	}

	printDoctorReport(checks)

	for _, check := range checks {
		if !check.OK {
			return fmt.Errorf("doctor found problems; fix the failed checks and re-run")
		}
	}
	return nil
}

// checkToolRow verifies the first tool of a set is installed.
func checkToolRow(name string, tools []prerequisites.Tool) doctorCheck {
	check := doctorCheck{Name: name}

	result := checkTools(tools).Results[0]
	if !result.Found {
		check.Detail = fmt.Sprintf("not found in PATH (%s)", result.Tool.InstallURL)
		return check
	}

	check.OK = true
	check.Detail = result.Version
	if check.Detail == "" {
		check.Detail = result.Path
	}
	return check
}

// checkSession verifies an az session is active with a usable subscription.
func checkSession(ctx context.Context) doctorCheck {
	check := doctorCheck{Name: "Azure session"}

	account, err := currentAccount(ctx)
	if err != nil {
		check.Detail = err.Error()
		return check
	}

	check.OK = true
	check.Detail = fmt.Sprintf("%s (%s)", account.Name, account.ID)
	return check
}

// checkDaemon verifies the docker daemon is reachable.
func checkDaemon(ctx context.Context) doctorCheck {
	check := doctorCheck{Name: "docker daemon"}

	version, err := dockerServerVersion(ctx)
	if err != nil {
		check.Detail = "unreachable (is the docker daemon running?)"
		return check
	}

	check.OK = true
	check.Detail = "server " + version
	return check
}

// checkConfig verifies the configuration file is present and valid.
func checkConfig(path string) doctorCheck {
	check := doctorCheck{Name: "configuration"}

	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			check.Detail = "no azcap.yaml found (run 'azcap init')"
			return check
		}
		path = found
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		check.Detail = err.Error()
		return check
	}

	check.OK = true
	check.Detail = fmt.Sprintf("%s (project %s)", path, cfg.Project)
	return check
}

// printDoctorReport prints the checklist with pass/fail indicators.
func printDoctorReport(checks []doctorCheck) {
	fmt.Println()
	title := "azcap doctor"
	fmt.Printf("  %s\n", title)
	fmt.Println("  " + strings.Repeat("═", len(title)))
	fmt.Println()

	for _, check := range checks {
		printRow(check.Name, check.OK, check.Detail)
	}
	fmt.Println()
}

func printRow(name string, ok bool, extra string) {
	indicator := "✅" // green check
	if !ok {
		indicator = "❌" // red X
	}

	if extra != "" {
		fmt.Printf("  %s  %-20s %s\n", indicator, name, extra)
	} else {
		fmt.Printf("  %s  %s\n", indicator, name)
	}
}
