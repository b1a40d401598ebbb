// Package main is the entry point for the azcap CLI.
//
// azcap is a command-line tool for provisioning the Azure footprint of a
// containerized project: resource group, storage account and file share,
// container registry, Log Analytics workspace, and a Container Apps
// managed environment, plus a containerized build agent running on Azure
// Container Instances. Provisioning is create-or-verify only; nothing is
// mutated or deleted, so re-running a command after a failure converges.
//
// Commands: init, setup, agent, doctor, version.
//
// For detailed usage information, run:
//
//	azcap --help
package main

import (
	"fmt"
	"os"

	"github.com/azcap/azcap/cmd/azcap/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
