// Package main is the entry point for the herdctl CLI.
//
// herdctl provisions and administers a small cloud server herd: it creates
// nodes directly or through the control node's declarative profiles, keeps
// the profile record in sync, registers DNS, attaches block storage, and
// destroys nodes after confirmation.
//
// For detailed usage information, run:
//
//	herdctl --help
package main

import (
	"fmt"
	"os"

	"github.com/herdware/herdctl/cmd/herdctl/commands"
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
