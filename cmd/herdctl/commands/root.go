// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herdware/herdctl/cmd/herdctl/handlers"
)

var (
	configPath string
	user       string
)

var versionInfo = "dev"

// SetVersionInfo records build metadata for the version command.
func SetVersionInfo(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// handlerOptions collects the persistent flags for the handlers layer.
func handlerOptions() handlers.Options {
	return handlers.Options{
		ConfigPath: configPath,
		User:       user,
	}
}

// Root returns the root command for the herdctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "herdctl",
		Short: "Provision and administer a cloud server herd",
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: herd.yaml)")
	cmd.PersistentFlags().StringVarP(&user, "user", "u", "", "Operator identity (default: $HERD_USER)")

	// Lifecycle commands
	cmd.AddCommand(Herd())
	cmd.AddCommand(Birth())
	cmd.AddCommand(Euthanise())
	cmd.AddCommand(Brand())

	// Storage commands
	cmd.AddCommand(Pasture())
	cmd.AddCommand(Graze())

	// Bootstrap commands
	cmd.AddCommand(Bootstrap())
	cmd.AddCommand(Season())
	cmd.AddCommand(MakeMaster())

	// Utility commands
	cmd.AddCommand(Shell())
	cmd.AddCommand(Version())

	return cmd
}

// Version returns the command printing build metadata.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(versionInfo)
		},
	}
}
