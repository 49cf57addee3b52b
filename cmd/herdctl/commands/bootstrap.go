package commands

import (
	"github.com/spf13/cobra"

	"github.com/herdware/herdctl/cmd/herdctl/handlers"
)

// Bootstrap returns the command that installs the configuration-management
// agent on a node.
func Bootstrap() *cobra.Command {
	var master bool

	cmd := &cobra.Command{
		Use:   "bootstrap <name>",
		Short: "Install the configuration-management agent on a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Bootstrap(cmd.Context(), handlerOptions(), args[0], master)
		},
	}

	cmd.Flags().BoolVar(&master, "master", false, "Install the master daemon and provisioning tooling")

	return cmd
}

// Season returns the command that pushes the configuration bundles to the
// control node.
func Season() *cobra.Command {
	return &cobra.Command{
		Use:   "season",
		Short: "Push the local salt and pillar bundles to the control node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Season(cmd.Context(), handlerOptions())
		},
	}
}

// MakeMaster returns the command that provisions the control node from
// nothing.
func MakeMaster() *cobra.Command {
	return &cobra.Command{
		Use:   "make-master",
		Short: "Provision the control node from nothing (create, bootstrap, season)",
		Long: `Provision the control node from nothing.

If a control node already exists you are asked whether to replace it; on
decline the existing node is re-bootstrapped in place. Either way the node
ends up running the management master with the current provider config,
profiles, and configuration bundles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.MakeMaster(cmd.Context(), handlerOptions())
		},
	}
}

// Shell returns the command that opens an interactive shell on a node.
func Shell() *cobra.Command {
	return &cobra.Command{
		Use:   "shell <name>",
		Short: "Open an interactive shell on a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Shell(cmd.Context(), handlerOptions(), args[0])
		},
	}
}
