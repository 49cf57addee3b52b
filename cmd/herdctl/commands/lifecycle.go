package commands

import (
	"github.com/spf13/cobra"

	"github.com/herdware/herdctl/cmd/herdctl/handlers"
	"github.com/herdware/herdctl/internal/ops"
)

// Herd returns the command that selects an existing node.
func Herd() *cobra.Command {
	return &cobra.Command{
		Use:   "herd <name>",
		Short: "Select an existing node and verify an administrative channel to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Herd(cmd.Context(), handlerOptions(), args[0])
		},
	}
}

// Birth returns the command that creates a new node.
//
// Optional flags:
//
//	--size: RAM or disk size to match against the flavor catalog
//	--ram / --disk: restrict the size match to one dimension
//	--wait: block until the server reports ready
//	--ad-hoc: create directly, bypassing any stored profile
//	--alias: extra DNS names pointed at the node
func Birth() *cobra.Command {
	var (
		size    float64
		ramOnly bool
		dskOnly bool
		wait    bool
		adHoc   bool
		aliases []string
	)

	cmd := &cobra.Command{
		Use:   "birth <name>",
		Short: "Create a new node, via a stored profile when one exists",
		Long: `Create a new node called <name>.

If the control node exists and knows a profile for <name>, provisioning is
delegated to it and the size flags are ignored. Otherwise the image and
flavor are resolved from the provider catalogs, a new profile is recorded
and pushed to the control node, and the server is created directly.

Examples:
  # Create via stored profile (or record a new one sized by RAM-or-disk 4096)
  herdctl birth someserver --size 4096

  # Create a throwaway box directly, matched on RAM only, and wait for it
  herdctl birth scratch --size 8 --ram --ad-hoc --wait`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := ops.SizeAny
			switch {
			case ramOnly && dskOnly:
				return cmd.Help()
			case ramOnly:
				kind = ops.SizeRAM
			case dskOnly:
				kind = ops.SizeDisk
			}
			hint := ops.SizeHint{Kind: kind, Value: size}
			return handlers.Birth(cmd.Context(), handlerOptions(), args[0], hint, ops.BirthOptions{
				Wait:    wait,
				AdHoc:   adHoc,
				Aliases: aliases,
			})
		},
	}

	cmd.Flags().Float64Var(&size, "size", 0, "RAM or disk size to match against the flavor catalog")
	cmd.Flags().BoolVar(&ramOnly, "ram", false, "Match --size against RAM only")
	cmd.Flags().BoolVar(&dskOnly, "disk", false, "Match --size against disk only")
	cmd.Flags().BoolVar(&wait, "wait", false, "Block until the server reports ready")
	cmd.Flags().BoolVar(&adHoc, "ad-hoc", false, "Create directly, bypassing any stored profile")
	cmd.Flags().StringSliceVar(&aliases, "alias", nil, "Extra DNS names pointed at the node")

	return cmd
}

// Euthanise returns the command that destroys a node after confirmation.
func Euthanise() *cobra.Command {
	var (
		wait bool
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "euthanise <name>",
		Short: "Destroy a node, after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Euthanise(cmd.Context(), handlerOptions(), args[0], wait, yes)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Block until the provider stops listing the server")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// Brand returns the command that registers a node in DNS.
func Brand() *cobra.Command {
	var aliases []string

	cmd := &cobra.Command{
		Use:   "brand <name>",
		Short: "Register a node in DNS (A record plus CNAME aliases)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Brand(cmd.Context(), handlerOptions(), args[0], aliases)
		},
	}

	cmd.Flags().StringSliceVar(&aliases, "alias", nil, "Extra DNS names pointed at the node")

	return cmd
}
