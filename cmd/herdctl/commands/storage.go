package commands

import (
	"github.com/spf13/cobra"

	"github.com/herdware/herdctl/cmd/herdctl/handlers"
	"github.com/herdware/herdctl/internal/ops"
)

// Pasture returns the command that creates block storage.
func Pasture() *cobra.Command {
	var (
		size     int
		medium   string
		attachTo string
	)

	cmd := &cobra.Command{
		Use:   "pasture <name>",
		Short: "Create a block-storage volume, optionally attaching it to a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Pasture(cmd.Context(), handlerOptions(), args[0], size, medium, attachTo)
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Size of the volume in GB")
	cmd.Flags().StringVar(&medium, "medium", "", "Storage medium (e.g. SSD, SATA)")
	cmd.Flags().StringVar(&attachTo, "attach", "", "Server to attach and format the volume on")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

// Graze returns the command that attaches storage to a node.
func Graze() *cobra.Command {
	var (
		device string
		mkfs   bool
	)

	cmd := &cobra.Command{
		Use:   "graze <server> <volume>",
		Short: "Attach a block-storage volume to a node and mount it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Graze(cmd.Context(), handlerOptions(), args[0], args[1], ops.GrazeOptions{
				Device: device,
				MkFS:   mkfs,
			})
		},
	}

	cmd.Flags().StringVar(&device, "dev", "", "Block device path (default: provider-reported, else /dev/xvdb)")
	cmd.Flags().BoolVar(&mkfs, "mkfs", false, "Make an ext4 filesystem on the device before mounting")

	return cmd
}
