package ops

import (
	"context"
	"fmt"
	"strings"

	"github.com/herdware/herdctl/internal/poll"
	"github.com/herdware/herdctl/internal/provider"
	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

// defaultDevice is where a fresh volume appears when the provider does not
// report a device path.
const defaultDevice = "/dev/xvdb"

// Pasture creates a block-storage volume. If a node is currently bound the
// volume is attached to it and formatted.
func Pasture(ctx context.Context, sess *session.Session, name string, sizeGB int, medium string) (*provider.Volume, error) {
	labels := map[string]string{}
	if medium != "" {
		labels["medium"] = strings.ToLower(medium)
	}
	vol, err := sess.Compute.CreateVolume(ctx, name, sizeGB, sess.Settings.Location, labels)
	if err != nil {
		return nil, err
	}
	ui.OK("Created storage %s (%dGB)", name, sizeGB)

	if sess.HasTarget() {
		if err := Graze(ctx, sess, name, GrazeOptions{MkFS: true}); err != nil {
			return vol, err
		}
	}
	return vol, nil
}

// GrazeOptions control how a volume is attached.
type GrazeOptions struct {
	// Device overrides the block device path.
	Device string
	// MkFS formats the device (ext4) before mounting.
	MkFS bool
}

// Graze attaches the named volume to the bound node, waits until the volume
// reports in-use, optionally formats it, and mounts it at /mnt/<name>.
func Graze(ctx context.Context, sess *session.Session, volumeName string, opts GrazeOptions) error {
	target, err := sess.Target()
	if err != nil {
		return err
	}

	volumes, err := sess.Compute.ListVolumes(ctx)
	if err != nil {
		return err
	}
	var vol *provider.Volume
	for _, v := range volumes {
		if v.Name == volumeName {
			vol = v
			break
		}
	}
	if vol == nil {
		return fmt.Errorf("storage not found: %s", volumeName)
	}

	comm, err := sess.Communicator()
	if err != nil {
		return err
	}

	mountPoint := "/mnt/" + volumeName
	if _, err := comm.Run(ctx, "mkdir -p "+mountPoint); err != nil {
		return err
	}

	if err := sess.Compute.AttachVolume(ctx, vol.ID, target.Server.ID); err != nil {
		return err
	}
	ui.OK("Attached storage %s to %s", volumeName, target.Server.Name)

	ui.Dim("Waiting for volume to attach...")
	device := opts.Device
	err = poll.Until(ctx, func(ctx context.Context) (bool, error) {
		current, err := sess.Compute.GetVolume(ctx, vol.ID)
		if err != nil {
			return false, err
		}
		if current == nil {
			return false, fmt.Errorf("storage %s disappeared while attaching", volumeName)
		}
		if current.Status != provider.StatusInUse {
			return false, nil
		}
		if device == "" {
			device = current.Device
		}
		return true, nil
	}, poll.WithInterval(sess.PollInterval), poll.WithSleep(sess.Sleep))
	if err != nil {
		return err
	}
	if device == "" {
		device = defaultDevice
	}
	ui.OK("Attached!")

	if opts.MkFS {
		if _, err := comm.Run(ctx, "mkfs.ext4 "+device); err != nil {
			return err
		}
		ui.OK("Made fs (ext4) on %s", device)
	}

	if _, err := comm.Run(ctx, fmt.Sprintf("mount -t ext4 %s %s", device, mountPoint)); err != nil {
		return err
	}
	ui.OK("Mounted %s at %s", device, mountPoint)
	return nil
}
