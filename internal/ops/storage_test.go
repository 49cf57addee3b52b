package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herdware/herdctl/internal/provider"
	"github.com/herdware/herdctl/internal/session"
)

func TestPasture_CreatesVolumeWithoutTarget(t *testing.T) {
	rig := newTestRig(t)

	var gotLocation string
	var gotLabels map[string]string
	rig.compute.CreateVolumeFunc = func(_ context.Context, name string, sizeGB int, location string, labels map[string]string) (*provider.Volume, error) {
		gotLocation = location
		gotLabels = labels
		return &provider.Volume{ID: 5, Name: name, Size: sizeGB, Status: "available"}, nil
	}
	rig.compute.AttachVolumeFunc = func(context.Context, int64, int64) error {
		t.Fatal("nothing is bound, so nothing should be attached")
		return nil
	}

	vol, err := Pasture(context.Background(), rig.sess, "files", 100, "SSD")
	require.NoError(t, err)
	assert.Equal(t, int64(5), vol.ID)
	assert.Equal(t, "fsn1", gotLocation)
	assert.Equal(t, map[string]string{"medium": "ssd"}, gotLabels)
}

func TestPasture_AttachesToBoundServer(t *testing.T) {
	rig := newTestRig(t)

	rig.compute.ListVolumesFunc = func(context.Context) ([]*provider.Volume, error) {
		return []*provider.Volume{{ID: 5, Name: "files", Size: 100, Status: "available"}}, nil
	}
	var attachedVolume, attachedServer int64
	rig.compute.AttachVolumeFunc = func(_ context.Context, volumeID, serverID int64) error {
		attachedVolume = volumeID
		attachedServer = serverID
		return nil
	}
	rig.compute.GetVolumeFunc = func(_ context.Context, id int64) (*provider.Volume, error) {
		return &provider.Volume{ID: id, Name: "files", Status: provider.StatusInUse, Device: "/dev/sdb"}, nil
	}

	rig.bind(t, runningServer("web1", 42, "203.0.113.10", "secret"))
	_, err := Pasture(context.Background(), rig.sess, "files", 100, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), attachedVolume)
	assert.Equal(t, int64(42), attachedServer)

	// Mount point first, then format, then mount, on the reported device.
	assert.Equal(t, []string{
		"mkdir -p /mnt/files",
		"mkfs.ext4 /dev/sdb",
		"mount -t ext4 /dev/sdb /mnt/files",
	}, rig.comm.Commands)
}

func TestGraze_MountsWithoutFormatting(t *testing.T) {
	rig := newTestRig(t)

	rig.compute.ListVolumesFunc = func(context.Context) ([]*provider.Volume, error) {
		return []*provider.Volume{{ID: 5, Name: "files", Status: "available"}}, nil
	}
	polls := 0
	rig.compute.GetVolumeFunc = func(_ context.Context, id int64) (*provider.Volume, error) {
		polls++
		if polls < 2 {
			return &provider.Volume{ID: id, Name: "files", Status: "available"}, nil
		}
		return &provider.Volume{ID: id, Name: "files", Status: provider.StatusInUse}, nil
	}

	rig.bind(t, runningServer("web1", 42, "203.0.113.10", "secret"))
	require.NoError(t, Graze(context.Background(), rig.sess, "files", GrazeOptions{}))
	assert.Equal(t, 2, polls)

	// No device reported and no override: the conventional default is used.
	assert.Equal(t, []string{
		"mkdir -p /mnt/files",
		"mount -t ext4 /dev/xvdb /mnt/files",
	}, rig.comm.Commands)
}

func TestGraze_DeviceOverride(t *testing.T) {
	rig := newTestRig(t)

	rig.compute.ListVolumesFunc = func(context.Context) ([]*provider.Volume, error) {
		return []*provider.Volume{{ID: 5, Name: "files", Status: "available"}}, nil
	}

	rig.bind(t, runningServer("web1", 42, "203.0.113.10", "secret"))
	require.NoError(t, Graze(context.Background(), rig.sess, "files", GrazeOptions{Device: "/dev/vdc", MkFS: true}))

	assert.Contains(t, rig.comm.Commands, "mkfs.ext4 /dev/vdc")
	assert.Contains(t, rig.comm.Commands, "mount -t ext4 /dev/vdc /mnt/files")
}

func TestGraze_UnknownVolume(t *testing.T) {
	rig := newTestRig(t)

	rig.bind(t, runningServer("web1", 42, "203.0.113.10", "secret"))
	err := Graze(context.Background(), rig.sess, "missing", GrazeOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage not found: missing")
}

func TestGraze_RequiresBoundServer(t *testing.T) {
	rig := newTestRig(t)

	err := Graze(context.Background(), rig.sess, "files", GrazeOptions{})
	require.ErrorIs(t, err, session.ErrNoTarget)
}
