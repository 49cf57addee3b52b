package ops

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/herdware/herdctl/internal/session"
)

func TestBootstrap_Minion(t *testing.T) {
	rig := newTestRig(t)

	rig.bind(t, runningServer("web1", 42, "203.0.113.10", "secret"))
	require.NoError(t, Bootstrap(context.Background(), rig.sess, false))

	assert.Equal(t, []string{
		"apt-get -q update",
		"apt-get -q --yes install git curl python3-dev build-essential python3-pip sshpass",
		"curl -L https://bootstrap.saltproject.io | sh -s -- stable",
	}, rig.comm.Commands)
	assert.Empty(t, rig.comm.Uploads)
}

func TestBootstrap_MasterRendersProviderConfig(t *testing.T) {
	rig := newTestRig(t)

	// Capture the staged provider config before the temp file is removed.
	staged := map[string][]byte{}
	rig.comm.UploadFunc = func(_ context.Context, localPath, remotePath string) error {
		data, err := os.ReadFile(localPath)
		if err == nil {
			staged[remotePath] = data
		}
		return nil
	}

	rig.bind(t, runningServer("saltmaster", 1, "203.0.113.1", "secret"))
	require.NoError(t, Bootstrap(context.Background(), rig.sess, true))

	assert.Contains(t, rig.comm.Commands, "curl -L https://bootstrap.saltproject.io | sh -s -- -M -N stable")
	assert.Contains(t, rig.comm.Commands, "python3 -m pip install salt-cloud psutil apache-libcloud")

	require.Contains(t, staged, "/etc/salt/cloud.providers")
	var conf map[string]saltCloudProvider
	require.NoError(t, yaml.Unmarshal(staged["/etc/salt/cloud.providers"], &conf))
	require.Contains(t, conf, "herd-conf-alice")
	p := conf["herd-conf-alice"]
	assert.Equal(t, "key", p.APIKey)
	assert.Equal(t, "alice", p.User)
	assert.Equal(t, "tenant", p.Tenant)
	assert.Equal(t, "fsn1", p.Region)
	assert.Equal(t, "203.0.113.1", p.Minion.Master)

	// The profiles file is seeded onto the fresh master too.
	require.Len(t, rig.comm.Uploads, 2)
	assert.Equal(t, "/etc/salt/cloud.profiles", rig.comm.Uploads[1][1])
}

func TestBootstrap_RequiresBoundServer(t *testing.T) {
	rig := newTestRig(t)

	err := Bootstrap(context.Background(), rig.sess, false)
	require.ErrorIs(t, err, session.ErrNoTarget)
}
