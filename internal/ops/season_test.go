package ops

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herdware/herdctl/internal/provider"
	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

func TestSeason_PushesAndExtractsBundles(t *testing.T) {
	rig := newTestRig(t)

	restore := archiveBundle
	defer func() { archiveBundle = restore }()
	var archived []string
	archiveBundle = func(_ context.Context, archive, dir string) error {
		archived = append(archived, dir)
		return nil
	}

	staging := t.TempDir()
	rig.bind(t, runningServer("saltmaster", 1, "203.0.113.1", "secret"))
	require.NoError(t, Season(context.Background(), rig.sess, staging))

	assert.Equal(t, []string{"salt", "pillar"}, archived)
	require.Len(t, rig.comm.Uploads, 2)
	assert.Equal(t, filepath.Join(staging, "salt.tar.gz"), rig.comm.Uploads[0][0])
	assert.Equal(t, "/tmp/salt.tar.gz", rig.comm.Uploads[0][1])
	assert.Equal(t, "/tmp/pillar.tar.gz", rig.comm.Uploads[1][1])
	assert.Equal(t, []string{
		"tar -xzf /tmp/salt.tar.gz -C /srv/",
		"tar -xzf /tmp/pillar.tar.gz -C /srv/",
	}, rig.comm.Commands)
}

func TestShell_PassesTargetHost(t *testing.T) {
	rig := newTestRig(t)

	restore := runSSH
	defer func() { runSSH = restore }()
	var dialed string
	runSSH = func(_ context.Context, host string) error {
		dialed = host
		return nil
	}

	rig.bind(t, runningServer("web1", 42, "203.0.113.10", "secret"))
	require.NoError(t, Shell(context.Background(), rig.sess))
	assert.Equal(t, "root@203.0.113.10", dialed)
}

func TestMakeMaster_FromNothing(t *testing.T) {
	rig := newTestRig(t)
	testCatalogs(rig.compute)

	var created bool
	rig.compute.ListServersFunc = serverList() // control node does not exist
	rig.compute.CreateServerFunc = func(_ context.Context, name string, _, flavorID int64) (*provider.Server, error) {
		created = true
		assert.Equal(t, "saltmaster", name)
		assert.Equal(t, int64(20), flavorID) // the 512 flavor
		return runningServer(name, 1, "203.0.113.1", "creation-secret"), nil
	}
	rig.compute.GetServerFunc = func(_ context.Context, id int64) (*provider.Server, error) {
		return runningServer("saltmaster", id, "203.0.113.1", ""), nil
	}

	restore := archiveBundle
	defer func() { archiveBundle = restore }()
	archiveBundle = func(context.Context, string, string) error { return nil }

	require.NoError(t, MakeMaster(context.Background(), rig.sess, t.TempDir()))
	assert.True(t, created)
	assert.Contains(t, rig.comm.Commands, "curl -L https://bootstrap.saltproject.io | sh -s -- -M -N stable")
	assert.Contains(t, rig.comm.Commands, "tar -xzf /tmp/salt.tar.gz -C /srv/")
}

func TestMakeMaster_KeepsDeclinedExistingNode(t *testing.T) {
	rig := newTestRig(t, session.WithConfirmer(ui.AutoConfirmer{Answer: false}))

	control := runningServer("saltmaster", 1, "203.0.113.1", "secret")
	rig.compute.ListServersFunc = serverList(control)
	rig.compute.DeleteServerFunc = func(context.Context, int64) error {
		t.Fatal("declining the replacement must not delete the control node")
		return nil
	}
	rig.compute.CreateServerFunc = func(context.Context, string, int64, int64) (*provider.Server, error) {
		t.Fatal("the existing control node should be kept")
		return nil, nil
	}

	restore := archiveBundle
	defer func() { archiveBundle = restore }()
	archiveBundle = func(context.Context, string, string) error { return nil }

	require.NoError(t, MakeMaster(context.Background(), rig.sess, t.TempDir()))
	// Bootstrapped in place.
	assert.Contains(t, rig.comm.Commands, "curl -L https://bootstrap.saltproject.io | sh -s -- -M -N stable")
}
