package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_RegistersAllCommands(t *testing.T) {
	root := Root()

	want := []string{
		"herd", "birth", "euthanise", "brand",
		"pasture", "graze",
		"bootstrap", "season", "make-master",
		"shell", "version",
	}
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestRoot_PersistentFlags(t *testing.T) {
	root := Root()

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("user"))
}

func TestBirth_Flags(t *testing.T) {
	cmd := Birth()

	for _, flag := range []string{"size", "ram", "disk", "wait", "ad-hoc", "alias"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
}

func TestBirth_RAMAndDiskAreMutuallyExclusive(t *testing.T) {
	cmd := Birth()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"web1", "--size", "4096", "--ram", "--disk"})

	// Conflicting flags fall through to usage instead of running.
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-08-29")

	cmd := Version()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestPasture_RequiresSize(t *testing.T) {
	cmd := Pasture()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"files"})

	assert.Error(t, cmd.Execute())
}
