package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "herd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "domain: example.com\ncontrol_node: saltmaster\nimage: Ubuntu 12.04\nlocation: nbg1\n")
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example.com", s.Domain)
	assert.Equal(t, "saltmaster", s.ControlNode)
	assert.Equal(t, "Ubuntu 12.04", s.Image)
	assert.Equal(t, "nbg1", s.Location)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "domain: example.com\ncontrol_node: saltmaster\n")
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ubuntu 22.04", s.Image)
	assert.Equal(t, "fsn1", s.Location)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing domain", content: "control_node: saltmaster\n"},
		{name: "missing control node", content: "domain: example.com\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeSettings(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}
