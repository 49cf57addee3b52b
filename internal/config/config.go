// Package config loads operator settings and API credentials.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = "herd.yaml"

// Settings holds the operator's herd configuration.
type Settings struct {
	// Domain is the DNS zone servers are registered under.
	Domain string `yaml:"domain"`

	// ControlNode is the name of the node that runs the configuration
	// management master and holds the authoritative profiles file.
	ControlNode string `yaml:"control_node"`

	// Image selects the OS image for ad hoc creation by substring match
	// against the provider's catalog.
	Image string `yaml:"image"`

	// Location is the provider location new volumes are created in.
	Location string `yaml:"location"`

	// ProfilePath overrides the local profiles file path.
	ProfilePath string `yaml:"profile_path"`
}

// Load reads and parses the settings from a YAML file. An empty path uses
// DefaultPath.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath
	}
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// Defaults
	if s.Image == "" {
		s.Image = "Ubuntu 22.04"
	}
	if s.Location == "" {
		s.Location = "fsn1"
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &s, nil
}

// Validate checks that the required settings are present.
func (s *Settings) Validate() error {
	if s.Domain == "" {
		return fmt.Errorf("domain must be set")
	}
	if s.ControlNode == "" {
		return fmt.Errorf("control_node must be set")
	}
	return nil
}
