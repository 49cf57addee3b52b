// Package profile persists named server templates.
//
// A profile records how a server was provisioned (provider account binding,
// resolved size, resolved image) under the same name as the server itself,
// so the node can be recreated identically after it is lost. The control
// node holds the authoritative copy; the local file is a disposable working
// copy that is re-synced around every decision that consults it.
package profile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/herdware/herdctl/internal/remote"
)

// RemotePath is where the control node keeps the authoritative profiles
// file.
const RemotePath = "/etc/salt/cloud.profiles"

// DefaultPath is the local working copy in the operator's working
// directory.
const DefaultPath = "cloud.profiles"

// Profile is a reusable template for producing a server.
type Profile struct {
	Provider string `yaml:"provider"`
	Size     string `yaml:"size"`
	Image    string `yaml:"image"`
}

// Profiles maps server name to profile. The name space is shared with
// server names.
type Profiles map[string]Profile

// Store reads and writes the profiles file.
type Store struct {
	path string
}

// NewStore creates a store over the given local path. An empty path uses
// DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the local file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Load parses the local file. A missing or empty file yields an empty
// mapping, never an error. The file is reparsed on every call so a sync
// is always visible.
func (s *Store) Load() (Profiles, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Profiles{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	profiles := Profiles{}
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", s.path, err)
	}
	if profiles == nil {
		profiles = Profiles{}
	}
	return profiles, nil
}

// Save serializes the mapping and overwrites the local file.
func (s *Store) Save(profiles Profiles) error {
	data, err := yaml.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to serialize profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}
	return nil
}

// SyncFromRemote overwrites the local file with the control node's copy, so
// the working copy is never stale relative to the control node.
func (s *Store) SyncFromRemote(ctx context.Context, comm remote.Communicator) error {
	if err := comm.Download(ctx, RemotePath, s.path); err != nil {
		return fmt.Errorf("failed to pull profiles from control node: %w", err)
	}
	return nil
}

// SyncToRemote pushes the local file to the control node, which is the
// durable source of truth for provisioned topology.
func (s *Store) SyncToRemote(ctx context.Context, comm remote.Communicator) error {
	if err := comm.Upload(ctx, s.path, RemotePath); err != nil {
		return fmt.Errorf("failed to push profiles to control node: %w", err)
	}
	return nil
}
