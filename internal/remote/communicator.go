// Package remote provides command execution and file transfer on a bound
// node over SSH.
package remote

import "context"

// Communicator defines the interface for executing commands on a remote
// server and moving files to and from it.
type Communicator interface {
	// Run executes a command on the remote server and returns its output.
	Run(ctx context.Context, command string) (string, error)
	// Upload copies a local file to the remote path.
	Upload(ctx context.Context, localPath, remotePath string) error
	// Download copies a remote file to the local path.
	Download(ctx context.Context, remotePath, localPath string) error
}

// Factory builds a Communicator for a host using an administrative
// credential. The session layer holds one so tests can substitute mocks.
type Factory func(host, user, password string) Communicator
