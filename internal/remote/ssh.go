package remote

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/ssh"
)

// SSHCommunicator implements Communicator using the SSH protocol with
// password authentication. The administrative credential comes from the
// session binder, so no key material is required on the operator machine.
type SSHCommunicator struct {
	host     string
	user     string
	password string

	dialAttempts int
	dialInterval time.Duration
}

// NewSSHCommunicator creates a new SSHCommunicator. host must include the
// port.
func NewSSHCommunicator(host, user, password string) *SSHCommunicator {
	return &SSHCommunicator{
		host:         host,
		user:         user,
		password:     password,
		dialAttempts: 10,
		dialInterval: 5 * time.Second,
	}
}

// NewFactory returns a Factory producing SSH communicators.
func NewFactory() Factory {
	return func(host, user, password string) Communicator {
		return NewSSHCommunicator(host, user, password)
	}
}

var _ Communicator = (*SSHCommunicator)(nil)

func (c *SSHCommunicator) connect(ctx context.Context) (*ssh.Client, error) {
	config := &ssh.ClientConfig{
		User: c.user,
		Auth: []ssh.AuthMethod{
			ssh.Password(c.password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // #nosec G106 -- freshly provisioned hosts have no known key
		Timeout:         10 * time.Second,
	}

	host := c.host
	if _, _, err := net.SplitHostPort(host); err != nil {
		host = net.JoinHostPort(host, "22")
	}

	var client *ssh.Client
	var err error
	for i := 0; i < c.dialAttempts; i++ {
		client, err = ssh.Dial("tcp", host, config)
		if err == nil {
			return client, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.dialInterval):
		}
	}
	return nil, fmt.Errorf("failed to dial ssh %s: %w", host, err)
}

// Run executes a command on the remote server and returns its combined
// output.
func (c *SSHCommunicator) Run(ctx context.Context, command string) (string, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput(command)
	if err != nil {
		return string(output), fmt.Errorf("failed to execute %q: %w, output: %s", command, err, output)
	}
	return string(output), nil
}

// Upload copies a local file to the remote path by piping it through a
// shell, which avoids requiring SFTP on a freshly bootstrapped host.
func (c *SSHCommunicator) Upload(ctx context.Context, localPath, remotePath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", localPath, err)
	}

	client, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	session.Stdin = bytes.NewReader(data)
	command := fmt.Sprintf("mkdir -p %s && cat > %s", filepath.Dir(remotePath), remotePath)
	if output, err := session.CombinedOutput(command); err != nil {
		return fmt.Errorf("failed to upload to %s: %w, output: %s", remotePath, err, output)
	}
	return nil
}

// Download copies a remote file to the local path.
func (c *SSHCommunicator) Download(ctx context.Context, remotePath, localPath string) error {
	client, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	var stdout bytes.Buffer
	session.Stdout = &stdout
	if err := session.Run("cat " + remotePath); err != nil {
		return fmt.Errorf("failed to download %s: %w", remotePath, err)
	}
	if err := os.WriteFile(localPath, stdout.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", localPath, err)
	}
	return nil
}
