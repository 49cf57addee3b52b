package ops

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/herdware/herdctl/internal/session"
)

// saltCloudProvider is the provider stanza rendered into the control node's
// cloud.providers file, so it can drive declarative provisioning with the
// session's account.
type saltCloudProvider struct {
	APIKey   string `yaml:"apikey"`
	Region   string `yaml:"compute_region"`
	Protocol string `yaml:"protocol"`
	Provider string `yaml:"provider"`
	Tenant   string `yaml:"tenant"`
	User     string `yaml:"user"`
	Minion   struct {
		Master string `yaml:"master"`
	} `yaml:"minion"`
}

// Bootstrap installs the configuration-management agent on the bound node.
// With master, the node becomes the control node: it gets the master
// daemon, the cloud provisioning tooling, the rendered provider config, and
// the current profiles file.
func Bootstrap(ctx context.Context, sess *session.Session, master bool) error {
	target, err := sess.Target()
	if err != nil {
		return err
	}
	comm, err := sess.Communicator()
	if err != nil {
		return err
	}

	if _, err := comm.Run(ctx, "apt-get -q update"); err != nil {
		return err
	}
	if _, err := comm.Run(ctx, "apt-get -q --yes install git curl python3-dev build-essential python3-pip sshpass"); err != nil {
		return err
	}

	if !master {
		_, err := comm.Run(ctx, "curl -L https://bootstrap.saltproject.io | sh -s -- stable")
		return err
	}

	if _, err := comm.Run(ctx, "curl -L https://bootstrap.saltproject.io | sh -s -- -M -N stable"); err != nil {
		return err
	}
	if _, err := comm.Run(ctx, "python3 -m pip install salt-cloud psutil apache-libcloud"); err != nil {
		return err
	}

	providers, err := renderProviderConfig(sess, target.Addr)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp("", "cloud.providers-*")
	if err != nil {
		return fmt.Errorf("failed to stage provider config: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(providers); err != nil {
		return fmt.Errorf("failed to stage provider config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to stage provider config: %w", err)
	}
	if err := comm.Upload(ctx, tmp.Name(), "/etc/salt/cloud.providers"); err != nil {
		return err
	}

	// Seed the authoritative profiles file from the local working copy.
	return sess.Profiles.SyncToRemote(ctx, comm)
}

// renderProviderConfig serializes the provider stanza for the control
// node, with minions pointed at the master's public address.
func renderProviderConfig(sess *session.Session, masterAddr string) ([]byte, error) {
	p := saltCloudProvider{
		APIKey:   sess.Creds.APIKey,
		Region:   sess.Settings.Location,
		Protocol: "ipv4",
		Provider: "hetzner",
		Tenant:   sess.Creds.TenantID,
		User:     sess.Creds.User,
	}
	p.Minion.Master = masterAddr

	conf := map[string]saltCloudProvider{
		sess.Creds.AccountBinding(): p,
	}
	data, err := yaml.Marshal(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to render provider config: %w", err)
	}
	return data, nil
}
