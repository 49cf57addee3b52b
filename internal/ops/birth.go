package ops

import (
	"context"
	"errors"
	"fmt"

	"github.com/herdware/herdctl/internal/inventory"
	"github.com/herdware/herdctl/internal/poll"
	"github.com/herdware/herdctl/internal/profile"
	"github.com/herdware/herdctl/internal/provider"
	"github.com/herdware/herdctl/internal/remote"
	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

// BirthOptions control how a new node is created.
type BirthOptions struct {
	// Wait blocks until the server reports ready, then binds it.
	Wait bool
	// AdHoc forces direct creation even when the control node knows a
	// profile for the name. The stored profile is overwritten.
	AdHoc bool
	// Aliases are extra DNS names pointed at the new node.
	Aliases []string
}

// Birth creates a new node with the given name and size.
//
// When a control node exists and knows a profile for the name, provisioning
// is delegated to it declaratively. Otherwise the image and flavor are
// resolved ad hoc from the catalogs, a new profile is synthesized and pushed
// back to the control node, and the server is created directly. Either way
// the node ends up registered in DNS.
func Birth(ctx context.Context, sess *session.Session, name string, hint SizeHint, opts BirthOptions) (*provider.Server, error) {
	profiles, err := sess.Profiles.Load()
	if err != nil {
		return nil, err
	}

	control, err := sess.Inventory.Lookup(sess.Settings.ControlNode)
	if err != nil && !inventory.IsNotFound(err) {
		return nil, err
	}
	controlExists := err == nil

	var comm remote.Communicator
	if controlExists {
		if err := sess.Bind(ctx, control); err != nil {
			return nil, err
		}
		if comm, err = sess.Communicator(); err != nil {
			return nil, err
		}
		// The control node's copy is authoritative; never decide from a
		// stale local file.
		if err := sess.Profiles.SyncFromRemote(ctx, comm); err != nil {
			return nil, err
		}
		if profiles, err = sess.Profiles.Load(); err != nil {
			return nil, err
		}

		if _, known := profiles[name]; known && !opts.AdHoc {
			return birthFromProfile(ctx, sess, comm, name, opts.Aliases)
		}
		sess.Log.WithField("server", name).Warn("unknown profile, creating new one")
	}

	img, err := matchImage(ctx, sess)
	if err != nil {
		return nil, err
	}
	flavor, err := matchFlavor(ctx, sess, hint)
	if err != nil {
		return nil, err
	}

	profiles[name] = profile.Profile{
		Provider: sess.Creds.AccountBinding(),
		Size:     flavor.Name,
		Image:    img.Name,
	}
	if err := sess.Profiles.Save(profiles); err != nil {
		return nil, err
	}
	if controlExists {
		if err := sess.Profiles.SyncToRemote(ctx, comm); err != nil {
			return nil, err
		}
	}

	if !opts.AdHoc && controlExists {
		// The control node knows the profile now; let it drive creation.
		return birthFromProfile(ctx, sess, comm, name, opts.Aliases)
	}

	srv, err := sess.Compute.CreateServer(ctx, name, img.ID, flavor.ID)
	if err != nil {
		return nil, err
	}
	ui.OK("Ok, made server %s:%d", srv.Name, srv.ID)
	ui.Info("Admin password (last chance!): %s", ui.Secret(srv.AdminPassword))

	if opts.Wait {
		if err := waitUntilReady(ctx, sess, srv); err != nil {
			return nil, err
		}
		if err := sess.Bind(ctx, srv); err != nil {
			return nil, err
		}
		ui.OK("Ok, server is ready!")
	} else if err := sess.Bind(ctx, srv); err != nil {
		// The address may not be allocated yet; leave DNS to a later
		// brand run rather than failing the birth.
		var noIP *session.NoIPv4Error
		if !errors.As(err, &noIP) {
			return nil, err
		}
		sess.Log.WithField("server", name).Warn("no IPv4 yet, skipping dns registration")
		return srv, nil
	}

	if err := Brand(ctx, sess, opts.Aliases); err != nil {
		return nil, err
	}
	return srv, nil
}

// birthFromProfile delegates provisioning to the control node, then
// resolves and binds the fresh server and registers it in DNS.
func birthFromProfile(ctx context.Context, sess *session.Session, comm remote.Communicator, name string, aliases []string) (*provider.Server, error) {
	if _, err := comm.Run(ctx, fmt.Sprintf("salt-cloud -p %s %s", name, name)); err != nil {
		return nil, fmt.Errorf("declarative provisioning of %s failed: %w", name, err)
	}
	srv, err := sess.Herd(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := Brand(ctx, sess, aliases); err != nil {
		return nil, err
	}
	return srv, nil
}

// waitUntilReady polls the provider at the session's fixed interval until
// the server reports running. The created record keeps its creation-time
// credential; only the addresses and status are refreshed.
func waitUntilReady(ctx context.Context, sess *session.Session, srv *provider.Server) error {
	ui.Dim("Waiting until server is ready...")
	return poll.Until(ctx, func(ctx context.Context) (bool, error) {
		current, err := sess.Compute.GetServer(ctx, srv.ID)
		if err != nil {
			return false, err
		}
		if current == nil {
			return false, fmt.Errorf("server %s disappeared while building", srv.Name)
		}
		if current.Status != provider.ServerStatusRunning {
			return false, nil
		}
		srv.Status = current.Status
		srv.Addresses = current.Addresses
		return true, nil
	}, poll.WithInterval(sess.PollInterval), poll.WithSleep(sess.Sleep))
}
