package ops

import (
	"context"
	"time"

	"github.com/herdware/herdctl/internal/inventory"
	"github.com/herdware/herdctl/internal/provider"
	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

// controlNodeSize is the size hint used when creating a fresh control node.
const controlNodeSize = 512

// sshSettleDelay gives sshd on a fresh server time to come up before
// bootstrap connects.
const sshSettleDelay = 5 * time.Second

// MakeMaster provisions the control node from nothing: create it (replacing
// an existing one if the operator confirms), bootstrap the management
// master onto it, and push the configuration bundles.
func MakeMaster(ctx context.Context, sess *session.Session, stagingDir string) error {
	name := sess.Settings.ControlNode
	hint := SizeHint{Kind: SizeAny, Value: controlNodeSize}

	_, err := sess.Herd(ctx, name)
	switch {
	case inventory.IsNotFound(err):
		if _, err := birthControlNode(ctx, sess, name, hint); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		ui.Danger("Control node (%q) already exists!", name)
		replaced, err := Euthanise(ctx, sess, true)
		if err != nil {
			return err
		}
		if replaced {
			if _, err := birthControlNode(ctx, sess, name, hint); err != nil {
				return err
			}
		}
		// Declined: the existing node stays bound and gets bootstrapped.
	}

	sess.Sleep(sshSettleDelay)
	if err := Bootstrap(ctx, sess, true); err != nil {
		return err
	}
	return Season(ctx, sess, stagingDir)
}

func birthControlNode(ctx context.Context, sess *session.Session, name string, hint SizeHint) (*provider.Server, error) {
	srv, err := Birth(ctx, sess, name, hint, BirthOptions{Wait: true, AdHoc: true})
	if err != nil {
		return nil, err
	}
	// A fresh server answers the API before sshd is up.
	sess.Sleep(sshSettleDelay)
	return srv, nil
}
