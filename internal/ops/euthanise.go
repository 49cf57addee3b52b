package ops

import (
	"context"
	"fmt"

	"github.com/herdware/herdctl/internal/inventory"
	"github.com/herdware/herdctl/internal/poll"
	"github.com/herdware/herdctl/internal/ui"

	"github.com/herdware/herdctl/internal/session"
)

// Euthanise destroys the bound node after explicit confirmation (default is
// to decline). Returns whether the server was deleted.
//
// With wait, the inventory is re-listed once a second until the name is
// gone. Without it, the entry is dropped from the cache immediately and
// provider-side completion is not verified.
func Euthanise(ctx context.Context, sess *session.Session, wait bool) (bool, error) {
	target, err := sess.Target()
	if err != nil {
		return false, err
	}
	srv := target.Server

	confirmed, err := sess.Confirm.Confirm(
		fmt.Sprintf("Really delete server %s:%d???", srv.Name, srv.ID), false)
	if err != nil {
		return false, err
	}
	if !confirmed {
		ui.OK("Ok, not deleting!")
		return false, nil
	}

	if err := sess.Compute.DeleteServer(ctx, srv.ID); err != nil {
		return false, err
	}

	if wait {
		ui.Dim("Waiting for server to go away...")
		err := poll.Until(ctx, func(ctx context.Context) (bool, error) {
			if err := sess.Inventory.Refresh(ctx); err != nil {
				return false, err
			}
			_, err := sess.Inventory.Lookup(srv.Name)
			return inventory.IsNotFound(err), nil
		}, poll.WithInterval(sess.PollInterval), poll.WithSleep(sess.Sleep))
		if err != nil {
			return false, err
		}
	} else {
		sess.Inventory.Remove(srv.Name)
	}

	sess.ClearTarget()
	ui.Danger("Deleted.")
	return true, nil
}
