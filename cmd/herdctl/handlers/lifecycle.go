package handlers

import (
	"context"
	"os"

	"github.com/herdware/herdctl/internal/ops"
	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

// Herd handles the herd command: resolve the name and bind a session to it.
func Herd(ctx context.Context, opts Options, name string) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	srv, err := sess.Herd(ctx, name)
	if err != nil {
		return err
	}
	ui.OK("Ok, found server %s:%d", srv.Name, srv.ID)
	return nil
}

// Birth handles the birth command.
func Birth(ctx context.Context, opts Options, name string, hint ops.SizeHint, birthOpts ops.BirthOptions) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	if err := sess.Inventory.Refresh(ctx); err != nil {
		return err
	}
	_, err = ops.Birth(ctx, sess, name, hint, birthOpts)
	return err
}

// Euthanise handles the euthanise command. A declined confirmation is not
// an error: the command reports and leaves everything as it was.
func Euthanise(ctx context.Context, opts Options, name string, wait, yes bool) error {
	var extra []session.Option
	if yes {
		extra = append(extra, session.WithConfirmer(ui.AutoConfirmer{Answer: true}))
	}
	sess, err := newSession(opts, extra...)
	if err != nil {
		return err
	}
	if _, err := sess.Herd(ctx, name); err != nil {
		return err
	}
	_, err = ops.Euthanise(ctx, sess, wait)
	return err
}

// Brand handles the brand command.
func Brand(ctx context.Context, opts Options, name string, aliases []string) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	if _, err := sess.Herd(ctx, name); err != nil {
		return err
	}
	return ops.Brand(ctx, sess, aliases)
}

// Pasture handles the pasture command. With attachTo set, the volume is
// attached to that node and formatted after creation.
func Pasture(ctx context.Context, opts Options, name string, sizeGB int, medium, attachTo string) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	if attachTo != "" {
		if _, err := sess.Herd(ctx, attachTo); err != nil {
			return err
		}
	}
	_, err = ops.Pasture(ctx, sess, name, sizeGB, medium)
	return err
}

// Graze handles the graze command.
func Graze(ctx context.Context, opts Options, serverName, volumeName string, grazeOpts ops.GrazeOptions) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	if _, err := sess.Herd(ctx, serverName); err != nil {
		return err
	}
	return ops.Graze(ctx, sess, volumeName, grazeOpts)
}

// Bootstrap handles the bootstrap command.
func Bootstrap(ctx context.Context, opts Options, name string, master bool) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	if _, err := sess.Herd(ctx, name); err != nil {
		return err
	}
	return ops.Bootstrap(ctx, sess, master)
}

// Season handles the season command, which always targets the control node.
func Season(ctx context.Context, opts Options) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	if _, err := sess.Herd(ctx, sess.Settings.ControlNode); err != nil {
		return err
	}
	return ops.Season(ctx, sess, os.TempDir())
}

// MakeMaster handles the make-master command.
func MakeMaster(ctx context.Context, opts Options) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	return ops.MakeMaster(ctx, sess, os.TempDir())
}

// Shell handles the shell command.
func Shell(ctx context.Context, opts Options, name string) error {
	sess, err := newSession(opts)
	if err != nil {
		return err
	}
	if _, err := sess.Herd(ctx, name); err != nil {
		return err
	}
	return ops.Shell(ctx, sess)
}
