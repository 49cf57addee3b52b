package ops

import (
	"context"
	"os"
	"os/exec"

	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

// runSSH execs the system ssh client against the target. Replaceable in
// tests.
var runSSH = func(ctx context.Context, host string) error {
	cmd := exec.CommandContext(ctx, "ssh", host)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Shell opens an interactive shell on the bound node using the system ssh
// client, printing the current credential first so the operator can paste
// it.
func Shell(ctx context.Context, sess *session.Session) error {
	target, err := sess.Target()
	if err != nil {
		return err
	}
	ui.Info("Password is currently: %s", ui.Secret(target.Password))
	return runSSH(ctx, target.SSHHost())
}
