package ops

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/herdware/herdctl/internal/session"
	"github.com/herdware/herdctl/internal/ui"
)

// configBundles are the local directories pushed to the control node, and
// their extraction root on the remote side.
var configBundles = []string{"salt", "pillar"}

const bundleExtractRoot = "/srv/"

// archiveBundle tars a local directory. Replaceable in tests.
var archiveBundle = func(ctx context.Context, archive, dir string) error {
	cmd := exec.CommandContext(ctx, "tar", "-czf", archive, dir)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to archive %s: %w, output: %s", dir, err, output)
	}
	return nil
}

// Season pushes the local configuration bundles (states and pillars) to the
// control node and extracts them into place.
func Season(ctx context.Context, sess *session.Session, stagingDir string) error {
	comm, err := sess.Communicator()
	if err != nil {
		return err
	}

	for _, bundle := range configBundles {
		archive := filepath.Join(stagingDir, bundle+".tar.gz")
		if err := archiveBundle(ctx, archive, bundle); err != nil {
			return err
		}
		remoteArchive := "/tmp/" + bundle + ".tar.gz"
		if err := comm.Upload(ctx, archive, remoteArchive); err != nil {
			return err
		}
		if _, err := comm.Run(ctx, fmt.Sprintf("tar -xzf %s -C %s", remoteArchive, bundleExtractRoot)); err != nil {
			return err
		}
		ui.OK("Seasoned %s", bundle)
	}
	return nil
}
