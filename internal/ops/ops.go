// Package ops implements the lifecycle operations: birth, brand, euthanise,
// pasture, graze, bootstrap, season, and shell. Each operation runs against
// an explicit session and is fully complete or aborted before the next
// begins.
package ops

import (
	"context"
	"fmt"
	"strings"

	"github.com/herdware/herdctl/internal/provider"
	"github.com/herdware/herdctl/internal/session"
)

// SizeKind tags how a size hint should be matched against the flavor
// catalog.
type SizeKind int

const (
	// SizeAny matches a flavor whose RAM or disk equals the hint,
	// first match wins. When both coincide on one flavor the choice is
	// that flavor; across flavors, catalog order decides.
	SizeAny SizeKind = iota
	// SizeRAM matches on RAM only.
	SizeRAM
	// SizeDisk matches on disk only.
	SizeDisk
)

// SizeHint selects a compute flavor by numeric size.
type SizeHint struct {
	Kind  SizeKind
	Value float64
}

// Matches reports whether the flavor satisfies the hint.
func (h SizeHint) Matches(f *provider.Flavor) bool {
	switch h.Kind {
	case SizeRAM:
		return f.RAM == h.Value
	case SizeDisk:
		return f.Disk == h.Value
	default:
		return f.RAM == h.Value || f.Disk == h.Value
	}
}

// matchImage resolves the configured image selector against the catalog by
// substring match. No match is a fatal precondition failure.
func matchImage(ctx context.Context, sess *session.Session) (*provider.Image, error) {
	images, err := sess.Compute.ListImages(ctx)
	if err != nil {
		return nil, err
	}
	selector := sess.Settings.Image
	for _, img := range images {
		if strings.Contains(img.Name, selector) || strings.Contains(img.Description, selector) {
			return img, nil
		}
	}
	return nil, fmt.Errorf("no image matching %q in the provider catalog", selector)
}

// matchFlavor resolves a size hint against the flavor catalog. No match is
// a fatal precondition failure, never an arbitrary substitute.
func matchFlavor(ctx context.Context, sess *session.Session, hint SizeHint) (*provider.Flavor, error) {
	flavors, err := sess.Compute.ListFlavors(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range flavors {
		if hint.Matches(f) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("no flavor with RAM or disk of %v in the provider catalog", hint.Value)
}
