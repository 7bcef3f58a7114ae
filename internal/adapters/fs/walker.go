// Package fs provides the filesystem adapters: the canonical-order
// walker and the fingerprint engine.
package fs

import (
	"fmt"
	iofs "io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/stale/internal/core/ports"
)

// Walker enumerates regular files under a root in canonical order.
type Walker struct {
	logger ports.Logger
}

// NewWalker creates a new Walker.
func NewWalker(logger ports.Logger) *Walker {
	return &Walker{logger: logger}
}

// WalkFiles yields every regular file below root, depth first, with the
// entries of each directory visited in name order. The canonical order
// is what makes the fingerprint reproducible across platforms; unordered
// directory iteration would not be.
//
// Unreadable directories are logged at warning level and skipped so a
// transient permission error cannot fail the walk.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				w.logger.Warn(fmt.Sprintf("skipping unreadable path %s: %v", path, err))
				return nil
			}

			// WalkDir reads each directory's entries in lexical order,
			// which is exactly the canonical order we need.
			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
