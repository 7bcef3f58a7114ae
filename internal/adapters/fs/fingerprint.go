package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes SHA-256 digests over a build's input set.
type Fingerprinter struct {
	walker *Walker
	logger ports.Logger
}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter(walker *Walker, logger ports.Logger) *Fingerprinter {
	return &Fingerprinter{walker: walker, logger: logger}
}

// ComputeFingerprint hashes, in order: the config file (when set and
// present), every regular file under the input directory in canonical
// walk order, and every file matched by the include patterns, deduplicated
// and sorted lexicographically. Unreadable files are logged and omitted,
// never fatal. The result is a lowercase hex digest; an empty input set
// yields the digest of zero bytes.
func (f *Fingerprinter) ComputeFingerprint(spec domain.InputSpec) (domain.Fingerprint, error) {
	hasher := sha256.New()

	// Tracks every file already fed to the hash so include patterns
	// cannot hash the same content twice.
	visited := make(map[string]struct{})

	if spec.ConfigFile != "" {
		if _, err := os.Stat(spec.ConfigFile); err == nil {
			f.hashFile(hasher, spec.ConfigFile)
			visited[filepath.Clean(spec.ConfigFile)] = struct{}{}
		}
	}

	if spec.InputDir != "" {
		for path := range f.walker.WalkFiles(spec.InputDir) {
			f.hashFile(hasher, path)
			visited[filepath.Clean(path)] = struct{}{}
		}
	}

	for _, path := range f.expandIncludes(spec.IncludePatterns, visited) {
		f.hashFile(hasher, path)
	}

	return domain.Fingerprint(hex.EncodeToString(hasher.Sum(nil))), nil
}

// expandIncludes resolves the include patterns against the filesystem and
// returns the matched regular files, minus anything in visited, in sorted
// order. Match order and pattern order never leak into the fingerprint.
func (f *Fingerprinter) expandIncludes(patterns []string, visited map[string]struct{}) []string {
	matched := make(map[string]struct{})

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			f.logger.Warn(fmt.Sprintf("bad include pattern %q: %v", pattern, err))
			continue
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			clean := filepath.Clean(match)
			if _, seen := visited[clean]; seen {
				continue
			}
			matched[clean] = struct{}{}
		}
	}

	paths := make([]string, 0, len(matched))
	for path := range matched {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// hashFile feeds the file's raw bytes into the digest. The file is read
// whole and closed before the next file is touched; a read error leaves
// the file's contribution out of the hash entirely.
func (f *Fingerprinter) hashFile(w io.Writer, path string) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		f.logger.Warn(fmt.Sprintf("error reading file %s: %v", path, err))
		return
	}
	_, _ = w.Write(data)
}
