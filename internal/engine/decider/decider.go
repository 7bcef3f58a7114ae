// Package decider implements the skip-or-rebuild decision.
package decider

import (
	"fmt"
	"os"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
)

// Decider applies the cache-validity rule: compute the current
// fingerprint, compare it with the stored one, and gate the skip on the
// output directory actually holding something reusable.
type Decider struct {
	fingerprinter ports.Fingerprinter
	store         ports.CacheStore
	logger        ports.Logger
}

// New creates a new Decider.
func New(fingerprinter ports.Fingerprinter, store ports.CacheStore, logger ports.Logger) *Decider {
	return &Decider{
		fingerprinter: fingerprinter,
		store:         store,
		logger:        logger,
	}
}

// Result is the outcome of Decide. On Proceed the caller runs the build
// and hands Fingerprint back to Commit once the build has succeeded.
type Result struct {
	Decision    domain.Decision
	Fingerprint domain.Fingerprint
}

// Decide computes the current fingerprint and decides whether the build
// can be skipped. It never writes the cache store: a stale record after
// a failed build is deliberate, since the record must only ever describe
// a build that completed.
//
// A fingerprint match alone is not enough to skip. If the output
// directory was deleted or emptied between builds, skipping would leave
// no artifact at all, so the output state is a second, independent gate.
func (d *Decider) Decide(spec domain.InputSpec, outputDir string) (Result, error) {
	current, err := d.fingerprinter.ComputeFingerprint(spec)
	if err != nil {
		return Result{}, zerr.Wrap(err, "failed to compute fingerprint")
	}

	stored, err := d.store.Load()
	if err != nil {
		d.logger.Warn(fmt.Sprintf("failed to load cache record, forcing rebuild: %v", err))
		stored = nil
	}

	if stored != nil && stored.Fingerprint == current {
		if inspectOutput(outputDir).Usable() {
			d.logger.Info("build cache is valid and output directory is nonempty, skipping rebuild")
			return Result{Decision: domain.DecisionSkip, Fingerprint: current}, nil
		}
		d.logger.Info("build cache is valid but output directory is missing or empty, rebuilding")
	}

	return Result{Decision: domain.DecisionProceed, Fingerprint: current}, nil
}

// Commit persists the fingerprint of a build the caller reports as
// successful. A write failure is surfaced, not swallowed: the build
// itself succeeded, but the next invocation would rebuild needlessly.
func (d *Decider) Commit(fingerprint domain.Fingerprint) error {
	if err := d.store.Save(domain.CacheRecord{Fingerprint: fingerprint}); err != nil {
		return zerr.Wrap(err, "failed to persist cache record")
	}
	d.logger.Info("build cache updated")
	return nil
}

// inspectOutput observes the output directory at decision time.
func inspectOutput(dir string) domain.OutputState {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return domain.OutputState{}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.OutputState{Exists: true}
	}
	return domain.OutputState{Exists: true, NonEmpty: len(entries) > 0}
}
