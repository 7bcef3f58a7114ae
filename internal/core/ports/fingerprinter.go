// Package ports defines the interfaces between the core and the adapters.
package ports

import "go.trai.ch/stale/internal/core/domain"

// Fingerprinter computes the digest of a build's input set.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// ComputeFingerprint hashes the inputs described by spec into a
	// single deterministic digest. Unreadable individual files are
	// logged and omitted; they never fail the computation.
	ComputeFingerprint(spec domain.InputSpec) (domain.Fingerprint, error)
}
