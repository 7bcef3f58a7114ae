package ports

import "go.trai.ch/stale/internal/core/domain"

// CacheStore persists the last known-good fingerprint.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Load retrieves the stored cache record.
	// Returns nil, nil when no usable record exists.
	Load() (*domain.CacheRecord, error)

	// Save overwrites the stored record. A concurrent reader never
	// observes a partially written record.
	Save(record domain.CacheRecord) error
}
