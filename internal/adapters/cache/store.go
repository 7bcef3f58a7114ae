// Package cache implements the durable fingerprint store backed by a
// single JSON file.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a flat JSON file containing a
// single record, e.g. {"cache_id": "<64-hex digest>"}. The file is an
// opaque cache, not a user-facing artifact; unknown fields are ignored
// on load and the whole record is overwritten on save.
type Store struct {
	path   string
	logger ports.Logger
}

// NewStore creates a new Store backed by the file at the given path.
func NewStore(path string, logger ports.Logger) *Store {
	return &Store{path: filepath.Clean(path), logger: logger}
}

// Load reads the stored cache record. A missing or unparseable record is
// never an error: it is reported as nil, nil so the caller falls back to
// a full rebuild.
func (s *Store) Load() (*domain.CacheRecord, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			s.logger.Warn(fmt.Sprintf("unreadable cache record %s: %v", s.path, err))
		}
		return nil, nil
	}

	var record domain.CacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warn(fmt.Sprintf("corrupt cache record %s: %v", s.path, err))
		return nil, nil
	}
	if record.Fingerprint == "" {
		return nil, nil
	}
	return &record, nil
}

// Save overwrites the stored record. The record is written to a temporary
// file in the same directory and renamed into place so a reader never
// observes a torn write.
func (s *Store) Save(record domain.CacheRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache record")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for cache record")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp cache record")
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to write cache record"), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to write cache record"), "path", s.path)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to replace cache record"), "path", s.path)
	}
	return nil
}
