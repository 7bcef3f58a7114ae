package cache_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/cache"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/core/domain"
)

func newStore(t *testing.T, path string) (*cache.Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)
	return cache.NewStore(path, log), &buf
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_cache.json")
	store, _ := newStore(t, path)

	record := domain.CacheRecord{Fingerprint: "deadbeef"}
	require.NoError(t, store.Save(record))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.Fingerprint, got.Fingerprint)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store, buf := newStore(t, filepath.Join(t.TempDir(), "build_cache.json"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
	// A missing record is the normal first-run state, not worth a warning.
	assert.Empty(t, buf.String())
}

func TestStore_LoadCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, buf := newStore(t, path)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Contains(t, buf.String(), "corrupt cache record")
}

func TestStore_LoadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cache_id":"cafe","written_by":"a future version"}`), 0o644))

	store, _ := newStore(t, path)

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.Fingerprint("cafe"), got.Fingerprint)
}

func TestStore_LoadEmptyFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	store, _ := newStore(t, path)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveOverwritesWhole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_cache.json")
	store, _ := newStore(t, path)

	require.NoError(t, store.Save(domain.CacheRecord{Fingerprint: "0001"}))
	require.NoError(t, store.Save(domain.CacheRecord{Fingerprint: "0002"}))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.Fingerprint("0002"), got.Fingerprint)

	// The record on disk is the single-field JSON object, nothing merged.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]any{"cache_id": "0002"}, raw)
}

func TestStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "build_cache.json")
	store, _ := newStore(t, path)

	require.NoError(t, store.Save(domain.CacheRecord{Fingerprint: "beef"}))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.Fingerprint("beef"), got.Fingerprint)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, _ := newStore(t, filepath.Join(dir, "build_cache.json"))

	require.NoError(t, store.Save(domain.CacheRecord{Fingerprint: "feed"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "build_cache.json", entries[0].Name())
}
