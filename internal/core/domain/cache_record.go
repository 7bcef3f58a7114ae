package domain

// CacheFileName is the default location of the persisted cache record,
// relative to the working directory.
const CacheFileName = "build_cache.json"

// CacheRecord is the last known-good fingerprint, persisted across build
// invocations. It is overwritten whole on every successful build; there
// is no history. Unknown fields in a stored record are ignored on load.
type CacheRecord struct {
	Fingerprint Fingerprint `json:"cache_id"`
}
