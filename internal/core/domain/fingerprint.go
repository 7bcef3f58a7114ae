package domain

// FingerprintHexLen is the length of a hex-encoded SHA-256 digest.
const FingerprintHexLen = 64

// Fingerprint is a lowercase hex-encoded SHA-256 digest summarizing the
// byte content of an InputSpec. Equal fingerprints are the proxy for
// "nothing relevant changed".
type Fingerprint string

// String returns the fingerprint as a plain string.
func (f Fingerprint) String() string {
	return string(f)
}

// Valid reports whether f looks like a hex-encoded SHA-256 digest.
func (f Fingerprint) Valid() bool {
	if len(f) != FingerprintHexLen {
		return false
	}
	for _, c := range f {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
