package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingInputDir is returned when the project file does not name
	// an input directory.
	ErrMissingInputDir = zerr.New("input_dir is required")

	// ErrMissingOutputDir is returned when the project file does not name
	// an output directory.
	ErrMissingOutputDir = zerr.New("output_dir is required")

	// ErrInvalidFingerprint is returned when a commit token is not a
	// hex-encoded SHA-256 digest.
	ErrInvalidFingerprint = zerr.New("invalid fingerprint")
)
