// Package domain contains the core types for the stale build-skip gate.
package domain

// InputSpec describes the set of inputs that feed a build fingerprint.
// It is constructed fresh for every invocation and never mutated.
type InputSpec struct {
	// ConfigFile is the path to the host tool's main configuration file.
	// Optional; an empty or missing path contributes nothing to the
	// fingerprint.
	ConfigFile string

	// InputDir is the root of the content tree. Every regular file below
	// it contributes to the fingerprint.
	InputDir string

	// IncludePatterns are glob patterns (with ** support) selecting extra
	// files outside InputDir. Pattern order does not affect the
	// fingerprint.
	IncludePatterns []string
}

// Project is the resolved project configuration handed to the
// application layer by the config loader.
type Project struct {
	Spec      InputSpec
	OutputDir string
}
