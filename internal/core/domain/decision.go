package domain

// Decision is the outcome of the validity check.
type Decision string

const (
	// DecisionSkip signals the caller to abort the build and reuse the
	// existing output. It is an intentional, successful outcome.
	DecisionSkip Decision = "Skip"
	// DecisionProceed signals the caller to run the build.
	DecisionProceed Decision = "Proceed"
)

// OutputState captures the observed state of the output directory at
// decision time. It is derived, never stored.
type OutputState struct {
	Exists   bool
	NonEmpty bool
}

// Usable reports whether the output directory holds anything worth
// reusing.
func (s OutputState) Usable() bool {
	return s.Exists && s.NonEmpty
}
