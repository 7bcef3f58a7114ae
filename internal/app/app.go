// Package app implements the application layer for stale.
package app

import (
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/decider"
	"go.trai.ch/zerr"
)

// App represents the main application logic. It glues the project
// loader to the decision engine for the two host hooks: the pre-build
// check and the post-build commit.
type App struct {
	configLoader ports.ConfigLoader
	decider      *decider.Decider
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, d *decider.Decider) *App {
	return &App{
		configLoader: loader,
		decider:      d,
	}
}

// Check is the pre-build hook. It loads the project file and runs the
// skip-or-rebuild decision. On Proceed the returned fingerprint is the
// token the caller must hand to Commit after a successful build.
func (a *App) Check(configPath string) (decider.Result, error) {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return decider.Result{}, zerr.Wrap(err, "failed to load project configuration")
	}
	return a.decider.Decide(project.Spec, project.OutputDir)
}

// Commit is the post-build hook. The host calls it only after a
// successful build, with the fingerprint returned by Check.
func (a *App) Commit(fingerprint domain.Fingerprint) error {
	if !fingerprint.Valid() {
		return zerr.With(domain.ErrInvalidFingerprint, "fingerprint", fingerprint.String())
	}
	return a.decider.Commit(fingerprint)
}
