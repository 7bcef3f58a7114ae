package ports

import "go.trai.ch/stale/internal/core/domain"

// ConfigLoader loads the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file at the given path and resolves it into
	// a domain.Project.
	Load(path string) (*domain.Project, error)
}
