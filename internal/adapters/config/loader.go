// Package config provides the project-file loader for stale.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML project file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Stalefile represents the structure of the stale.yaml project file.
type Stalefile struct {
	// ConfigFile is the host tool's own configuration file (for example
	// mkdocs.yml). Optional; hashed when present.
	ConfigFile string `yaml:"config_file"`
	// InputDir is the content tree fed to the build.
	InputDir string `yaml:"input_dir"`
	// OutputDir is where the build writes its artifact.
	OutputDir string `yaml:"output_dir"`
	// Include is an ordered list of glob patterns selecting extra files
	// that must also influence the fingerprint. Default empty.
	Include []string `yaml:"include"`
}

// Load reads the project file at path and resolves every relative path
// in it against the file's directory.
func (l *Loader) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project file")
	}

	var stalefile Stalefile
	if err := yaml.Unmarshal(data, &stalefile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project file")
	}

	if stalefile.InputDir == "" {
		return nil, zerr.With(domain.ErrMissingInputDir, "path", path)
	}
	if stalefile.OutputDir == "" {
		return nil, zerr.With(domain.ErrMissingOutputDir, "path", path)
	}
	for _, pattern := range stalefile.Include {
		if pattern == "" {
			return nil, zerr.With(zerr.New("include entries must be non-empty strings"), "path", path)
		}
	}

	root := filepath.Dir(path)
	project := &domain.Project{
		Spec: domain.InputSpec{
			InputDir:        resolve(root, stalefile.InputDir),
			IncludePatterns: resolvePatterns(root, stalefile.Include),
		},
		OutputDir: resolve(root, stalefile.OutputDir),
	}
	if stalefile.ConfigFile != "" {
		configFile := resolve(root, stalefile.ConfigFile)
		if _, err := os.Stat(configFile); err != nil {
			l.logger.Warn(fmt.Sprintf("config_file %s not found; it will not affect the fingerprint", configFile))
		}
		project.Spec.ConfigFile = configFile
	}
	return project, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func resolvePatterns(root string, patterns []string) []string {
	if len(patterns) == 0 {
		return nil
	}
	res := make([]string, len(patterns))
	for i, p := range patterns {
		res[i] = resolve(root, p)
	}
	return res
}
