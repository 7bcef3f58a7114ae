package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/cache"
	"go.trai.ch/stale/internal/adapters/config"
	"go.trai.ch/stale/internal/adapters/fs"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/app"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/engine/decider"
	"go.trai.ch/zerr"
)

func testProvider(t *testing.T) ComponentProvider {
	t.Helper()
	return func(context.Context) (*app.Components, error) {
		log := logger.New()
		log.SetOutput(&bytes.Buffer{})
		walker := fs.NewWalker(log)
		d := decider.New(
			fs.NewFingerprinter(walker, log),
			cache.NewStore(domain.CacheFileName, log),
			log,
		)
		return app.NewComponents(app.New(config.NewLoader(log), d), log), nil
	}
}

func TestRun_ProviderError(t *testing.T) {
	var stderr bytes.Buffer

	code := run(context.Background(), nil, &stderr, func(context.Context) (*app.Components, error) {
		return nil, zerr.New("wiring failed")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_Version(t *testing.T) {
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"version"}, &stderr, testProvider(t))

	require.Equal(t, 0, code)
}

func TestRun_CommandError(t *testing.T) {
	var stderr bytes.Buffer

	// No project file in the working directory, so check fails.
	code := run(context.Background(), []string{"check", "--config", "definitely-missing.yaml"}, &stderr, testProvider(t))

	assert.Equal(t, 1, code)
}
