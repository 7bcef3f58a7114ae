package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/app"
	_ "go.trai.ch/stale/internal/wiring"
)

// TestExecuteComponents resolves the full dependency graph the same way
// main does, catching missing or cyclic node registrations.
func TestExecuteComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
