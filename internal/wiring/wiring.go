// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stale/internal/adapters/cache"
	_ "go.trai.ch/stale/internal/adapters/config"
	_ "go.trai.ch/stale/internal/adapters/fs"
	_ "go.trai.ch/stale/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/stale/internal/app"
	_ "go.trai.ch/stale/internal/engine/decider"
)
