package decider

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stale/internal/adapters/cache"
	"go.trai.ch/stale/internal/adapters/fs"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/core/ports"
)

// NodeID is the unique identifier for the Decider Graft node.
const NodeID graft.ID = "engine.decider"

func init() {
	graft.Register(graft.Node[*Decider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FingerprinterNodeID, cache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Decider, error) {
			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(fingerprinter, store, log), nil
		},
	})
}
