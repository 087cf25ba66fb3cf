package strategy

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the strategy selector Graft node.
const NodeID graft.ID = "engine.strategy"

func init() {
	graft.Register(graft.Node[*Selector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Selector, error) {
			return NewSelector(), nil
		},
	})
}
