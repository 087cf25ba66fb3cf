package env

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the environment source Graft node.
const NodeID graft.ID = "adapter.env"

func init() {
	graft.Register(graft.Node[*Source]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Source, error) {
			return New(), nil
		},
	})
}
