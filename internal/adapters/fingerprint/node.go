package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/solidc/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprint computer Graft node.
const NodeID graft.ID = "adapter.fingerprint"

func init() {
	graft.Register(graft.Node[ports.KeyComputer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeyComputer, error) {
			return NewComputer(), nil
		},
	})
}
