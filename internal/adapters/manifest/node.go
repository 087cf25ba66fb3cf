package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/solidc/internal/core/ports"
)

// NodeID is the unique identifier for the manifest resolver Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.SettingsResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsResolver, error) {
			return NewResolver(), nil
		},
	})
}
