package ports

import "go.trai.ch/solidc/internal/core/domain"

// ArtifactStore is the durable tier of the compiled artifact cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Get retrieves the artifact for a fingerprint.
	// Returns nil, nil if not found.
	Get(fp domain.Fingerprint) (*domain.Artifact, error)

	// Put stores the artifact under the fingerprint.
	Put(fp domain.Fingerprint, artifact *domain.Artifact) error

	// Purge removes every stored artifact.
	Purge() error
}
