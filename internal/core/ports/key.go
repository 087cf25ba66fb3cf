package ports

import "go.trai.ch/solidc/internal/core/domain"

// KeyComputer derives cache fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=key.go -destination=mocks/mock_key.go -package=mocks
type KeyComputer interface {
	// KeyFor returns the fingerprint of one compile request. It is pure.
	KeyFor(
		kind domain.AdapterKind,
		file *domain.SourceFile,
		decision domain.Decision,
		mode domain.Mode,
		optionDigest string,
	) (domain.Fingerprint, error)

	// OptionsDigest returns a stable digest of arbitrary option values.
	OptionsDigest(parts ...any) (string, error)
}
