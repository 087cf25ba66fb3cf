package ports

import "go.trai.ch/solidc/internal/core/domain"

// SettingsResolver resolves the manifest settings that govern a file.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsResolver interface {
	// Resolve returns the settings of the manifest owning the file.
	// The returned value is shared and must not be modified.
	Resolve(file *domain.SourceFile) (*domain.Settings, error)

	// Watched returns the manifest paths read so far, sorted.
	Watched() []string

	// Reset drops every memoized manifest. Callers use it between independent builds.
	Reset()
}
