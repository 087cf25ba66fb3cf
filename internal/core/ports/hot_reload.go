package ports

import "go.trai.ch/solidc/internal/core/domain"

// HotReload supplies the plugin configuration for hot-reloadable fallback files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hot_reload.go -destination=mocks/mock_hot_reload.go -package=mocks
type HotReload interface {
	PluginConfig() []domain.Descriptor
}

// DefaultOptionsSource exposes the host's default preset bundle with and
// without the fallback framework enabled.
type DefaultOptionsSource interface {
	BundleDefaults(withFallback bool) domain.Descriptor
}
