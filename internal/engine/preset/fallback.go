package preset

import (
	"encoding/json"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
)

// FallbackSet is the set of presets and plugins the fallback framework adds to
// the host bundle.
type FallbackSet struct {
	Presets []domain.Descriptor
	Plugins []domain.Descriptor
}

// Empty reports whether the set adds nothing.
func (f FallbackSet) Empty() bool {
	return len(f.Presets) == 0 && len(f.Plugins) == 0
}

// ReactFallback returns the statically known fallback framework set.
func ReactFallback() FallbackSet {
	return FallbackSet{
		Presets: []domain.Descriptor{
			{Name: "@babel/preset-react"},
		},
		Plugins: []domain.Descriptor{
			{Name: "@babel/plugin-proposal-class-properties", Options: map[string]any{"loose": true}},
		},
	}
}

// DiffFallback derives the fallback set from the host's own defaults: every
// descriptor present in the bundle with the fallback framework enabled and
// absent from the bundle without it. Descriptors are compared by their JSON form.
func DiffFallback(src ports.DefaultOptionsSource) FallbackSet {
	with := src.BundleDefaults(true)
	without := src.BundleDefaults(false)
	return FallbackSet{
		Presets: difference(with.Presets, without.Presets),
		Plugins: difference(with.Plugins, without.Plugins),
	}
}

func difference(all, base []domain.Descriptor) []domain.Descriptor {
	seen := make(map[string]bool, len(base))
	for _, d := range base {
		seen[descriptorKey(d)] = true
	}

	var out []domain.Descriptor
	for _, d := range all {
		if !seen[descriptorKey(d)] {
			out = append(out, d.Clone())
		}
	}
	return out
}

func descriptorKey(d domain.Descriptor) string {
	data, err := json.Marshal(d)
	if err != nil {
		return d.Name
	}
	return string(data)
}

// HotReloadPlugins is a ports.HotReload backed by a fixed list of plugin names.
type HotReloadPlugins []string

var _ ports.HotReload = HotReloadPlugins(nil)

// PluginConfig returns one descriptor per configured plugin.
func (h HotReloadPlugins) PluginConfig() []domain.Descriptor {
	out := make([]domain.Descriptor, 0, len(h))
	for _, name := range h {
		out = append(out, domain.Descriptor{Name: name})
	}
	return out
}
