// Package preset turns a strategy decision into additions to the external
// compiler's preset and plugin lists.
//
// The compiler applies presets in reverse order: a descriptor appended earlier
// runs later.
package preset

import (
	"maps"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// PrimaryPreset is the name of the primary framework preset.
	PrimaryPreset = "solid"
	// AliasPlugin is the name of the module aliasing preset used in development.
	AliasPlugin = "module-resolver"
)

// DevAliases maps the primary framework's runtime modules to their
// development builds.
var DevAliases = map[string]any{
	"solid-js":       "solid-js/dist/dev.js",
	"solid-js/web":   "solid-js/web/dist/dev.js",
	"solid-js/store": "solid-js/store/dist/dev.js",
}

// Option configures a Composer.
type Option func(*Composer)

// WithFallback replaces the fallback set.
func WithFallback(set FallbackSet) Option {
	return func(c *Composer) {
		c.fallback = set
	}
}

// WithHotReload enables hot-reload plugins for fallback files that support
// incremental recompilation.
func WithHotReload(h ports.HotReload) Option {
	return func(c *Composer) {
		c.hotReload = h
	}
}

// Composer extends compile options according to a decision. It only ever
// appends; existing entries are never removed or reordered.
type Composer struct {
	logger    ports.Logger
	fallback  FallbackSet
	hotReload ports.HotReload
}

// NewComposer creates a Composer using ReactFallback unless overridden.
func NewComposer(logger ports.Logger, opts ...Option) *Composer {
	c := &Composer{logger: logger, fallback: ReactFallback()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose appends the descriptors selected by decision to opts.
func (c *Composer) Compose(
	file *domain.SourceFile,
	settings *domain.Settings,
	decision domain.Decision,
	opts *domain.CompileOptions,
) error {
	if opts == nil {
		return zerr.With(zerr.New("compile options are nil"), "path", file.Path)
	}

	var appended []domain.Descriptor
	switch {
	case decision.Variant != domain.VariantNone:
		appended = c.composePrimary(decision, opts)
	case !decision.UsePrimary:
		appended = c.composeFallback(file, opts)
	}

	if settings != nil && settings.Verbose && c.logger != nil {
		c.logger.Info("composed presets",
			"path", file.Path,
			"package", file.PackageName(),
			"arch", file.Arch.Role(),
			"strategy", decision.Strategy(),
			"variant", decision.Variant.String(),
			"appended", appended,
		)
	}
	return nil
}

func (c *Composer) composePrimary(decision domain.Decision, opts *domain.CompileOptions) []domain.Descriptor {
	var appended []domain.Descriptor
	if decision.DevAliasing {
		appended = append(appended, aliasDescriptor())
	}
	appended = append(appended, primaryDescriptor(decision))

	opts.Presets = append(opts.Presets, appended...)
	return appended
}

func (c *Composer) composeFallback(file *domain.SourceFile, opts *domain.CompileOptions) []domain.Descriptor {
	var appended []domain.Descriptor

	if len(opts.Presets) == 0 {
		opts.Presets = []domain.Descriptor{domain.NewBundle()}
	}

	if !opts.Presets[0].Bundle {
		if c.logger != nil {
			c.logger.Warn("first preset is not the host bundle, skipping fallback presets",
				"path", file.Path, "preset", opts.Presets[0].Name)
		}
	} else if !c.fallback.Empty() {
		bundle := opts.Presets[0].Clone()
		bundle.Presets = append(bundle.Presets, cloneAll(c.fallback.Presets)...)
		bundle.Plugins = append(bundle.Plugins, cloneAll(c.fallback.Plugins)...)
		opts.Presets[0] = bundle

		appended = append(appended, c.fallback.Presets...)
		appended = append(appended, c.fallback.Plugins...)
	}

	if c.hotReload != nil && file.HMRAvailable {
		plugins := c.hotReload.PluginConfig()
		opts.Plugins = append(opts.Plugins, plugins...)
		appended = append(appended, plugins...)
	}
	return appended
}

func primaryDescriptor(decision domain.Decision) domain.Descriptor {
	switch decision.Variant {
	case domain.VariantClientSSR:
		return domain.Descriptor{
			Name:    PrimaryPreset,
			Options: map[string]any{"generate": "dom", "hydratable": decision.Hydratable},
		}
	case domain.VariantServerSSR:
		return domain.Descriptor{
			Name:    PrimaryPreset,
			Options: map[string]any{"generate": "ssr", "hydratable": decision.Hydratable},
		}
	default:
		return domain.Descriptor{Name: PrimaryPreset}
	}
}

func aliasDescriptor() domain.Descriptor {
	return domain.Descriptor{
		Name:    AliasPlugin,
		Options: map[string]any{"alias": maps.Clone(DevAliases)},
	}
}

func cloneAll(in []domain.Descriptor) []domain.Descriptor {
	out := make([]domain.Descriptor, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}
