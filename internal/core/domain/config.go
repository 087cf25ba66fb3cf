package domain

// ToolConfig is the resolved solidc.yaml configuration.
type ToolConfig struct {
	// Root is the directory the config was found in, or the working directory.
	Root string
	// Path is the config file path, empty when defaults are used.
	Path string

	Compiler  CommandConfig
	Alternate AlternateConfig
	Cache     CacheConfig
	HotReload HotReloadConfig
	OutDir    string
}

// CommandConfig describes an external worker command.
type CommandConfig struct {
	Command []string
}

// AlternateConfig configures the alternate syntax compiler.
type AlternateConfig struct {
	Command    []string
	Extensions []string
}

// Enabled reports whether an alternate compiler is configured.
func (a AlternateConfig) Enabled() bool {
	return len(a.Command) > 0 && len(a.Extensions) > 0
}

// CacheConfig configures both artifact cache tiers.
type CacheConfig struct {
	Dir          string
	MemoryBudget int64
	DiskBudget   int64
	Disabled     bool
}

// HotReloadConfig lists the plugins injected for hot-reloadable fallback files.
type HotReloadConfig struct {
	Plugins []string
}

// DefaultToolConfig returns the configuration used when no solidc.yaml exists.
func DefaultToolConfig(root string) *ToolConfig {
	return &ToolConfig{
		Root: root,
		Alternate: AlternateConfig{
			Extensions: []string{"coffee", "litcoffee", "coffee.md"},
		},
		Cache: CacheConfig{
			Dir:          DefaultCachePath(),
			MemoryBudget: DefaultMemoryBudget,
			DiskBudget:   DefaultDiskBudget,
		},
		HotReload: HotReloadConfig{
			Plugins: []string{"react-refresh/babel"},
		},
		OutDir: DefaultOutPath(),
	}
}
