package config

// Solidfile represents the structure of the solidc.yaml configuration file.
type Solidfile struct {
	Version   string       `yaml:"version"`
	Compiler  CommandDTO   `yaml:"compiler"`
	Alternate AlternateDTO `yaml:"alternate"`
	Cache     CacheDTO     `yaml:"cache"`
	HotReload HotReloadDTO `yaml:"hotReload"`
	Output    string       `yaml:"output"`
}

// CommandDTO represents an external worker command.
type CommandDTO struct {
	Cmd []string `yaml:"cmd"`
}

// AlternateDTO represents the alternate syntax compiler definition.
type AlternateDTO struct {
	Cmd        []string `yaml:"cmd"`
	Extensions []string `yaml:"extensions"`
}

// CacheDTO represents the artifact cache settings.
type CacheDTO struct {
	Dir         string `yaml:"dir"`
	MemoryBytes int64  `yaml:"memoryBytes"`
	DiskBytes   int64  `yaml:"diskBytes"`
	Disabled    bool   `yaml:"disabled"`
}

// HotReloadDTO lists the plugins injected for hot-reloadable files.
type HotReloadDTO struct {
	Plugins []string `yaml:"plugins"`
}
