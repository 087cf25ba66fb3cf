// Package config provides the configuration loader for solidc.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load searches for solidc.yaml from cwd upward. When no file exists the
// defaults are returned, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.ToolConfig, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	path, found := findConfiguration(absCwd)
	if !found {
		if l.Logger != nil {
			l.Logger.Debug("no config file found, using defaults", "cwd", absCwd)
		}
		return resolvePaths(domain.DefaultToolConfig(absCwd)), nil
	}

	var file Solidfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	cfg := apply(domain.DefaultToolConfig(filepath.Dir(path)), &file)
	cfg.Path = path
	return resolvePaths(cfg), nil
}

// findConfiguration walks up from startDir until it finds solidc.yaml.
func findConfiguration(startDir string) (string, bool) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, domain.ToolFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func readAndUnmarshalYAML(path string, out *Solidfile) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func apply(cfg *domain.ToolConfig, file *Solidfile) *domain.ToolConfig {
	if len(file.Compiler.Cmd) > 0 {
		cfg.Compiler.Command = file.Compiler.Cmd
	}
	if len(file.Alternate.Cmd) > 0 {
		cfg.Alternate.Command = file.Alternate.Cmd
	}
	if file.Alternate.Extensions != nil {
		cfg.Alternate.Extensions = normalizeExtensions(file.Alternate.Extensions)
	}
	if file.Cache.Dir != "" {
		cfg.Cache.Dir = file.Cache.Dir
	}
	if file.Cache.MemoryBytes > 0 {
		cfg.Cache.MemoryBudget = file.Cache.MemoryBytes
	}
	if file.Cache.DiskBytes > 0 {
		cfg.Cache.DiskBudget = file.Cache.DiskBytes
	}
	cfg.Cache.Disabled = file.Cache.Disabled
	if file.HotReload.Plugins != nil {
		cfg.HotReload.Plugins = file.HotReload.Plugins
	}
	if file.Output != "" {
		cfg.OutDir = file.Output
	}
	return cfg
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

func resolvePaths(cfg *domain.ToolConfig) *domain.ToolConfig {
	if !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(cfg.Root, cfg.Cache.Dir)
	}
	if !filepath.IsAbs(cfg.OutDir) {
		cfg.OutDir = filepath.Join(cfg.Root, cfg.OutDir)
	}
	return cfg
}
