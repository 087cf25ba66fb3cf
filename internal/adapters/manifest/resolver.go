// Package manifest resolves the transformation settings of the package
// manifest that governs a source file.
package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Resolver implements ports.SettingsResolver.
// Each manifest path is parsed at most once until Reset or Invalidate.
// Concurrent first requests for the same path share one parse.
type Resolver struct {
	mu      sync.RWMutex
	entries map[string]*domain.Settings

	group  singleflight.Group
	parses atomic.Int64
}

var _ ports.SettingsResolver = (*Resolver)(nil)

// NewResolver creates an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{entries: make(map[string]*domain.Settings)}
}

// Resolve returns the settings governing file. Files without a directory or
// without any enclosing manifest get the defaults.
func (r *Resolver) Resolve(file *domain.SourceFile) (*domain.Settings, error) {
	if file == nil || file.Dir == "" {
		return domain.DefaultSettings(), nil
	}

	path, ok := Locate(file.Dir)
	if !ok {
		return domain.DefaultSettings(), nil
	}
	return r.load(path)
}

// Watched returns the manifest paths read so far, sorted.
func (r *Resolver) Watched() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.entries))
	for p := range r.entries {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Reset drops every memoized manifest.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.entries)
}

// Invalidate drops the memoized settings of one manifest.
func (r *Resolver) Invalidate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, path)
}

func (r *Resolver) cached(path string) (*domain.Settings, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.entries[path]
	return s, ok
}

func (r *Resolver) load(path string) (*domain.Settings, error) {
	if s, ok := r.cached(path); ok {
		return s, nil
	}

	v, err, _ := r.group.Do(path, func() (any, error) {
		if s, ok := r.cached(path); ok {
			return s, nil
		}

		r.parses.Add(1)
		s, err := parse(path)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.entries[path] = s
		r.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	//nolint:forcetypeassert // singleflight returns what the closure returned
	return v.(*domain.Settings), nil
}

// Locate finds the manifest governing files in dir. The nearest manifest
// wins unless it lies inside a dependency directory, in which case the
// manifest of the directory owning that dependency directory is used when it
// exists.
func Locate(dir string) (string, bool) {
	nearest, ok := nearestManifest(dir)
	if !ok {
		return "", false
	}

	owner, inside := dependencyOwner(filepath.Dir(nearest))
	if !inside {
		return nearest, true
	}

	candidate := filepath.Join(owner, domain.ManifestFileName)
	if isFile(candidate) {
		return candidate, true
	}
	return nearest, true
}

func nearestManifest(startDir string) (string, bool) {
	dir := filepath.Clean(startDir)
	for {
		candidate := filepath.Join(dir, domain.ManifestFileName)
		if isFile(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// dependencyOwner returns the parent of the innermost dependency directory
// that contains dir.
func dependencyOwner(dir string) (string, bool) {
	for current := dir; ; {
		if filepath.Base(current) == domain.DependencyDirName {
			return filepath.Dir(current), true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func parse(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered by walking the source tree
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "manifest", path)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "manifest", path)
	}

	settings := domain.DefaultSettings()
	settings.ManifestPath = path

	raw, ok := doc[domain.ManifestSection]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return settings, nil
	}

	if err := json.Unmarshal(raw, settings); err != nil {
		return nil, zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "manifest", path),
			"section", domain.ManifestSection,
		)
	}
	settings.ManifestPath = path
	return settings, nil
}
