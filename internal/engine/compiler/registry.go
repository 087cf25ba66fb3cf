package compiler

import (
	"context"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extensions handled by the built-in adapters.
var (
	DirectExtensions = []string{"js", "jsx", "mjs"}
	TypedExtensions  = []string{"ts", "tsx"}
)

// Registry maps file extensions to adapters.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register binds adapter to every extension in exts. Extensions are written
// without a leading dot; binding an extension twice is an error.
func (r *Registry) Register(adapter Adapter, exts ...string) error {
	for _, ext := range exts {
		ext = strings.TrimPrefix(ext, ".")
		if existing, ok := r.adapters[ext]; ok {
			err := zerr.With(domain.ErrExtensionConflict, "extension", ext)
			return zerr.With(err, "registered", string(existing.Kind()))
		}
	}
	for _, ext := range exts {
		r.adapters[strings.TrimPrefix(ext, ".")] = adapter
	}
	return nil
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	return slices.Sorted(maps.Keys(r.adapters))
}

// Lookup returns the adapter for path, matching the longest registered extension.
func (r *Registry) Lookup(path string) (Adapter, error) {
	ext := longestSuffix(path, r.Extensions())
	if ext == "" {
		return nil, zerr.With(domain.ErrNoCompilerForExtension, "file", path)
	}
	return r.adapters[ext], nil
}

// ProcessFiles groups files by adapter and compiles each group.
// Outputs are returned in the order of their source files.
func (r *Registry) ProcessFiles(ctx context.Context, files []*domain.SourceFile) ([]domain.Output, error) {
	var order []Adapter
	groups := make(map[Adapter][]*domain.SourceFile)
	position := make(map[string]int, len(files))

	for i, file := range files {
		adapter, err := r.Lookup(file.Path)
		if err != nil {
			return nil, err
		}
		if _, ok := groups[adapter]; !ok {
			order = append(order, adapter)
		}
		groups[adapter] = append(groups[adapter], file)
		position[file.Path] = i
	}

	var outputs []domain.Output
	for _, adapter := range order {
		out, err := adapter.ProcessFiles(ctx, groups[adapter])
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out...)
	}

	slices.SortStableFunc(outputs, func(a, b domain.Output) int {
		return position[a.SourcePath] - position[b.SourcePath]
	})
	return outputs, nil
}
