package manifest_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/solidc/internal/adapters/manifest"
	"go.trai.ch/solidc/internal/core/domain"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	return dir
}

func TestResolve_NearestManifest(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `{"name":"app","solid":{"ssr":true,"hydratable":false,"match":"client/**"}}`)
	dir := mkdir(t, root, "client", "components")

	r := manifest.NewResolver()
	s, err := r.Resolve(&domain.SourceFile{Path: "client/components/a.jsx", Dir: dir})
	require.NoError(t, err)

	assert.True(t, s.SSR)
	assert.False(t, s.IsHydratable())
	assert.Equal(t, domain.Patterns{"client/**"}, s.Match)
	assert.Equal(t, path, s.ManifestPath)
	assert.Equal(t, []string{path}, r.Watched())
}

func TestResolve_Defaults(t *testing.T) {
	t.Run("missing section", func(t *testing.T) {
		root := t.TempDir()
		path := writeManifest(t, root, `{"name":"app"}`)

		s, err := manifest.NewResolver().Resolve(&domain.SourceFile{Dir: root})
		require.NoError(t, err)
		assert.Empty(t, s.Match)
		assert.False(t, s.SSR)
		assert.True(t, s.IsHydratable())
		assert.Equal(t, path, s.ManifestPath)
	})

	t.Run("null section", func(t *testing.T) {
		root := t.TempDir()
		writeManifest(t, root, `{"solid":null}`)

		s, err := manifest.NewResolver().Resolve(&domain.SourceFile{Dir: root})
		require.NoError(t, err)
		assert.True(t, s.IsHydratable())
	})

	t.Run("no directory", func(t *testing.T) {
		s, err := manifest.NewResolver().Resolve(&domain.SourceFile{Path: "a.js"})
		require.NoError(t, err)
		assert.Empty(t, s.ManifestPath)
	})
}

func TestResolve_MalformedManifest(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"solid": {`},
		{"wrong section type", `{"solid": "yes"}`},
		{"wrong field type", `{"solid": {"match": 42}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeManifest(t, root, tt.content)

			r := manifest.NewResolver()
			_, err := r.Resolve(&domain.SourceFile{Dir: root})
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrManifestParseFailed.Error())
			assert.Empty(t, r.Watched())
		})
	}
}

func TestResolve_DependencyOwner(t *testing.T) {
	t.Run("owner manifest governs vendored code", func(t *testing.T) {
		root := t.TempDir()
		owner := writeManifest(t, root, `{"solid":{"ignore":"node_modules/**"}}`)
		dep := filepath.Join(root, "node_modules", "lib")
		writeManifest(t, dep, `{"solid":{"ssr":true}}`)
		srcDir := mkdir(t, dep, "src")

		s, err := manifest.NewResolver().Resolve(&domain.SourceFile{Dir: srcDir})
		require.NoError(t, err)
		assert.Equal(t, owner, s.ManifestPath)
		assert.False(t, s.SSR)
		assert.Equal(t, domain.Patterns{"node_modules/**"}, s.Ignore)
	})

	t.Run("falls back to dependency manifest", func(t *testing.T) {
		root := t.TempDir()
		dep := filepath.Join(root, "node_modules", "lib")
		local := writeManifest(t, dep, `{"solid":{"ssr":true}}`)

		s, err := manifest.NewResolver().Resolve(&domain.SourceFile{Dir: dep})
		require.NoError(t, err)
		assert.Equal(t, local, s.ManifestPath)
		assert.True(t, s.SSR)
	})

	t.Run("innermost dependency directory", func(t *testing.T) {
		root := t.TempDir()
		writeManifest(t, root, `{}`)
		outer := filepath.Join(root, "node_modules", "a")
		outerManifest := writeManifest(t, outer, `{"solid":{"verbose":true}}`)
		inner := filepath.Join(outer, "node_modules", "b")
		writeManifest(t, inner, `{}`)

		path, ok := manifest.Locate(inner)
		require.True(t, ok)
		assert.Equal(t, outerManifest, path)
	})
}

func TestResolve_ParsesOnceConcurrently(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"solid":{"ssr":true}}`)

	r := manifest.NewResolver()
	const workers = 16

	var wg sync.WaitGroup
	results := make([]*domain.Settings, workers)
	for i := range workers {
		wg.Go(func() {
			s, err := r.Resolve(&domain.SourceFile{Dir: root})
			assert.NoError(t, err)
			results[i] = s
		})
	}
	wg.Wait()

	assert.Equal(t, int64(1), r.Parses())
	for _, s := range results {
		assert.Same(t, results[0], s)
	}
}

func TestResolve_ResetAndInvalidate(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `{"solid":{"ssr":false}}`)
	file := &domain.SourceFile{Dir: root}

	r := manifest.NewResolver()
	s, err := r.Resolve(file)
	require.NoError(t, err)
	assert.False(t, s.SSR)

	writeManifest(t, root, `{"solid":{"ssr":true}}`)

	s, err = r.Resolve(file)
	require.NoError(t, err)
	assert.False(t, s.SSR, "memoized until invalidated")

	r.Invalidate(path)
	s, err = r.Resolve(file)
	require.NoError(t, err)
	assert.True(t, s.SSR)

	r.Reset()
	assert.Empty(t, r.Watched())
	assert.Equal(t, int64(2), r.Parses())
}
