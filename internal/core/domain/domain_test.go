package domain_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/solidc/internal/core/domain"
)

func TestArch(t *testing.T) {
	tests := []struct {
		arch   domain.Arch
		client bool
		role   string
	}{
		{"web.browser", true, "client"},
		{"web.browser.legacy", true, "client"},
		{"web.cordova", true, "client"},
		{"os", false, "server"},
		{"os.linux.x86_64", false, "server"},
		{"", false, "server"},
	}

	for _, tt := range tests {
		t.Run(string(tt.arch), func(t *testing.T) {
			assert.Equal(t, tt.client, tt.arch.IsClient())
			assert.Equal(t, tt.role, tt.arch.Role())
		})
	}
}

func TestSourceFile(t *testing.T) {
	f := &domain.SourceFile{Path: "client/types.d.ts"}
	assert.True(t, f.IsDeclaration())
	assert.Equal(t, "ts", f.Ext())
	assert.Equal(t, "app", f.PackageName())

	g := &domain.SourceFile{Path: "lib/x.tsx", Package: "my:pkg"}
	assert.False(t, g.IsDeclaration())
	assert.Equal(t, "tsx", g.Ext())
	assert.Equal(t, "my:pkg", g.PackageName())

	clone := g.WithContents("lib/x.js", []byte("code"))
	assert.Equal(t, "lib/x.js", clone.Path)
	assert.Equal(t, "my:pkg", clone.Package)
	assert.Equal(t, "lib/x.tsx", g.Path)
}

func TestSettings_Unmarshal(t *testing.T) {
	t.Run("string patterns", func(t *testing.T) {
		var s domain.Settings
		require.NoError(t, json.Unmarshal([]byte(`{"match":"src/**","ignore":["a","b"]}`), &s))
		assert.Equal(t, domain.Patterns{"src/**"}, s.Match)
		assert.Equal(t, domain.Patterns{"a", "b"}, s.Ignore)
		assert.True(t, s.IsHydratable())
	})

	t.Run("empty forms", func(t *testing.T) {
		var s domain.Settings
		require.NoError(t, json.Unmarshal([]byte(`{"match":[],"ignore":""}`), &s))
		assert.NotNil(t, s.Match)
		assert.Empty(t, s.Match)
		assert.Nil(t, s.Ignore)
	})

	t.Run("hydratable false", func(t *testing.T) {
		var s domain.Settings
		require.NoError(t, json.Unmarshal([]byte(`{"ssr":true,"hydratable":false}`), &s))
		assert.True(t, s.SSR)
		assert.False(t, s.IsHydratable())
	})

	t.Run("wrong type", func(t *testing.T) {
		var s domain.Settings
		require.Error(t, json.Unmarshal([]byte(`{"match":42}`), &s))
	})

	t.Run("defaults", func(t *testing.T) {
		s := domain.DefaultSettings()
		assert.Empty(t, s.Match)
		assert.False(t, s.SSR)
		assert.True(t, s.IsHydratable())
		assert.Empty(t, s.ManifestPath)
	})
}

func TestVariant_String(t *testing.T) {
	assert.Equal(t, "none", domain.VariantNone.String())
	assert.Equal(t, "client-only", domain.VariantClientOnly.String())
	assert.Equal(t, "client-ssr", domain.VariantClientSSR.String())
	assert.Equal(t, "server-ssr", domain.VariantServerSSR.String())

	var v domain.Variant
	require.NoError(t, v.UnmarshalText([]byte("server-ssr")))
	assert.Equal(t, domain.VariantServerSSR, v)
	require.Error(t, v.UnmarshalText([]byte("hybrid")))

	assert.Equal(t, "solid", domain.Decision{UsePrimary: true}.Strategy())
	assert.Equal(t, "react", domain.Decision{}.Strategy())
}

func TestDescriptor_JSON(t *testing.T) {
	t.Run("name only", func(t *testing.T) {
		data, err := json.Marshal(domain.Descriptor{Name: "solid"})
		require.NoError(t, err)
		assert.JSONEq(t, `["solid"]`, string(data))
	})

	t.Run("with options", func(t *testing.T) {
		d := domain.Descriptor{Name: "solid", Options: map[string]any{"generate": "ssr", "hydratable": true}}
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `["solid",{"generate":"ssr","hydratable":true}]`, string(data))
	})

	t.Run("bundle", func(t *testing.T) {
		b := domain.NewBundle()
		b.Plugins = append(b.Plugins, domain.Descriptor{Name: "x"})
		data, err := json.Marshal(b)
		require.NoError(t, err)
		assert.JSONEq(t, `{"presets":[],"plugins":[["x"]]}`, string(data))
	})

	t.Run("decode forms", func(t *testing.T) {
		var list []domain.Descriptor
		require.NoError(t, json.Unmarshal([]byte(`["a",["b"],["c",{"loose":true}],{"presets":[["d"]]}]`), &list))
		require.Len(t, list, 4)
		assert.Equal(t, "a", list[0].Name)
		assert.Equal(t, "b", list[1].Name)
		assert.Equal(t, true, list[2].Options["loose"])
		assert.True(t, list[3].Bundle)
		assert.Equal(t, "d", list[3].Presets[0].Name)
	})

	t.Run("bad tuple", func(t *testing.T) {
		var d domain.Descriptor
		require.Error(t, json.Unmarshal([]byte(`[]`), &d))
		require.Error(t, json.Unmarshal([]byte(`42`), &d))
	})
}

func TestDescriptor_Clone(t *testing.T) {
	orig := domain.Descriptor{Bundle: true, Presets: []domain.Descriptor{{Name: "a"}}}
	clone := orig.Clone()
	clone.Presets = append(clone.Presets, domain.Descriptor{Name: "b"})
	clone.Presets[0].Name = "changed"

	assert.Len(t, orig.Presets, 1)
	assert.Equal(t, "a", orig.Presets[0].Name)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, domain.ModeProduction, domain.ParseMode("production"))
	assert.Equal(t, domain.ModeDevelopment, domain.ParseMode(""))
	assert.Equal(t, domain.ModeDevelopment, domain.ParseMode("Production"))
	assert.Equal(t, domain.ModeDevelopment, domain.ParseMode("test"))
	assert.True(t, domain.ModeDevelopment.IsDevelopment())
	assert.False(t, domain.ModeProduction.IsDevelopment())
}

func TestArtifactSize(t *testing.T) {
	a := domain.NewArtifact("abc", json.RawMessage(`{}`))
	assert.Equal(t, int64(5), a.Size)
}

func TestFingerprint_Shard(t *testing.T) {
	assert.Equal(t, "ab", domain.Fingerprint("abcdef").Shard())
	assert.Equal(t, "00", domain.Fingerprint("a").Shard())
}

func TestLayoutPaths(t *testing.T) {
	assert.Equal(t, filepath.Join(".solidc", "cache"), domain.DefaultCachePath())
	assert.Equal(t, filepath.Join(".solidc", "out"), domain.DefaultOutPath())

	cfg := domain.DefaultToolConfig("/proj")
	assert.Equal(t, "/proj", cfg.Root)
	assert.Equal(t, domain.DefaultMemoryBudget, cfg.Cache.MemoryBudget)
	assert.False(t, cfg.Alternate.Enabled())
}
