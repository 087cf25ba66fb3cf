package fingerprint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/solidc/internal/adapters/fingerprint"
	"go.trai.ch/solidc/internal/core/domain"
)

func baseFile() *domain.SourceFile {
	return &domain.SourceFile{
		Path:            "client/App.coffee",
		Package:         "",
		Arch:            domain.ArchBrowser,
		SourceHash:      "abc123",
		DeclaredExports: []string{"App"},
	}
}

var baseDecision = domain.Decision{UsePrimary: true, Variant: domain.VariantClientOnly, DevAliasing: true}

func TestKeyFor_Idempotent(t *testing.T) {
	c := fingerprint.NewComputer()

	first, err := c.KeyFor(domain.KindSecondary, baseFile(), baseDecision, domain.ModeDevelopment, "digest")
	require.NoError(t, err)
	second, err := c.KeyFor(domain.KindSecondary, baseFile(), baseDecision, domain.ModeDevelopment, "digest")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first.String(), 64)
}

func TestKeyFor_SensitiveToEveryInput(t *testing.T) {
	c := fingerprint.NewComputer()
	base, err := c.KeyFor(domain.KindSecondary, baseFile(), baseDecision, domain.ModeDevelopment, "digest")
	require.NoError(t, err)

	tests := []struct {
		name     string
		kind     domain.AdapterKind
		mutate   func(f *domain.SourceFile)
		decision domain.Decision
		mode     domain.Mode
		digest   string
	}{
		{name: "kind", kind: domain.KindDirect},
		{name: "path", mutate: func(f *domain.SourceFile) { f.Path = "client/Other.coffee" }},
		{name: "package", mutate: func(f *domain.SourceFile) { f.Package = "my:pkg" }},
		{name: "arch", mutate: func(f *domain.SourceFile) { f.Arch = "os" }},
		{name: "source hash", mutate: func(f *domain.SourceFile) { f.SourceHash = "def456" }},
		{name: "exports", mutate: func(f *domain.SourceFile) { f.DeclaredExports = []string{"App", "Other"} }},
		{name: "decision flip", decision: domain.Decision{}},
		{name: "variant", decision: domain.Decision{UsePrimary: true, Variant: domain.VariantClientSSR, Hydratable: true, DevAliasing: true}},
		{name: "mode", mode: domain.ModeProduction},
		{name: "options digest", digest: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := baseFile()
			if tt.mutate != nil {
				tt.mutate(file)
			}
			kind := domain.KindSecondary
			if tt.kind != "" {
				kind = tt.kind
			}
			decision := baseDecision
			if tt.name == "decision flip" || tt.name == "variant" {
				decision = tt.decision
			}
			mode := domain.ModeDevelopment
			if tt.mode != "" {
				mode = tt.mode
			}
			digest := "digest"
			if tt.digest != "" {
				digest = tt.digest
			}

			got, err := c.KeyFor(kind, file, decision, mode, digest)
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}
}

func TestKeyFor_NilAndEmptyExportsMatch(t *testing.T) {
	c := fingerprint.NewComputer()
	a := baseFile()
	a.DeclaredExports = nil
	b := baseFile()
	b.DeclaredExports = []string{}

	fa, err := c.KeyFor(domain.KindTyped, a, baseDecision, domain.ModeProduction, "")
	require.NoError(t, err)
	fb, err := c.KeyFor(domain.KindTyped, b, baseDecision, domain.ModeProduction, "")
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
}

func TestOptionsDigest(t *testing.T) {
	opts := domain.CompileOptions{
		Filename: "a.js",
		Presets:  []domain.Descriptor{{Name: "solid", Options: map[string]any{"generate": "ssr", "hydratable": true}}},
	}

	first, err := fingerprint.OptionsDigest("alt", opts)
	require.NoError(t, err)
	second, err := fingerprint.OptionsDigest("alt", opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 16)

	opts.Presets[0].Options["hydratable"] = false
	third, err := fingerprint.OptionsDigest("alt", opts)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	split, err := fingerprint.OptionsDigest("al", "t")
	require.NoError(t, err)
	joined, err := fingerprint.OptionsDigest("alt")
	require.NoError(t, err)
	assert.NotEqual(t, split, joined)
}

func TestContentHash(t *testing.T) {
	a, err := fingerprint.ContentHash(strings.NewReader("x = 1"))
	require.NoError(t, err)
	b, err := fingerprint.ContentHash(strings.NewReader("x = 2"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, fingerprint.StringDigest("x = 1"), a)
}
