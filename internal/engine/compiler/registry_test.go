package compiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/engine/compiler"
	"go.uber.org/mock/gomock"
)

func TestRegistry_RegisterConflict(t *testing.T) {
	f := newFixture(t, domain.ModeProduction)
	r := compiler.NewRegistry()

	require.NoError(t, r.Register(compiler.NewDirect(f.pipeline, f.compiler), compiler.DirectExtensions...))
	err := r.Register(compiler.NewTyped(f.pipeline, f.compiler), "ts", ".jsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrExtensionConflict.Error())

	assert.Equal(t, []string{"js", "jsx", "mjs"}, r.Extensions())
}

func TestRegistry_Lookup(t *testing.T) {
	f := newFixture(t, domain.ModeProduction)
	r := compiler.NewRegistry()

	direct := compiler.NewDirect(f.pipeline, f.compiler)
	typed := compiler.NewTyped(f.pipeline, f.compiler)
	secondary := compiler.NewSecondary(f.pipeline, f.compiler, nil, []string{"md", "coffee.md"})
	require.NoError(t, r.Register(direct, compiler.DirectExtensions...))
	require.NoError(t, r.Register(typed, compiler.TypedExtensions...))
	require.NoError(t, r.Register(secondary, "coffee.md"))

	got, err := r.Lookup("a/b.tsx")
	require.NoError(t, err)
	assert.Same(t, typed, got)

	got, err = r.Lookup("README.coffee.md")
	require.NoError(t, err)
	assert.Same(t, secondary, got)

	_, err = r.Lookup("style.css")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrNoCompilerForExtension.Error())
}

func TestRegistry_ProcessFilesKeepsOrder(t *testing.T) {
	f := newFixture(t, domain.ModeProduction)
	r := compiler.NewRegistry()
	require.NoError(t, r.Register(compiler.NewDirect(f.pipeline, f.compiler), compiler.DirectExtensions...))
	require.NoError(t, r.Register(compiler.NewTyped(f.pipeline, f.compiler), compiler.TypedExtensions...))

	files := []*domain.SourceFile{
		browserFile("one.ts", "1"),
		browserFile("two.js", "2"),
		browserFile("skip.d.ts", ""),
		browserFile("three.tsx", "3"),
	}

	f.resolver.EXPECT().Resolve(gomock.Any()).Return(domain.DefaultSettings(), nil).Times(3)
	f.compiler.EXPECT().DefaultOptions(gomock.Any()).DoAndReturn(defaultOptions).Times(3)
	f.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoCompile).Times(3)

	outputs, err := r.ProcessFiles(context.Background(), files)
	require.NoError(t, err)

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		paths = append(paths, out.Path)
	}
	assert.Equal(t, []string{"one.ts", "two.js", "three.tsx"}, paths)
}
