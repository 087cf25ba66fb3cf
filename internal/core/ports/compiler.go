package ports

import (
	"context"

	"go.trai.ch/solidc/internal/core/domain"
)

// Compiler is the generic source-to-source compiler the composed options are handed to.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// OptionsDigest identifies the compiler itself for cache keys. Two
	// compilers with equal digests produce equal artifacts for equal requests.
	OptionsDigest() string

	// DefaultOptions returns the host's base options for a file. The first
	// preset is the host's own preset bundle.
	DefaultOptions(file *domain.SourceFile) domain.CompileOptions

	// Compile transforms the file contents according to opts.
	Compile(ctx context.Context, file *domain.SourceFile, opts domain.CompileOptions) (*domain.Artifact, error)
}

// AltCompiler translates an alternate input syntax into plain script source.
type AltCompiler interface {
	// OptionsDigest identifies the compiler's own configuration for cache keys.
	OptionsDigest() string

	// Transpile converts the file into script source.
	Transpile(ctx context.Context, file *domain.SourceFile) (*domain.Transpiled, error)
}
