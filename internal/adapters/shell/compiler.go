package shell

import (
	"context"
	"encoding/json"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
)

// CallerName identifies solidc to compiler workers.
const CallerName = "solidc"

type request struct {
	Filename string                 `json:"filename"`
	Source   string                 `json:"source"`
	Options  *domain.CompileOptions `json:"options,omitempty"`
}

type response struct {
	Code string          `json:"code"`
	Map  json.RawMessage `json:"map,omitempty"`
	Bare bool            `json:"bare,omitempty"`
}

// DefaultOptions returns the base options every file starts from. The first
// preset is an empty host bundle the fallback presets are merged into.
func DefaultOptions(file *domain.SourceFile) domain.CompileOptions {
	return domain.CompileOptions{
		Filename:   file.Path,
		Presets:    []domain.Descriptor{domain.NewBundle()},
		Caller:     domain.Caller{Name: CallerName, Arch: file.Arch},
		SourceMaps: true,
	}
}

// Compiler implements ports.Compiler with an external worker.
type Compiler struct {
	exec   *Executor
	digest string
}

var _ ports.Compiler = (*Compiler)(nil)

// NewCompiler creates a Compiler that runs requests through exec. salt is
// folded into the digest together with the worker identity.
func NewCompiler(exec *Executor, salt ...string) *Compiler {
	return &Compiler{exec: exec, digest: exec.Identity(salt...)}
}

// OptionsDigest implements ports.Compiler.
func (c *Compiler) OptionsDigest() string {
	return c.digest
}

// DefaultOptions implements ports.Compiler.
func (c *Compiler) DefaultOptions(file *domain.SourceFile) domain.CompileOptions {
	return DefaultOptions(file)
}

// Compile implements ports.Compiler.
func (c *Compiler) Compile(ctx context.Context, file *domain.SourceFile, opts domain.CompileOptions) (*domain.Artifact, error) {
	var resp response
	req := request{Filename: file.Path, Source: string(file.Contents), Options: &opts}
	if err := c.exec.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	a := domain.NewArtifact(resp.Code, resp.Map)
	a.Bare = resp.Bare
	return a, nil
}

// AltCompiler implements ports.AltCompiler with an external worker.
type AltCompiler struct {
	exec   *Executor
	digest string
}

var _ ports.AltCompiler = (*AltCompiler)(nil)

// NewAltCompiler creates an AltCompiler that runs requests through exec.
// salt is folded into the digest together with the worker identity.
func NewAltCompiler(exec *Executor, salt ...string) *AltCompiler {
	return &AltCompiler{exec: exec, digest: exec.Identity(salt...)}
}

// OptionsDigest implements ports.AltCompiler.
func (a *AltCompiler) OptionsDigest() string {
	return a.digest
}

// Transpile implements ports.AltCompiler.
func (a *AltCompiler) Transpile(ctx context.Context, file *domain.SourceFile) (*domain.Transpiled, error) {
	var resp response
	req := request{Filename: file.Path, Source: string(file.Contents)}
	if err := a.exec.Run(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &domain.Transpiled{Source: resp.Code, SourceMap: resp.Map, Bare: resp.Bare}, nil
}
