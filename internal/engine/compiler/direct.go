package compiler

import (
	"context"
	"slices"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Direct compiles plain script files with the external compiler.
type Direct struct {
	base
}

var _ Adapter = (*Direct)(nil)

// NewDirect creates the adapter for plain script files.
func NewDirect(pipeline *Pipeline, compiler ports.Compiler, opts ...Option) *Direct {
	return &Direct{base: newBase(domain.KindDirect, pipeline, compiler, opts)}
}

// ProcessFiles compiles files concurrently. Outputs follow input order.
func (d *Direct) ProcessFiles(ctx context.Context, files []*domain.SourceFile) ([]domain.Output, error) {
	return d.each(ctx, files, d.processFile)
}

func (d *Direct) processFile(ctx context.Context, file *domain.SourceFile) (out domain.Output, err error) {
	ctx, span := startSpan(ctx, d.tracer, file)
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	plan, err := d.pipeline.Prepare(file, d.compiler.DefaultOptions(file))
	if err != nil {
		return domain.Output{}, err
	}
	annotate(span, plan.Decision)

	artifact, err := d.compile(ctx, span, plan, []any{plan.Options}, func(ctx context.Context) (*domain.Artifact, error) {
		return d.compiler.Compile(ctx, file, plan.Options)
	})
	if err != nil {
		return domain.Output{}, zerr.With(err, "file", file.Path)
	}

	return domain.Output{
		Path:       file.Path,
		SourcePath: file.Path,
		Data:       artifact.Code,
		SourceMap:  artifact.SourceMap,
		Bare:       artifact.Bare,
	}, nil
}

// Typed compiles typed script files. Declaration files produce no output and
// are never handed to the compiler.
type Typed struct {
	Direct
}

var _ Adapter = (*Typed)(nil)

// NewTyped creates the adapter for typed script files.
func NewTyped(pipeline *Pipeline, compiler ports.Compiler, opts ...Option) *Typed {
	return &Typed{Direct: Direct{base: newBase(domain.KindTyped, pipeline, compiler, opts)}}
}

// ProcessFiles drops declaration files and compiles the rest.
func (t *Typed) ProcessFiles(ctx context.Context, files []*domain.SourceFile) ([]domain.Output, error) {
	files = slices.DeleteFunc(slices.Clone(files), (*domain.SourceFile).IsDeclaration)
	return t.Direct.ProcessFiles(ctx, files)
}
