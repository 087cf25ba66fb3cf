package compiler

import (
	"context"
	"strings"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/zerr"
)

// OutputExt replaces the alternate syntax extension on secondary outputs.
const OutputExt = ".js"

// Secondary compiles alternate syntax files: the alternate compiler produces
// script source which is then compiled like any other file.
type Secondary struct {
	base
	alt        ports.AltCompiler
	extensions []string
}

var _ Adapter = (*Secondary)(nil)

// NewSecondary creates the adapter for alternate syntax files with the given
// extensions, written without a leading dot.
func NewSecondary(
	pipeline *Pipeline,
	compiler ports.Compiler,
	alt ports.AltCompiler,
	extensions []string,
	opts ...Option,
) *Secondary {
	return &Secondary{
		base:       newBase(domain.KindSecondary, pipeline, compiler, opts),
		alt:        alt,
		extensions: extensions,
	}
}

// ProcessFiles compiles files concurrently. Outputs follow input order.
func (s *Secondary) ProcessFiles(ctx context.Context, files []*domain.SourceFile) ([]domain.Output, error) {
	return s.each(ctx, files, s.processFile)
}

// OutputPath returns path with its alternate extension swapped for OutputExt.
func (s *Secondary) OutputPath(path string) string {
	if ext := longestSuffix(path, s.extensions); ext != "" {
		return strings.TrimSuffix(path, "."+ext) + OutputExt
	}
	return path + OutputExt
}

func (s *Secondary) processFile(ctx context.Context, file *domain.SourceFile) (out domain.Output, err error) {
	ctx, span := startSpan(ctx, s.tracer, file)
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	plan, err := s.pipeline.Prepare(file, s.compiler.DefaultOptions(file))
	if err != nil {
		return domain.Output{}, err
	}
	annotate(span, plan.Decision)

	outPath := s.OutputPath(file.Path)
	parts := []any{s.alt.OptionsDigest(), plan.Options}

	artifact, err := s.compile(ctx, span, plan, parts, func(ctx context.Context) (*domain.Artifact, error) {
		transpiled, err := s.alt.Transpile(ctx, file)
		if err != nil {
			return nil, err
		}
		if transpiled == nil {
			return nil, zerr.With(domain.ErrCompilerProtocol, "reason", "no transpiled source")
		}

		opts := plan.Options.Clone()
		opts.InputSourceMap = transpiled.SourceMap

		artifact, err := s.compiler.Compile(ctx, file.WithContents(outPath, []byte(transpiled.Source)), opts)
		if err != nil || artifact == nil {
			return artifact, err
		}
		artifact.Bare = transpiled.Bare
		return artifact, nil
	})
	if err != nil {
		return domain.Output{}, zerr.With(err, "file", file.Path)
	}

	return domain.Output{
		Path:       outPath,
		SourcePath: file.Path,
		Data:       artifact.Code,
		SourceMap:  artifact.SourceMap,
		Bare:       artifact.Bare,
	}, nil
}

// longestSuffix returns the longest extension in exts that path ends with.
func longestSuffix(path string, exts []string) string {
	var best string
	for _, ext := range exts {
		if len(ext) > len(best) && strings.HasSuffix(path, "."+ext) {
			best = ext
		}
	}
	return best
}
