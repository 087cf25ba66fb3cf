package compiler

import (
	"context"
	"runtime"

	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/solidc/internal/engine/artifactcache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Cache values reported on compile spans.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
	CacheOff  = "off"
)

// Adapter compiles the files registered for its extensions.
type Adapter interface {
	Kind() domain.AdapterKind
	ProcessFiles(ctx context.Context, files []*domain.SourceFile) ([]domain.Output, error)
}

// Cache is the artifact cache consulted between composing and compiling.
type Cache interface {
	GetOrCompile(ctx context.Context, fp domain.Fingerprint, compile artifactcache.CompileFunc) (*domain.Artifact, bool, error)
}

// Option configures an adapter.
type Option func(*base)

// WithCache routes compilations through cache, keyed by keys.
func WithCache(cache Cache, keys ports.KeyComputer) Option {
	return func(b *base) {
		b.cache = cache
		b.keys = keys
	}
}

// WithTracer records a span per compiled file.
func WithTracer(tracer ports.Tracer) Option {
	return func(b *base) {
		b.tracer = tracer
	}
}

// WithConcurrency bounds how many files are compiled at once.
func WithConcurrency(n int) Option {
	return func(b *base) {
		if n > 0 {
			b.limit = n
		}
	}
}

// base holds what every adapter shares.
type base struct {
	kind     domain.AdapterKind
	pipeline *Pipeline
	compiler ports.Compiler
	cache    Cache
	keys     ports.KeyComputer
	tracer   ports.Tracer
	limit    int
}

func newBase(kind domain.AdapterKind, pipeline *Pipeline, compiler ports.Compiler, opts []Option) base {
	b := base{
		kind:     kind,
		pipeline: pipeline,
		compiler: compiler,
		tracer:   noopTracer{},
		limit:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Kind returns the adapter kind.
func (b *base) Kind() domain.AdapterKind {
	return b.kind
}

// each runs fn for every file concurrently and keeps the outputs in input order.
func (b *base) each(
	ctx context.Context,
	files []*domain.SourceFile,
	fn func(context.Context, *domain.SourceFile) (domain.Output, error),
) ([]domain.Output, error) {
	outputs := make([]domain.Output, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.limit)
	for i, file := range files {
		g.Go(func() error {
			out, err := fn(ctx, file)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// compile looks the plan up in the cache, running produce on a miss. The key
// covers the primary compiler's digest followed by digestParts.
func (b *base) compile(
	ctx context.Context,
	span ports.Span,
	plan *Plan,
	digestParts []any,
	produce artifactcache.CompileFunc,
) (*domain.Artifact, error) {
	produce = requireArtifact(produce)
	if b.cache == nil || b.keys == nil {
		span.SetAttribute("cache", CacheOff)
		return produce(ctx)
	}

	parts := append([]any{b.compiler.OptionsDigest()}, digestParts...)
	digest, err := b.keys.OptionsDigest(parts...)
	if err != nil {
		return nil, err
	}
	fp, err := b.keys.KeyFor(b.kind, plan.File, plan.Decision, b.pipeline.Mode(), digest)
	if err != nil {
		return nil, err
	}

	artifact, hit, err := b.cache.GetOrCompile(ctx, fp, produce)
	if err != nil {
		return nil, err
	}
	if hit {
		span.SetAttribute("cache", CacheHit)
	} else {
		span.SetAttribute("cache", CacheMiss)
	}
	return artifact, nil
}

// requireArtifact turns a compiler that reports success without a result into an error.
func requireArtifact(produce artifactcache.CompileFunc) artifactcache.CompileFunc {
	return func(ctx context.Context) (*domain.Artifact, error) {
		artifact, err := produce(ctx)
		if err != nil {
			return nil, err
		}
		if artifact == nil {
			return nil, zerr.With(domain.ErrCompilerProtocol, "reason", "no artifact")
		}
		return artifact, nil
	}
}

func startSpan(ctx context.Context, tracer ports.Tracer, file *domain.SourceFile) (context.Context, ports.Span) {
	return tracer.Start(ctx, "compile "+file.Path)
}

func annotate(span ports.Span, decision domain.Decision) {
	span.SetAttribute("strategy", decision.Strategy())
	span.SetAttribute("variant", decision.Variant.String())
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
