// Package app implements the application layer for solidc.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/solidc/internal/adapters/cas"         //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/env"         //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/fingerprint" //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/shell"       //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/solidc/internal/engine/artifactcache"
	"go.trai.ch/solidc/internal/engine/compiler"
	"go.trai.ch/solidc/internal/engine/preset"
	"go.trai.ch/solidc/internal/engine/strategy"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	env          *env.Source
	resolver     ports.SettingsResolver
	selector     *strategy.Selector
	keys         ports.KeyComputer
	tracer       ports.Tracer
	finder       *fs.Finder
	tracing      bool

	workDir string
	stdout  io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	envSource *env.Source,
	resolver ports.SettingsResolver,
	selector *strategy.Selector,
	keys ports.KeyComputer,
	tracer ports.Tracer,
	finder *fs.Finder,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		env:          envSource,
		resolver:     resolver,
		selector:     selector,
		keys:         keys,
		tracer:       tracer,
		finder:       finder,
		workDir:      ".",
		stdout:       os.Stdout,
	}
}

// WithWorkDir sets the directory relative paths and config discovery start from.
func WithWorkDir(dir string) func(*App) {
	return func(a *App) {
		a.workDir = dir
	}
}

// WithOutput sets where command results are printed.
func WithOutput(w io.Writer) func(*App) {
	return func(a *App) {
		a.stdout = w
	}
}

// RunOptions carries the per-invocation CLI flags.
type RunOptions struct {
	Arch    domain.Arch
	Package string
	Out     string
	NoCache bool
	HMR     bool
}

// logConfigurer is implemented by loggers whose mode can change at runtime.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging switches the logger to JSON output and/or debug level.
// Compile spans are recorded only when verbose.
func (a *App) ConfigureLogging(jsonMode, verbose bool) {
	a.tracing = verbose
	if l, ok := a.logger.(logConfigurer); ok {
		l.SetJSON(jsonMode)
		l.SetVerbose(verbose)
	}
}

// session holds everything built from one loaded configuration.
type session struct {
	cfg      *domain.ToolConfig
	mode     domain.Mode
	pipeline *compiler.Pipeline
	registry *compiler.Registry
	cache    *artifactcache.Cache
}

func (a *App) open(opts RunOptions) (*session, error) {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	mode, err := a.env.Mode(cfg.Root)
	if err != nil {
		return nil, err
	}
	environ, err := a.env.Environ(cfg.Root, mode)
	if err != nil {
		return nil, err
	}
	projectVars, err := a.env.ProjectVars(cfg.Root)
	if err != nil {
		return nil, err
	}

	disabled := opts.NoCache || cfg.Cache.Disabled
	var store ports.ArtifactStore
	if !disabled {
		s, err := cas.NewStore(cfg.Cache.Dir, cfg.Cache.DiskBudget)
		if err != nil {
			a.logger.Warn("artifact store unavailable, caching in memory only", "dir", cfg.Cache.Dir, "error", err)
		} else {
			store = s
		}
	}

	cache, err := artifactcache.New(a.logger, store, artifactcache.Options{
		MemoryBudget: cfg.Cache.MemoryBudget,
		Disabled:     disabled,
	})
	if err != nil {
		return nil, err
	}

	composer := preset.NewComposer(a.logger, preset.WithHotReload(preset.HotReloadPlugins(cfg.HotReload.Plugins)))
	pipeline := compiler.NewPipeline(a.resolver, a.selector, composer, mode)

	primary := shell.NewCompiler(shell.NewExecutor(a.logger, cfg.Compiler.Command, cfg.Root, environ), projectVars...)
	adapterOpts := []compiler.Option{
		compiler.WithCache(cache, a.keys),
		compiler.WithTracer(a.activeTracer()),
	}

	registry := compiler.NewRegistry()
	if err := registry.Register(compiler.NewDirect(pipeline, primary, adapterOpts...), compiler.DirectExtensions...); err != nil {
		return nil, err
	}
	if err := registry.Register(compiler.NewTyped(pipeline, primary, adapterOpts...), compiler.TypedExtensions...); err != nil {
		return nil, err
	}
	if cfg.Alternate.Enabled() {
		alt := shell.NewAltCompiler(shell.NewExecutor(a.logger, cfg.Alternate.Command, cfg.Root, environ), projectVars...)
		secondary := compiler.NewSecondary(pipeline, primary, alt, cfg.Alternate.Extensions, adapterOpts...)
		if err := registry.Register(secondary, cfg.Alternate.Extensions...); err != nil {
			return nil, err
		}
	}

	return &session{
		cfg:      cfg,
		mode:     mode,
		pipeline: pipeline,
		registry: registry,
		cache:    cache,
	}, nil
}

func (a *App) activeTracer() ports.Tracer {
	if a.tracing {
		return a.tracer
	}
	return telemetry.NewNoOpTracer()
}

// readSources expands args into source files and loads them. Paths are
// recorded relative to the config root.
func (a *App) readSources(s *session, args []string, opts RunOptions) ([]*domain.SourceFile, error) {
	if len(args) == 0 {
		return nil, domain.ErrNoFilesSpecified
	}

	paths, err := a.finder.Expand(a.workDir, args, s.registry.Extensions())
	if err != nil {
		return nil, err
	}

	arch := opts.Arch
	if arch == "" {
		arch = domain.ArchBrowser
	}

	files := make([]*domain.SourceFile, 0, len(paths))
	for _, abs := range paths {
		//nolint:gosec // Paths are given on the command line
		contents, err := os.ReadFile(abs)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "file", abs)
		}

		hash, err := fingerprint.ContentHash(bytes.NewReader(contents))
		if err != nil {
			return nil, err
		}

		rel, err := filepath.Rel(s.cfg.Root, abs)
		if err != nil {
			rel = abs
		}

		files = append(files, &domain.SourceFile{
			Path:         filepath.ToSlash(rel),
			Package:      opts.Package,
			Arch:         arch,
			SourceHash:   hash,
			Contents:     contents,
			Dir:          filepath.Dir(abs),
			HMRAvailable: opts.HMR,
		})
	}
	return files, nil
}

// CompiledFile describes one written output.
type CompiledFile struct {
	Path       string `json:"path"`
	SourcePath string `json:"sourcePath"`
	Bytes      int    `json:"bytes"`
	Bare       bool   `json:"bare,omitempty"`
}

// CompileReport is printed after a compile run.
type CompileReport struct {
	Mode   domain.Mode         `json:"mode"`
	OutDir string              `json:"outDir"`
	Files  []CompiledFile      `json:"files"`
	Cache  artifactcache.Stats `json:"cache"`
}

// Compile compiles paths and writes the outputs below the output directory.
func (a *App) Compile(ctx context.Context, paths []string, opts RunOptions) error {
	s, err := a.open(opts)
	if err != nil {
		return err
	}

	files, err := a.readSources(s, paths, opts)
	if err != nil {
		return err
	}

	outputs, err := s.registry.ProcessFiles(ctx, files)
	if err != nil {
		return zerr.Wrap(err, "compilation failed")
	}

	outDir := s.cfg.OutDir
	if opts.Out != "" {
		outDir, err = filepath.Abs(opts.Out)
		if err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
	}

	arch := files[0].Arch
	report := CompileReport{Mode: s.mode, OutDir: outDir, Files: make([]CompiledFile, 0, len(outputs))}
	for _, out := range outputs {
		if err := writeOutput(filepath.Join(outDir, string(arch)), out); err != nil {
			return err
		}
		report.Files = append(report.Files, CompiledFile{
			Path:       out.Path,
			SourcePath: out.SourcePath,
			Bytes:      len(out.Data),
			Bare:       out.Bare,
		})
	}
	report.Cache = s.cache.Stats()

	a.logger.Debug("compile finished", "files", len(report.Files), "manifests", a.resolver.Watched())
	return a.print(report)
}

func writeOutput(dir string, out domain.Output) error {
	target := filepath.Join(dir, filepath.FromSlash(out.Path))
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", target)
	}
	if err := os.WriteFile(target, []byte(out.Data), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", target)
	}
	if len(out.SourceMap) > 0 {
		if err := os.WriteFile(target+".map", out.SourceMap, domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", target+".map")
		}
	}
	return nil
}

// Explanation describes the strategy chosen for one file.
type Explanation struct {
	Path        string                `json:"path"`
	Manifest    string                `json:"manifest,omitempty"`
	Strategy    string                `json:"strategy"`
	Variant     domain.Variant        `json:"variant"`
	Hydratable  bool                  `json:"hydratable"`
	DevAliasing bool                  `json:"devAliasing"`
	Options     domain.CompileOptions `json:"options"`
}

// ExplainReport is printed by Explain.
type ExplainReport struct {
	Files     []Explanation `json:"files"`
	Manifests []string      `json:"manifests"`
}

// Explain prints the decision and composed options for each path without compiling.
func (a *App) Explain(_ context.Context, paths []string, opts RunOptions) error {
	s, err := a.open(opts)
	if err != nil {
		return err
	}

	files, err := a.readSources(s, paths, opts)
	if err != nil {
		return err
	}

	explanations := make([]Explanation, 0, len(files))
	for _, file := range files {
		plan, err := s.pipeline.Prepare(file, shell.DefaultOptions(file))
		if err != nil {
			return err
		}
		explanations = append(explanations, Explanation{
			Path:        file.Path,
			Manifest:    plan.Settings.ManifestPath,
			Strategy:    plan.Decision.Strategy(),
			Variant:     plan.Decision.Variant,
			Hydratable:  plan.Decision.Hydratable,
			DevAliasing: plan.Decision.DevAliasing,
			Options:     plan.Options,
		})
	}
	return a.print(ExplainReport{Files: explanations, Manifests: a.resolver.Watched()})
}

// Clean removes every cached artifact and the output directory.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	store, err := cas.NewStore(cfg.Cache.Dir, cfg.Cache.DiskBudget)
	if err != nil {
		return err
	}
	if err := store.Purge(); err != nil {
		return err
	}

	if err := os.RemoveAll(cfg.OutDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorePurgeFailed.Error()), "path", cfg.OutDir)
	}

	a.resolver.Reset()
	a.logger.Info("cache cleaned", "cache", cfg.Cache.Dir, "out", cfg.OutDir)
	return nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
