// Package compiler registers per-extension compiler adapters and runs each
// file through resolve, decide, compose, lookup, compile and store.
package compiler

import (
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/solidc/internal/engine/preset"
	"go.trai.ch/solidc/internal/engine/strategy"
	"go.trai.ch/zerr"
)

// Plan is the outcome of preparing one file: its governing settings, the
// strategy decision, and the composed compile options.
type Plan struct {
	File     *domain.SourceFile
	Settings *domain.Settings
	Decision domain.Decision
	Options  domain.CompileOptions
}

// Pipeline bundles settings resolution, strategy selection and preset
// composition for one build mode.
type Pipeline struct {
	resolver ports.SettingsResolver
	selector *strategy.Selector
	composer *preset.Composer
	mode     domain.Mode
}

// NewPipeline creates a Pipeline.
func NewPipeline(
	resolver ports.SettingsResolver,
	selector *strategy.Selector,
	composer *preset.Composer,
	mode domain.Mode,
) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		selector: selector,
		composer: composer,
		mode:     mode,
	}
}

// Mode returns the build mode decisions are made for.
func (p *Pipeline) Mode() domain.Mode {
	return p.mode
}

// Prepare resolves, decides and composes options for file starting from base.
// base is cloned and never modified.
func (p *Pipeline) Prepare(file *domain.SourceFile, base domain.CompileOptions) (*Plan, error) {
	settings, err := p.resolver.Resolve(file)
	if err != nil {
		return nil, zerr.With(err, "file", file.Path)
	}

	decision, err := p.selector.Decide(file, settings, p.mode)
	if err != nil {
		return nil, zerr.With(err, "file", file.Path)
	}

	opts := base.Clone()
	if err := p.composer.Compose(file, settings, decision, &opts); err != nil {
		return nil, zerr.With(err, "file", file.Path)
	}

	return &Plan{
		File:     file,
		Settings: settings,
		Decision: decision,
		Options:  opts,
	}, nil
}
