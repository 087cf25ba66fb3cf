// Package strategy decides, per file, which transformation family applies
// and with which parameters.
package strategy

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Selector derives a domain.Decision from a file's path, architecture,
// settings, and mode. It holds no state.
type Selector struct{}

// NewSelector creates a Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Decide computes the strategy for file. The result depends only on the arguments.
func (s *Selector) Decide(file *domain.SourceFile, settings *domain.Settings, mode domain.Mode) (domain.Decision, error) {
	if settings == nil {
		settings = domain.DefaultSettings()
	}
	path := filepath.ToSlash(file.Path)

	usePrimary := true
	if settings.Match != nil {
		matched, err := matchAny(settings.Match, path, settings.ManifestPath)
		if err != nil {
			return domain.Decision{}, err
		}
		usePrimary = matched
	}

	if settings.Ignore != nil {
		ignored, err := matchAny(settings.Ignore, path, settings.ManifestPath)
		if err != nil {
			return domain.Decision{}, err
		}
		if ignored {
			usePrimary = false
		}
	}

	if !usePrimary {
		return domain.Decision{}, nil
	}

	d := domain.Decision{UsePrimary: true}
	client := file.Arch.IsClient()
	switch {
	case settings.SSR && client:
		d.Variant = domain.VariantClientSSR
	case settings.SSR:
		d.Variant = domain.VariantServerSSR
	case client:
		d.Variant = domain.VariantClientOnly
	default:
		d.Variant = domain.VariantNone
	}

	if settings.SSR {
		d.Hydratable = settings.IsHydratable()
	}
	d.DevAliasing = d.Variant != domain.VariantNone && mode.IsDevelopment()
	return d, nil
}

// matchAny reports whether path matches any of the patterns.
// Every pattern is validated, even after a match, so a broken manifest is
// reported regardless of which file is compiled first.
func matchAny(patterns domain.Patterns, path, manifest string) (bool, error) {
	matched := false
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return false, invalidPattern(pattern, manifest, doublestar.ErrBadPattern)
		}
		if matched {
			continue
		}

		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, invalidPattern(pattern, manifest, err)
		}
		matched = ok
	}
	return matched, nil
}

func invalidPattern(pattern, manifest string, cause error) error {
	err := zerr.Wrap(cause, domain.ErrInvalidPattern.Error())
	err = zerr.With(err, "pattern", pattern)
	return zerr.With(err, "manifest", manifest)
}
