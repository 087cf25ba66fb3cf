package domain

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/zerr"
)

// Patterns is an ordered set of glob patterns. In the manifest it may be
// written either as a single string or as an array of strings.
type Patterns []string

// UnmarshalJSON accepts a string or an array of strings. An empty string
// leaves the patterns unset; an empty array is set but matches nothing.
func (p *Patterns) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*p = nil
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		if single == "" {
			*p = nil
			return nil
		}
		*p = Patterns{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return zerr.With(zerr.Wrap(err, "expected a string or an array of strings"), "value", string(trimmed))
	}
	if many == nil {
		many = []string{}
	}
	*p = many
	return nil
}

// Settings is the transformation-relevant section of a project manifest.
// Instances handed out by the resolver are shared and must not be mutated.
type Settings struct {
	// Match limits the primary transform to paths matching any pattern.
	Match Patterns `json:"match,omitempty"`
	// Ignore excludes matching paths from the primary transform. It wins over Match.
	Ignore Patterns `json:"ignore,omitempty"`
	// SSR enables server-side rendering output.
	SSR bool `json:"ssr,omitempty"`
	// Hydratable defaults to true when unset.
	Hydratable *bool `json:"hydratable,omitempty"`
	// Verbose logs every strategy decision.
	Verbose bool `json:"verbose,omitempty"`

	// ManifestPath is the manifest the settings were read from, empty for defaults.
	ManifestPath string `json:"-"`
}

// DefaultSettings returns the settings used when no manifest or section exists.
func DefaultSettings() *Settings {
	return &Settings{}
}

// IsHydratable returns the effective hydratable flag.
func (s *Settings) IsHydratable() bool {
	return s.Hydratable == nil || *s.Hydratable
}
