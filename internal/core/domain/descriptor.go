package domain

import (
	"bytes"
	"encoding/json"
	"maps"

	"go.trai.ch/zerr"
)

// Descriptor names a preset or plugin for the external compiler, with optional
// parameters. A bundle descriptor is the host's own preset bundle; it carries
// nested preset and plugin lists instead of a name.
type Descriptor struct {
	Name    string
	Options map[string]any

	Bundle  bool
	Presets []Descriptor
	Plugins []Descriptor
}

// NewBundle returns an empty bundle descriptor.
func NewBundle() Descriptor {
	return Descriptor{Bundle: true}
}

// Clone returns a deep copy of the descriptor lists so appends never alias the original.
func (d Descriptor) Clone() Descriptor {
	out := d
	if d.Options != nil {
		out.Options = maps.Clone(d.Options)
	}
	out.Presets = cloneDescriptors(d.Presets)
	out.Plugins = cloneDescriptors(d.Plugins)
	return out
}

func cloneDescriptors(in []Descriptor) []Descriptor {
	if in == nil {
		return nil
	}
	out := make([]Descriptor, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

type bundleJSON struct {
	Presets []Descriptor `json:"presets"`
	Plugins []Descriptor `json:"plugins"`
}

// MarshalJSON encodes named descriptors as ["name"] or ["name", {options}] and
// bundles as {"presets": [...], "plugins": [...]}.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	if d.Bundle {
		b := bundleJSON{Presets: d.Presets, Plugins: d.Plugins}
		if b.Presets == nil {
			b.Presets = []Descriptor{}
		}
		if b.Plugins == nil {
			b.Plugins = []Descriptor{}
		}
		return json.Marshal(b)
	}
	if len(d.Options) == 0 {
		return json.Marshal([]any{d.Name})
	}
	return json.Marshal([]any{d.Name, d.Options})
}

// UnmarshalJSON accepts the tuple form, a bare string name, or a bundle object.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return zerr.New("empty descriptor")
	}

	switch trimmed[0] {
	case '"':
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*d = Descriptor{Name: name}
		return nil
	case '{':
		var b bundleJSON
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		*d = Descriptor{Bundle: true, Presets: b.Presets, Plugins: b.Plugins}
		return nil
	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return err
		}
		if len(parts) == 0 || len(parts) > 2 {
			return zerr.With(zerr.New("descriptor tuple must have one or two elements"), "value", string(trimmed))
		}
		var out Descriptor
		if err := json.Unmarshal(parts[0], &out.Name); err != nil {
			return err
		}
		if len(parts) == 2 {
			if err := json.Unmarshal(parts[1], &out.Options); err != nil {
				return err
			}
		}
		*d = out
		return nil
	default:
		return zerr.With(zerr.New("unsupported descriptor form"), "value", string(trimmed))
	}
}

// Caller identifies the invoking tool to the compiler.
type Caller struct {
	Name string `json:"name"`
	Arch Arch   `json:"arch"`
}

// CompileOptions is the request handed to the external compiler.
type CompileOptions struct {
	Filename       string          `json:"filename"`
	Presets        []Descriptor    `json:"presets"`
	Plugins        []Descriptor    `json:"plugins"`
	Caller         Caller          `json:"caller"`
	SourceMaps     bool            `json:"sourceMaps"`
	InputSourceMap json.RawMessage `json:"inputSourceMap,omitempty"`
}

// Clone returns a deep copy of the options.
func (o CompileOptions) Clone() CompileOptions {
	out := o
	out.Presets = cloneDescriptors(o.Presets)
	out.Plugins = cloneDescriptors(o.Plugins)
	if o.InputSourceMap != nil {
		out.InputSourceMap = bytes.Clone(o.InputSourceMap)
	}
	return out
}
