package domain

import "go.trai.ch/zerr"

// Variant selects how the primary transform generates code.
type Variant uint8

const (
	// VariantNone means the primary transform is not applied.
	VariantNone Variant = iota
	// VariantClientOnly is plain client rendering without SSR.
	VariantClientOnly
	// VariantClientSSR is client output that hydrates server-rendered markup.
	VariantClientSSR
	// VariantServerSSR is server-side rendering output.
	VariantServerSSR
)

// String returns the canonical name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantClientOnly:
		return "client-only"
	case VariantClientSSR:
		return "client-ssr"
	case VariantServerSSR:
		return "server-ssr"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	for _, candidate := range []Variant{VariantNone, VariantClientOnly, VariantClientSSR, VariantServerSSR} {
		if candidate.String() == string(text) {
			*v = candidate
			return nil
		}
	}
	return zerr.With(zerr.New("unknown variant"), "variant", string(text))
}

// Decision is the per-file strategy outcome. It is a pure function of the
// settings, file path, architecture, and mode.
type Decision struct {
	UsePrimary  bool    `json:"usePrimary"`
	Variant     Variant `json:"variant"`
	Hydratable  bool    `json:"hydratable"`
	DevAliasing bool    `json:"devAliasing"`
}

// Strategy names the transform family that governs the file.
func (d Decision) Strategy() string {
	if d.UsePrimary {
		return "solid"
	}
	return "react"
}
