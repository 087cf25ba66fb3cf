package domain

// Mode is the build mode.
type Mode string

const (
	// ModeDevelopment is every build that is not explicitly production.
	ModeDevelopment Mode = "development"
	// ModeProduction is selected by NODE_ENV=production.
	ModeProduction Mode = "production"

	// ModeEnvVar is the environment variable the mode is read from.
	ModeEnvVar = "NODE_ENV"
)

// ParseMode maps a NODE_ENV value to a Mode. Only the exact value "production"
// selects production.
func ParseMode(nodeEnv string) Mode {
	if nodeEnv == string(ModeProduction) {
		return ModeProduction
	}
	return ModeDevelopment
}

// IsDevelopment reports whether m is the development mode.
func (m Mode) IsDevelopment() bool {
	return m != ModeProduction
}

// Fingerprint identifies a compiled artifact. It is a lowercase hex digest.
type Fingerprint string

// String returns the hex digest.
func (f Fingerprint) String() string {
	return string(f)
}

// Shard returns the two-character directory prefix used by the durable store.
func (f Fingerprint) Shard() string {
	if len(f) < 2 {
		return "00"
	}
	return string(f[:2])
}

// AdapterKind identifies which compiler adapter produced an artifact.
type AdapterKind string

const (
	// KindDirect handles plain script files.
	KindDirect AdapterKind = "direct"
	// KindTyped handles typed script files.
	KindTyped AdapterKind = "typed"
	// KindSecondary handles alternate syntax files.
	KindSecondary AdapterKind = "secondary"
)
