// Package fingerprint derives content-addressed cache keys for compiled artifacts.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"go.trai.ch/solidc/internal/adapters/codec"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/zerr"
)

// FormatVersion is mixed into every fingerprint. Bumping it invalidates all
// stored artifacts.
const FormatVersion = 2

// fingerprintKey is the BLAKE3 keyed-hash domain for artifact fingerprints:
// the ASCII name zero-padded to 32 bytes.
var fingerprintKey = [32]byte{
	's', 'o', 'l', 'i', 'd', 'c', '.', 'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i',
	'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// keyInput is every observable input of a compile. Field order is fixed by
// the integer keys so the encoding never depends on struct layout.
type keyInput struct {
	Version       int      `cbor:"1,keyasint"`
	Kind          string   `cbor:"2,keyasint"`
	Path          string   `cbor:"3,keyasint"`
	Package       string   `cbor:"4,keyasint"`
	Arch          string   `cbor:"5,keyasint"`
	SourceHash    string   `cbor:"6,keyasint"`
	Exports       []string `cbor:"7,keyasint"`
	UsePrimary    bool     `cbor:"8,keyasint"`
	Variant       string   `cbor:"9,keyasint"`
	Hydratable    bool     `cbor:"10,keyasint"`
	DevAliasing   bool     `cbor:"11,keyasint"`
	Mode          string   `cbor:"12,keyasint"`
	OptionsDigest string   `cbor:"13,keyasint"`
}

// Computer implements ports.KeyComputer.
type Computer struct{}

var _ ports.KeyComputer = (*Computer)(nil)

// NewComputer creates a Computer.
func NewComputer() *Computer {
	return &Computer{}
}

// KeyFor returns the fingerprint of one compile request.
func (c *Computer) KeyFor(
	kind domain.AdapterKind,
	file *domain.SourceFile,
	decision domain.Decision,
	mode domain.Mode,
	optionDigest string,
) (domain.Fingerprint, error) {
	exports := file.DeclaredExports
	if exports == nil {
		exports = []string{}
	}

	data, err := codec.Marshal(keyInput{
		Version:       FormatVersion,
		Kind:          string(kind),
		Path:          file.Path,
		Package:       file.Package,
		Arch:          string(file.Arch),
		SourceHash:    file.SourceHash,
		Exports:       exports,
		UsePrimary:    decision.UsePrimary,
		Variant:       decision.Variant.String(),
		Hydratable:    decision.Hydratable,
		DevAliasing:   decision.DevAliasing,
		Mode:          string(mode),
		OptionsDigest: optionDigest,
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "path", file.Path)
	}

	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
	}
	_, _ = hasher.Write(data)
	return domain.Fingerprint(hex.EncodeToString(hasher.Sum(nil))), nil
}

// OptionsDigest returns an xxhash digest over the deterministic encoding of
// each part, separated by a zero byte.
func (c *Computer) OptionsDigest(parts ...any) (string, error) {
	return OptionsDigest(parts...)
}

// OptionsDigest is the package-level form of Computer.OptionsDigest.
func OptionsDigest(parts ...any) (string, error) {
	h := xxhash.New()
	for _, part := range parts {
		data, err := codec.Marshal(part)
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
		}
		_, _ = h.Write(data)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// StringDigest returns the xxhash digest of s.
func StringDigest(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// ContentHash returns the xxhash digest of a file's contents, read from r.
func ContentHash(r io.Reader) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", zerr.Wrap(err, domain.ErrSourceReadFailed.Error())
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
