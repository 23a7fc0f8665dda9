package scheme

import (
	"crypto/md5" //nolint:gosec // trial key derivation reproducing the vendor scheme, not integrity
	"encoding/hex"
	"fmt"
)

// Derivation names a transform applied to the primary key before a trial.
// Each derivation produces a fresh key from the primary; derivations are
// independent variants, not stages.
type Derivation byte

const (
	// DeriveIdentity uses the primary key unchanged.
	DeriveIdentity Derivation = iota
	// DeriveMD5Hex hashes the key's lowercase hex TEXT with MD5 and uses the
	// 16 digest bytes as the key. The digest is over the textual form, not the
	// raw bytes; hex-encode first or the output will not match.
	DeriveMD5Hex
)

// String returns the derivation's registry label.
func (d Derivation) String() string {
	switch d {
	case DeriveIdentity:
		return "identity"
	case DeriveMD5Hex:
		return "md5-hex"
	default:
		return fmt.Sprintf("derivation(%d)", byte(d))
	}
}

// Apply produces the derived key for the given primary key.
func (d Derivation) Apply(key []byte) ([]byte, error) {
	switch d {
	case DeriveIdentity:
		return key, nil
	case DeriveMD5Hex:
		digest := md5.Sum([]byte(hex.EncodeToString(key))) //nolint:gosec // see package doc

		return digest[:], nil
	default:
		return nil, fmt.Errorf("%w: derivation %d", ErrUnsupported, byte(d))
	}
}
