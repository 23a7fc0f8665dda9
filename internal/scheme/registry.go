package scheme

import "fmt"

// Kind identifies the cipher primitive behind a trial scheme.
type Kind byte

const (
	// KindXOR is the repeating-key XOR keystream.
	KindXOR Kind = iota
	// KindRC4 is standard RC4 (KSA + PRGA).
	KindRC4
	// KindRC4Mi is the vendor RC4 variant with 1024 discarded warm-up rounds.
	KindRC4Mi
	// KindAESECB is AES-128 ECB with zero padding and length truncation.
	KindAESECB
	// KindAESCBC is AES-128 CBC with zero padding and length truncation.
	KindAESCBC
	// KindAESCTR is AES-128 CTR with an 8-byte nonce.
	KindAESCTR
)

// Spec is one entry of the trial registry: a primitive, its fixed parameters,
// and the key derivation it is paired with. Adding a scheme means adding an
// entry here, not new control flow.
type Spec struct {
	// Name is the stable registry label, also used for output file naming.
	Name string

	// Kind selects the primitive.
	Kind Kind

	// Derive transforms the primary key before the trial.
	Derive Derivation

	// IV is the CBC initialization vector; nil selects all zeroes.
	IV []byte

	// Nonce is the CTR nonce; nil selects all zeroes.
	Nonce []byte
}

// miuiConstant is the fixed 16-byte constant the vendor's gallery encryption
// uses as a CTR IV. Only its first 8 bytes serve as the nonce here.
var miuiConstant = []byte{17, 19, 33, 35, 49, 51, 65, 67, 81, 83, 97, 102, 103, 104, 113, 114}

// registry is the full trial battery in enumeration order. The order is fixed
// so re-runs against the same inputs are byte-for-byte reproducible.
var registry = []Spec{
	{Name: "xor", Kind: KindXOR, Derive: DeriveIdentity},
	{Name: "rc4", Kind: KindRC4, Derive: DeriveIdentity},
	{Name: "rc4-mi", Kind: KindRC4Mi, Derive: DeriveIdentity},
	{Name: "aes-128-ecb", Kind: KindAESECB, Derive: DeriveIdentity},
	{Name: "aes-128-cbc", Kind: KindAESCBC, Derive: DeriveIdentity},
	{Name: "aes-128-ctr", Kind: KindAESCTR, Derive: DeriveIdentity},
	{Name: "aes-128-ctr-miui", Kind: KindAESCTR, Derive: DeriveIdentity, Nonce: miuiConstant[:aesCTRNonceSize]},
	{Name: "aes-128-ecb-md5", Kind: KindAESECB, Derive: DeriveMD5Hex},
	{Name: "aes-128-cbc-md5", Kind: KindAESCBC, Derive: DeriveMD5Hex},
}

// Registry returns the full trial battery in enumeration order.
// The returned slice is a copy; callers may subset it freely.
func Registry() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)

	return out
}

// Lookup returns the registry entry with the given name.
func Lookup(name string) (Spec, error) {
	for _, spec := range registry {
		if spec.Name == name {
			return spec, nil
		}
	}

	return Spec{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Decrypt applies the spec's key derivation and primitive to ciphertext.
// The primary key is never mutated; each call derives a fresh trial key.
func (s Spec) Decrypt(ciphertext, key []byte) ([]byte, error) {
	trialKey, err := s.Derive.Apply(key)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	switch s.Kind {
	case KindXOR:
		return xorKeystream(ciphertext, trialKey)
	case KindRC4:
		return rc4Decrypt(ciphertext, trialKey)
	case KindRC4Mi:
		return rc4MiDecrypt(ciphertext, trialKey)
	case KindAESECB:
		return aesECBDecrypt(ciphertext, trialKey)
	case KindAESCBC:
		return aesCBCDecrypt(ciphertext, trialKey, s.IV)
	case KindAESCTR:
		return aesCTRDecrypt(ciphertext, trialKey, s.Nonce)
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownScheme, byte(s.Kind))
	}
}

// Describe returns a short human-readable parameter summary for listings.
func (s Spec) Describe() string {
	switch s.Kind {
	case KindXOR:
		return "repeating-key XOR"
	case KindRC4:
		return "RC4"
	case KindRC4Mi:
		return fmt.Sprintf("RC4, %d warm-up rounds", rc4WarmupRounds)
	case KindAESECB:
		return "AES-128-ECB, zero-padded"
	case KindAESCBC:
		if s.IV == nil {
			return "AES-128-CBC, zero IV"
		}

		return fmt.Sprintf("AES-128-CBC, IV %x", s.IV)
	case KindAESCTR:
		if s.Nonce == nil {
			return "AES-128-CTR, zero nonce"
		}

		return fmt.Sprintf("AES-128-CTR, nonce %x", s.Nonce)
	default:
		return "unknown"
	}
}
