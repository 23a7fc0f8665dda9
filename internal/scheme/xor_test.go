package scheme_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/idelchi/audioprobe/internal/scheme"
)

func mustLookup(t *testing.T, name string) scheme.Spec {
	t.Helper()

	spec, err := scheme.Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) error: %v", name, err)
	}

	return spec
}

func TestXORSelfInverse(t *testing.T) {
	t.Parallel()

	spec := mustLookup(t, "xor")

	data := []byte("a ciphertext of odd length, definitely not key-aligned.")
	key := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0x01}

	once, err := spec.Decrypt(data, key)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}

	twice, err := spec.Decrypt(once, key)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}

	if !bytes.Equal(twice, data) {
		t.Errorf("XOR applied twice = %x, want original %x", twice, data)
	}
}

func TestXORZeroInputRevealsKey(t *testing.T) {
	t.Parallel()

	spec := mustLookup(t, "xor")

	key := []byte{0xAA, 0xBB, 0xCC, 0xDD}

	out, err := spec.Decrypt(make([]byte, 64), key)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}

	want := bytes.Repeat(key, 16)
	if !bytes.Equal(out, want) {
		t.Errorf("zero input = %x, want key repeated %x", out, want)
	}
}

func TestXOREmptyKey(t *testing.T) {
	t.Parallel()

	spec := mustLookup(t, "xor")

	if _, err := spec.Decrypt([]byte{1, 2, 3}, nil); !errors.Is(err, scheme.ErrEmptyKey) {
		t.Errorf("Decrypt with empty key = %v, want ErrEmptyKey", err)
	}
}
