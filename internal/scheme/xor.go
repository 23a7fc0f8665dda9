package scheme

// xorKeystream applies a repeating-key XOR: out[i] = data[i] ^ key[i mod len(key)].
// The modulo makes an empty key an explicit error rather than a runtime fault.
func xorKeystream(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	out := make([]byte, len(data))

	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}

	return out, nil
}
