package scheme

// rc4WarmupRounds is the number of PRGA rounds the vendor variant discards
// after key scheduling and before the first output byte. The count is fixed;
// changing it shifts the keystream and changes every output byte.
const rc4WarmupRounds = 1024

// rc4State holds the 256-entry permutation and the two PRGA indices.
//
// The implementation is deliberately self-contained instead of wrapping
// crypto/rc4: the vendor variant needs discard rounds between KSA and output,
// and keys longer than 256 bytes must cycle the way the note service does.
type rc4State struct {
	perm [256]byte
	i, j uint8
}

// newRC4State runs the key scheduling algorithm over key, cycled to 256 rounds.
func newRC4State(key []byte) (*rc4State, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	s := &rc4State{}

	for i := range s.perm {
		s.perm[i] = byte(i)
	}

	var j uint8

	for i := range 256 {
		j += s.perm[i] + key[i%len(key)]
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	}

	return s, nil
}

// next advances the PRGA by one round and returns the keystream byte.
func (s *rc4State) next() byte {
	s.i++
	s.j += s.perm[s.i]
	s.perm[s.i], s.perm[s.j] = s.perm[s.j], s.perm[s.i]

	return s.perm[s.perm[s.i]+s.perm[s.j]]
}

// discard runs n PRGA rounds without emitting output.
func (s *rc4State) discard(n int) {
	for range n {
		s.next()
	}
}

// rc4Decrypt applies standard RC4 (KSA + PRGA) to data.
func rc4Decrypt(data, key []byte) ([]byte, error) {
	return rc4Apply(data, key, 0)
}

// rc4MiDecrypt applies the vendor RC4 variant: standard key schedule followed
// by exactly rc4WarmupRounds discarded rounds before keystream generation.
func rc4MiDecrypt(data, key []byte) ([]byte, error) {
	return rc4Apply(data, key, rc4WarmupRounds)
}

func rc4Apply(data, key []byte, warmup int) ([]byte, error) {
	s, err := newRC4State(key)
	if err != nil {
		return nil, err
	}

	s.discard(warmup)

	out := make([]byte, len(data))

	for i, b := range data {
		out[i] = b ^ s.next()
	}

	return out, nil
}
