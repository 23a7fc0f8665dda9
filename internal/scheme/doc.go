// Package scheme implements the trial decryption battery: a static registry
// of cipher/parameter combinations and the primitives behind them.
// Every primitive is a pure function of ciphertext and key; none of the fixed
// IV/nonce choices are cryptographic defaults, they reproduce the candidate
// schemes the encrypted note audio is probed against.
package scheme
