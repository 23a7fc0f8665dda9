package scheme

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesKeySize is the key width of every AES trial (AES-128).
const aesKeySize = 16

// newAESCipher constructs the block cipher, mapping key-size rejections to
// ErrUnsupported so the orchestrator can continue with the remaining trials.
func newAESCipher(key []byte) (cipher.Block, error) {
	if len(key) != aesKeySize {
		return nil, fmt.Errorf("%w: AES-128 requires a 16-byte key, got %d", ErrUnsupported, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	return block, nil
}

// zeroPad extends data with zero bytes to the next multiple of blockSize.
// This is a trial assumption, not a padding scheme: the true tail convention
// of the encrypted container is unknown, so block trials zero-pad on the way
// in and truncate back to the original length on the way out.
func zeroPad(data []byte, blockSize int) []byte {
	rem := len(data) % blockSize
	if rem == 0 {
		return data
	}

	padded := make([]byte, len(data)+blockSize-rem)
	copy(padded, data)

	return padded
}

// aesECBDecrypt decrypts data block by block with no chaining.
// Output is truncated to len(data).
func aesECBDecrypt(data, key []byte) ([]byte, error) {
	block, err := newAESCipher(key)
	if err != nil {
		return nil, err
	}

	padded := zeroPad(data, aes.BlockSize)
	out := make([]byte, len(padded))

	for i := 0; i < len(padded); i += aes.BlockSize {
		block.Decrypt(out[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
	}

	return out[:len(data)], nil
}

// aesCBCDecrypt decrypts data in CBC mode with the given IV, truncating the
// output to len(data). A nil iv selects the all-zero bootstrap IV.
func aesCBCDecrypt(data, key, iv []byte) ([]byte, error) {
	block, err := newAESCipher(key)
	if err != nil {
		return nil, err
	}

	if iv == nil {
		iv = make([]byte, aes.BlockSize)
	}

	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: CBC requires a 16-byte IV, got %d", ErrUnsupported, len(iv))
	}

	padded := zeroPad(data, aes.BlockSize)
	out := make([]byte, len(padded))

	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, padded)

	return out[:len(data)], nil
}

// aesCTRNonceSize is the nonce width of the CTR trials. The counter block is
// nonce || 64-bit big-endian counter starting at zero.
const aesCTRNonceSize = 8

// aesCTRDecrypt decrypts data in CTR mode. A nil nonce selects the all-zero
// bootstrap nonce. Stream mode needs no padding.
func aesCTRDecrypt(data, key, nonce []byte) ([]byte, error) {
	block, err := newAESCipher(key)
	if err != nil {
		return nil, err
	}

	if nonce == nil {
		nonce = make([]byte, aesCTRNonceSize)
	}

	if len(nonce) != aesCTRNonceSize {
		return nil, fmt.Errorf("%w: CTR requires an 8-byte nonce, got %d", ErrUnsupported, len(nonce))
	}

	iv := make([]byte, aes.BlockSize)
	copy(iv, nonce)

	out := make([]byte, len(data))

	cipher.NewCTR(block, iv).XORKeyStream(out, data)

	return out, nil
}
