// Package sniff decides whether a decrypted candidate looks like playable
// audio. The check is a leading-byte signature sniff, not a parse: false
// positives are acceptable for a discovery aid.
package sniff

import "github.com/gabriel-vasile/mimetype"

// minLen is the minimum buffer length for a meaningful verdict.
const minLen = 4

// id3Tag is the ID3v2 container magic.
var id3Tag = []byte("ID3")

// Valid reports whether data carries an MP3 signature: an ID3 tag, or a frame
// sync byte 0xFF followed by a byte with the top three bits set.
func Valid(data []byte) bool {
	if len(data) < minLen {
		return false
	}

	if data[0] == id3Tag[0] && data[1] == id3Tag[1] && data[2] == id3Tag[2] {
		return true
	}

	return data[0] == 0xFF && data[1]&0xE0 == 0xE0
}

// DetectMIME returns a best-effort MIME label for data. It is reporting
// garnish only; the accept/reject decision is Valid's alone.
func DetectMIME(data []byte) string {
	return mimetype.Detect(data).String()
}
