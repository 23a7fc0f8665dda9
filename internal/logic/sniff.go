package logic

import (
	"fmt"
	"os"

	"github.com/idelchi/audioprobe/internal/config"
	"github.com/idelchi/audioprobe/internal/scheme"
	"github.com/idelchi/audioprobe/internal/sniff"
)

// RunSniff inspects files as-is, reporting the signature verdict and a
// detected MIME label. Useful as a pre-flight: an attachment that already
// carries a valid signature needs no decryption at all.
func RunSniff(cfg *config.Config) error {
	for _, file := range cfg.Files {
		data, err := os.ReadFile(file) //nolint:gosec // path is a user-supplied input file
		if err != nil {
			return fmt.Errorf("reading %q: %w", file, err)
		}

		head := data
		if len(head) > cfg.Preview {
			head = head[:cfg.Preview]
		}

		verdict := "no signature"
		if sniff.Valid(data) {
			verdict = "valid signature"
		}

		fmt.Printf("%s: %s (%s)\n  %s\n", //nolint:forbidigo
			file, verdict, sniff.DetectMIME(data), hexPreview(head))
	}

	return nil
}

// RunSchemes lists the trial registry in enumeration order.
func RunSchemes() error {
	for _, spec := range scheme.Registry() {
		fmt.Printf("%-18s %-10s %s\n", spec.Name, spec.Derive, spec.Describe()) //nolint:forbidigo
	}

	return nil
}
