// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic writes data to path via a temp file in the same directory and an
// atomic rename, so a partially written candidate never lands at path.
// Returns the number of bytes written.
func WriteAtomic(path string, data []byte, perm os.FileMode) (size int64, err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close() //nolint:gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmpName) //nolint:gosec // best-effort cleanup
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return 0, fmt.Errorf("writing temporary file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return int64(len(data)), nil
}
