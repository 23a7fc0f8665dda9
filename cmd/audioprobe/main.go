// Command audioprobe probes encrypted note audio attachments with a fixed
// battery of trial decryption schemes.
package main

import (
	"os"

	"github.com/idelchi/audioprobe/internal/commands"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
