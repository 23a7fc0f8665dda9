package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "audioprobe [flags] command [flags]",
		Short:   "Trial-decryption harness for encrypted note audio",
		Version: version,
		Long: `A scheme-discovery harness for encrypted audio attachments.
Given a candidate key, it runs a fixed battery of symmetric ciphers and key
derivations against the attachment and reports which trials produce output
that looks like a valid media stream.`,
		SilenceUsage: true,
	}

	viper.SetEnvPrefix("AUDIOPROBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	const defaultPreview = 32

	root.PersistentFlags().StringP("key", "k", "", "Candidate key, hex-encoded")
	root.PersistentFlags().StringP("key-file", "f", "", "Path to a file holding the hex-encoded key")
	root.PersistentFlags().StringP("output-dir", "o", "decrypted", "Directory for accepted candidate plaintexts")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel trials, defaults to number of CPUs")
	root.PersistentFlags().IntP("preview", "p", defaultPreview, "Number of leading candidate bytes to show per trial")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print run statistics on completion")
	root.PersistentFlags().StringSlice("scheme", nil, "Scheme name pattern to include (repeatable)")
	root.PersistentFlags().StringSlice("skip-scheme", nil, "Scheme name pattern to exclude (repeatable)")
	root.PersistentFlags().String("schemes-from", "", "JSONC file with scheme name patterns to include")

	root.AddCommand(NewProbeCommand(), NewSniffCommand(), NewSchemesCommand())

	return root
}
