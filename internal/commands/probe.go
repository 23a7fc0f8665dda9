package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/idelchi/audioprobe/internal/config"
	"github.com/idelchi/audioprobe/internal/logic"
)

// NewProbeCommand creates a new cobra command for the probe subcommand.
func NewProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "probe [flags] files...",
		Aliases: []string{"run"},
		Short:   "Run the trial battery against encrypted files",
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			var cfg config.Config
			if err := unmarshal(&cfg, args); err != nil {
				return err
			}

			if cfg.Key == "" && cfg.KeyFile == "" {
				return errors.New("a key is required: use --key or --key-file")
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return logic.Run(&cfg)
		},
	}
}
