package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/audioprobe/internal/config"
	"github.com/idelchi/audioprobe/internal/logic"
)

// NewSniffCommand creates a new cobra command for the sniff subcommand.
func NewSniffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sniff files...",
		Short: "Report media signatures of files as-is, without decrypting",
		Args:  cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			var cfg config.Config
			if err := unmarshal(&cfg, args); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return logic.RunSniff(&cfg)
		},
	}
}
