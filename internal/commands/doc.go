// Package commands provides the command-line interface for the audioprobe tool.
//
// It implements commands for:
//   - probing an encrypted attachment with the trial battery
//   - sniffing files for media signatures
//   - listing the scheme registry
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/audioprobe/internal/config"
)

// bindFlags binds the command's local flags and the root's persistent flags
// into viper so both can be overridden by environment variables.
func bindFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("binding persistent flags: %w", err)
	}

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	return nil
}

// unmarshal populates cfg from viper and stores the positional args as files.
func unmarshal(cfg *config.Config, args []string) error {
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	cfg.Files = args

	return nil
}
