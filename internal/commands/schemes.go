package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/audioprobe/internal/logic"
)

// NewSchemesCommand creates a new cobra command for the schemes subcommand.
func NewSchemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the trial scheme registry in enumeration order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunSchemes()
		},
	}
}
