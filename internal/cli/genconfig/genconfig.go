package genconfig

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the genconfig command
// The command logic is attached by the root command to avoid circular
// dependencies
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	cmd.Flags().Bool("merged", false, MsgFlagMerged)
	cmd.MarkFlagsMutuallyExclusive("write", "merged")

	return cmd
}
