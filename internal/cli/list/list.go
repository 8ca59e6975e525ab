package list

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the list command
// The command logic is attached by the root command to avoid circular
// dependencies
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
	}
}
