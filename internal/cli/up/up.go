package up

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the up command
// The command logic is attached by the root command to avoid circular
// dependencies
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "up [modules...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
	}

	return cmd
}
