package topicscmd

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the topics command
// The command logic is attached by the root command to avoid circular
// dependencies
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
	}
}
