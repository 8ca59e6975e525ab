package block

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the block command group with its insert and
// remove subcommands. The subcommand logic is attached by the root
// command to avoid circular dependencies.
func NewCommand() (parent, insert, remove *cobra.Command) {
	parent = &cobra.Command{
		Use:     "block",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
	}

	insert = &cobra.Command{
		Use:     "insert <file> <title> [lines...]",
		Short:   MsgInsertShort,
		Long:    MsgInsertLong,
		Example: MsgInsertExample,
		Args:    cobra.MinimumNArgs(2),
	}
	insert.Flags().String("describe", "", MsgFlagDescribe)

	remove = &cobra.Command{
		Use:     "remove <file> <title> [lines...]",
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Example: MsgRemoveExample,
		Args:    cobra.MinimumNArgs(2),
	}
	remove.Flags().String("describe", "", MsgFlagDescribe)

	parent.AddCommand(insert)
	parent.AddCommand(remove)
	return parent, insert, remove
}
