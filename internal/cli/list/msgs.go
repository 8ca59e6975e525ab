package list

// Message constants
const (
	MsgShort = "List the available provisioning modules"
	MsgLong  = `List shows every registered provisioning module with a one-line
description of what it does. Any of these names can be passed to
'outfit up'.`

	MsgExample = `  # Show all modules
  outfit list`
)
