package topicscmd

// Message constants
const (
	MsgShort = "Read long-form help topics"
	MsgLong  = `Topics lists outfit's long-form help topics, or renders one of them
for the terminal.`

	MsgExample = `  outfit topics            # List topics
  outfit topics blocks     # Read about managed blocks`
)
