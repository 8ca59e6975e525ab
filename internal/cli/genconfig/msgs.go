package genconfig

// Message constants
const (
	MsgShort = "Generate a configuration file"
	MsgLong  = `Output the built-in default configuration to stdout, or write it to
~/.config/outfit/outfit.toml with -w. An existing config file is never
overwritten.

With --merged, print the effective configuration instead: defaults,
config files and OUTFIT_* environment variables merged together.`

	MsgExample = `  outfit genconfig                 # Defaults to stdout
  outfit genconfig -w              # Write ~/.config/outfit/outfit.toml
  outfit genconfig --merged        # Show the effective configuration`

	MsgFlagWrite  = "Write the config file instead of printing it"
	MsgFlagMerged = "Print the merged effective configuration"
)
