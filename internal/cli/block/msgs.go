package block

// Message constants
const (
	MsgShort = "Edit managed blocks in arbitrary files"
	MsgLong  = `Block exposes outfit's managed-block editor directly. A block is a
title line (by default a '# ' heading) followed by the lines outfit
manages; everything outside a block is never touched.

Both subcommands are idempotent: repeating a call changes nothing, and
a call that finds the file already in the desired state succeeds
without prompting. See 'outfit topics blocks' for the full semantics.`

	MsgInsertShort = "Ensure a block and its lines exist in a file"
	MsgInsertLong  = `Insert makes sure the file contains the given title and that every
given line exists within the title's block. Lines already present are
left alone. A missing file is created, parent directories included.`
	MsgInsertExample = `  # Add an aliases block to ~/.bashrc
  outfit block insert ~/.bashrc "# my aliases" "alias ll='ls -la'"

  # A second identical call is a no-op
  outfit block insert ~/.bashrc "# my aliases" "alias ll='ls -la'"`

	MsgRemoveShort = "Remove lines from a block in a file"
	MsgRemoveLong  = `Remove deletes the given lines from the title's block. Lines the
block contains that were not asked for survive. When the removal
empties the block, the title line goes too. A missing file or absent
title is already the desired state and succeeds.`
	MsgRemoveExample = `  # Undo the insert example exactly
  outfit block remove ~/.bashrc "# my aliases" "alias ll='ls -la'"`

	MsgFlagDescribe = "Description shown in the confirmation prompt"
)
