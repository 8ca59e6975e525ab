package up

// Message constants
const (
	MsgShort = "Apply provisioning module(s) to this machine"
	MsgLong  = `The 'up' command is outfit's primary provisioning command. It runs
the configured modules against this machine:
  - installs the configured apt packages
  - writes or removes the proxy blocks in /etc/environment, apt and git
  - creates configured user accounts
  - clones the dotfiles repository and links it into $HOME
  - applies desktop power settings

Every file change goes through managed blocks: it is shown for
confirmation, applied idempotently and written atomically. Running
'up' twice converges to the same machine state.

With no arguments all registered modules run; name modules to run a
subset.`

	MsgExample = `  # Run every module
  outfit up

  # Run specific modules
  outfit up proxy packages

  # Preview without changing anything
  outfit up --dry-run

  # Non-interactive run
  outfit up --yes`
)
