package cli

// Message constants
const (
	MsgRootShort = "A machine provisioning toolkit"
	MsgRootLong  = `outfit provisions a workstation from a declarative configuration:
packages, proxy settings, user accounts, dotfiles and power tweaks.

Every file it touches is edited through managed blocks: changes are
confirmed before they happen, applied idempotently, and written
atomically. Running outfit twice converges to the same machine state.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagYes     = "Assume yes for every confirmation prompt"

	MsgDryRunBanner = "DRY RUN MODE - no changes were made"
	MsgDeclined     = "Declined, file left unchanged"

	MsgConfigExists  = "Config file already exists, not overwriting: %s\n"
	MsgConfigWritten = "Written %s\n"

	MsgTopicsHeader = "Available topics:"

	MsgErrModulesFailed = "%d module(s) failed"
	MsgErrUnknownTopic  = "unknown topic %q (available: %s)"
)
