// Package confirm provides the confirmation policies gating every
// file change outfit makes.
//
// Policies are plain values implementing types.Confirmer, passed
// explicitly to whatever needs them. There is no package-level flag:
// a caller that wants auto-approval asks for the Auto policy.
package confirm

import (
	"os"

	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Auto returns a policy with a fixed answer. Auto(true) is the
// override used for automated and non-interactive runs; Auto(false)
// is handy in tests exercising the declined path.
func Auto(allow bool) types.Confirmer {
	logger := logging.GetLogger("confirm")
	return types.ConfirmerFunc(func(req types.ConfirmationRequest) (bool, error) {
		logger.Debug().Bool("allow", allow).Str("description", req.Description).
			Msg("Auto confirmation policy applied")
		return allow, nil
	})
}

// Console returns an interactive policy prompting on the terminal.
// The request's description is shown verbatim; its Default is used
// when the user just presses enter.
func Console() types.Confirmer {
	return types.ConfirmerFunc(func(req types.ConfirmationRequest) (bool, error) {
		if len(req.Items) > 0 {
			pterm.Info.Println(req.Description)
			for _, item := range req.Items {
				pterm.Printf("  %s\n", item)
			}
		}
		return pterm.DefaultInteractiveConfirm.
			WithDefaultValue(req.Default).
			Show(req.Description)
	})
}

// For picks the policy for a run: --yes or a non-interactive stdin
// force approval, everything else prompts on the console.
func For(assumeYes bool) types.Confirmer {
	if assumeYes {
		return Auto(true)
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return Auto(true)
	}
	return Console()
}
