// Package packages installs the apt packages named in the
// configuration. Installation is delegated entirely to apt-get, which
// is already idempotent for present packages.
package packages

import (
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/arthur-debert/outfit/pkg/types"
)

type module struct{}

func init() {
	modules.Register(&module{})
}

// New returns the packages module
func New() modules.Module {
	return &module{}
}

func (m *module) Name() string { return "packages" }

func (m *module) Description() string {
	return "Install the configured apt packages"
}

func (m *module) Run(ctx *modules.Context) error {
	logger := logging.GetLogger("packages")

	pkgs := ctx.Config.Packages.Apt
	if len(pkgs) == 0 {
		logger.Debug().Msg("No packages configured, nothing to do")
		return nil
	}

	ok, err := ctx.Confirm.Confirm(types.ConfirmationRequest{
		Module:      m.Name(),
		Operation:   "install",
		Description: "install apt packages",
		Items:       pkgs,
		Default:     true,
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.ErrConfirmationDeclined, "package installation declined")
	}

	if ctx.DryRun {
		logger.Info().Strs("packages", pkgs).Msg("Dry run, skipping apt-get")
		return nil
	}

	args := append([]string{"-E", "apt-get", "install", "-y"}, pkgs...)
	return ctx.Run.Run("sudo", args...)
}
