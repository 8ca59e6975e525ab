// Package power applies desktop power-management settings through
// gsettings. Settings are written unconditionally; gsettings itself is
// idempotent for values already in place.
package power

import (
	"strconv"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/arthur-debert/outfit/pkg/types"
)

// gsettings schemas touched by this module
const (
	sessionSchema = "org.gnome.desktop.session"
	powerSchema   = "org.gnome.settings-daemon.plugins.power"
)

type module struct{}

func init() {
	modules.Register(&module{})
}

// New returns the power module
func New() modules.Module {
	return &module{}
}

func (m *module) Name() string { return "power" }

func (m *module) Description() string {
	return "Apply idle and lid-close power settings"
}

func (m *module) Run(ctx *modules.Context) error {
	logger := logging.GetLogger("power")
	cfg := ctx.Config.Power

	settings := [][]string{
		{sessionSchema, "idle-delay", "uint32 " + strconv.Itoa(cfg.IdleDelay)},
		{powerSchema, "lid-close-ac-action", cfg.LidCloseAction},
		{powerSchema, "lid-close-battery-action", cfg.LidCloseAction},
	}

	items := make([]string, 0, len(settings))
	for _, s := range settings {
		items = append(items, s[1]+" = "+s[2])
	}

	ok, err := ctx.Confirm.Confirm(types.ConfirmationRequest{
		Module:      m.Name(),
		Operation:   "apply",
		Description: "apply power management settings",
		Items:       items,
		Default:     true,
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.ErrConfirmationDeclined, "power settings declined")
	}

	if ctx.DryRun {
		logger.Info().Strs("settings", items).Msg("Dry run, skipping gsettings")
		return nil
	}

	for _, s := range settings {
		if err := ctx.Run.Run("gsettings", "set", s[0], s[1], s[2]); err != nil {
			return err
		}
	}
	return nil
}
