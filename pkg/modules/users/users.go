// Package users creates the local accounts named in the
// configuration. Existing accounts are left alone apart from
// supplementary group membership, which is re-applied on every run.
package users

import (
	"strings"

	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/logging"
	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/arthur-debert/outfit/pkg/types"
)

type module struct{}

func init() {
	modules.Register(&module{})
}

// New returns the users module
func New() modules.Module {
	return &module{}
}

func (m *module) Name() string { return "users" }

func (m *module) Description() string {
	return "Create the configured user accounts"
}

func (m *module) Run(ctx *modules.Context) error {
	logger := logging.GetLogger("users")

	users := ctx.Config.Users
	if len(users) == 0 {
		logger.Debug().Msg("No users configured, nothing to do")
		return nil
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}

	ok, err := ctx.Confirm.Confirm(types.ConfirmationRequest{
		Module:      m.Name(),
		Operation:   "create",
		Description: "create user accounts",
		Items:       names,
		Default:     true,
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.ErrConfirmationDeclined, "user creation declined")
	}

	for _, u := range users {
		if err := m.ensure(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

// ensure creates the account if missing and applies its groups
func (m *module) ensure(ctx *modules.Context, u config.UserConfig) error {
	logger := logging.GetLogger("users")

	if ctx.DryRun {
		logger.Info().Str("user", u.Name).Msg("Dry run, skipping user creation")
		return nil
	}

	exists := true
	if _, err := ctx.Run.Output("id", "-u", u.Name); err != nil {
		exists = false
	}

	if !exists {
		args := []string{"useradd", "-m"}
		if u.Shell != "" {
			args = append(args, "-s", u.Shell)
		}
		args = append(args, u.Name)
		if err := ctx.Run.Run("sudo", args...); err != nil {
			return err
		}
		logger.Info().Str("user", u.Name).Msg("User created")
	} else {
		logger.Debug().Str("user", u.Name).Msg("User already exists")
	}

	if len(u.Groups) > 0 {
		return ctx.Run.Run("sudo", "usermod", "-aG", strings.Join(u.Groups, ","), u.Name)
	}
	return nil
}
