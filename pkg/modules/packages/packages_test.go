package packages

import (
	"testing"

	"github.com/arthur-debert/outfit/pkg/cmdrun"
	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/confirm"
	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(pkgs []string) (*modules.Context, *cmdrun.Recorder) {
	runner := cmdrun.NewRecorder()
	return &modules.Context{
		Config:  &config.Config{Packages: config.PackagesConfig{Apt: pkgs}},
		Run:     runner,
		Confirm: confirm.Auto(true),
	}, runner
}

func TestRun_InstallsPackages(t *testing.T) {
	ctx, runner := newContext([]string{"git", "vim", "htop"})

	require.NoError(t, New().Run(ctx))
	assert.True(t, runner.Ran("sudo -E apt-get install -y git vim htop"))
}

func TestRun_EmptyListIsNoOp(t *testing.T) {
	ctx, runner := newContext(nil)

	require.NoError(t, New().Run(ctx))
	assert.Empty(t, runner.Calls)
}

func TestRun_Declined(t *testing.T) {
	ctx, runner := newContext([]string{"git"})
	ctx.Confirm = confirm.Auto(false)

	err := New().Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfirmationDeclined))
	assert.Empty(t, runner.Calls)
}

func TestRun_DryRun(t *testing.T) {
	ctx, runner := newContext([]string{"git"})
	ctx.DryRun = true

	require.NoError(t, New().Run(ctx))
	assert.Empty(t, runner.Calls)
}
