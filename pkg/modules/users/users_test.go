package users

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

func newContext(users ...config.UserConfig) (*modules.Context, *cmdrun.Recorder) {
	runner := cmdrun.NewRecorder()
	return &modules.Context{
		Config:  &config.Config{Users: users},
		Run:     runner,
		Confirm: confirm.Auto(true),
	}, runner
}

func TestRun_CreatesMissingUser(t *testing.T) {
	ctx, runner := newContext(config.UserConfig{
		Name:   "deploy",
		Shell:  "/bin/bash",
		Groups: []string{"sudo", "docker"},
	})
	// id fails -> user does not exist
	runner.Errs["id -u deploy"] = errors.New(errors.ErrCommandRun, "no such user")

	require.NoError(t, New().Run(ctx))

	assert.True(t, runner.Ran("sudo useradd -m -s /bin/bash deploy"))
	assert.True(t, runner.Ran("sudo usermod -aG sudo,docker deploy"))
}

func TestRun_ExistingUserOnlyGetsGroups(t *testing.T) {
	ctx, runner := newContext(config.UserConfig{
		Name:   "deploy",
		Groups: []string{"sudo"},
	})

	require.NoError(t, New().Run(ctx))

	assert.False(t, runner.Ran("sudo useradd -m deploy"))
	assert.True(t, runner.Ran("sudo usermod -aG sudo deploy"))
}

func TestRun_NoUsersIsNoOp(t *testing.T) {
	ctx, runner := newContext()

	require.NoError(t, New().Run(ctx))
	assert.Empty(t, runner.Calls)
}

func TestRun_Declined(t *testing.T) {
	ctx, runner := newContext(config.UserConfig{Name: "deploy"})
	ctx.Confirm = confirm.Auto(false)

	err := New().Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfirmationDeclined))
	assert.Empty(t, runner.Calls)
}

func TestRun_DryRun(t *testing.T) {
	ctx, runner := newContext(config.UserConfig{Name: "deploy"})
	ctx.DryRun = true

	require.NoError(t, New().Run(ctx))
	assert.Empty(t, runner.Calls)
}
