package dotfiles

import (
	"testing"

	"github.com/arthur-debert/outfit/pkg/blockfile"
	"github.com/arthur-debert/outfit/pkg/cmdrun"
	"github.com/arthur-debert/outfit/pkg/config"
	"github.com/arthur-debert/outfit/pkg/confirm"
	"github.com/arthur-debert/outfit/pkg/filesystem"
	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/arthur-debert/outfit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (*modules.Context, types.FS, *cmdrun.Recorder) {
	t.Helper()
	t.Setenv("HOME", "/home/user")

	fs := filesystem.NewMemoryFS()
	runner := cmdrun.NewRecorder()
	ctx := &modules.Context{
		Config: &config.Config{Dotfiles: config.DotfilesConfig{
			Repo:    "https://example.com/dotfiles.git",
			Path:    "/home/user/dotfiles",
			Profile: "/home/user/.bashrc",
		}},
		FS:      fs,
		Blocks:  blockfile.New(fs, confirm.Auto(true)),
		Run:     runner,
		Confirm: confirm.Auto(true),
	}
	return ctx, fs, runner
}

func TestRun_ClonesOnFirstRun(t *testing.T) {
	ctx, _, runner := newContext(t)

	require.NoError(t, New().Run(ctx))
	assert.True(t, runner.Ran("git clone https://example.com/dotfiles.git /home/user/dotfiles"))
}

func TestRun_PullsWhenCheckedOut(t *testing.T) {
	ctx, fs, runner := newContext(t)
	require.NoError(t, fs.MkdirAll("/home/user/dotfiles/.git", 0755))

	require.NoError(t, New().Run(ctx))
	assert.True(t, runner.Ran("git -C /home/user/dotfiles pull --ff-only"))
	assert.False(t, runner.Ran("git clone https://example.com/dotfiles.git /home/user/dotfiles"))
}

func TestRun_NoRepoConfigured(t *testing.T) {
	ctx, _, runner := newContext(t)
	ctx.Config.Dotfiles.Repo = ""

	require.NoError(t, New().Run(ctx))
	assert.Empty(t, runner.Calls)
}

func TestRun_HooksShellProfile(t *testing.T) {
	ctx, fs, _ := newContext(t)
	require.NoError(t, fs.WriteFile("/home/user/.bashrc", []byte("export EDITOR=vim\n"), 0644))

	require.NoError(t, New().Run(ctx))

	data, err := fs.ReadFile("/home/user/.bashrc")
	require.NoError(t, err)
	assert.Equal(t,
		"export EDITOR=vim\n\n# outfit dotfiles\n[ -f \"/home/user/dotfiles/profile.sh\" ] && . \"/home/user/dotfiles/profile.sh\"\n",
		string(data))
}

func TestRun_ProfileHookIsIdempotent(t *testing.T) {
	ctx, fs, _ := newContext(t)

	require.NoError(t, New().Run(ctx))
	first, err := fs.ReadFile("/home/user/.bashrc")
	require.NoError(t, err)

	require.NoError(t, New().Run(ctx))
	second, err := fs.ReadFile("/home/user/.bashrc")
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRun_LinksHomeFiles(t *testing.T) {
	ctx, fs, _ := newContext(t)
	require.NoError(t, fs.MkdirAll("/home/user/dotfiles/home", 0755))
	require.NoError(t, fs.WriteFile("/home/user/dotfiles/home/gitconfig", []byte("[user]\n"), 0644))

	require.NoError(t, New().Run(ctx))

	// The afero memory fs simulates symlinks as files holding the target
	target, err := fs.Readlink("/home/user/.gitconfig")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/dotfiles/home/gitconfig", target)
}

func TestRun_DryRunTouchesNothing(t *testing.T) {
	ctx, fs, runner := newContext(t)
	ctx.DryRun = true
	ctx.Blocks = blockfile.New(fs, confirm.Auto(true), blockfile.WithDryRun(true))

	require.NoError(t, New().Run(ctx))
	assert.Empty(t, runner.Calls)
}
