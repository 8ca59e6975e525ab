package proxy

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

func newContext(t *testing.T, proxyCfg config.ProxyConfig) (*modules.Context, types.FS, *cmdrun.Recorder) {
	t.Helper()
	fs := filesystem.NewMemoryFS()
	runner := cmdrun.NewRecorder()
	ctx := &modules.Context{
		Config:  &config.Config{Proxy: proxyCfg},
		FS:      fs,
		Blocks:  blockfile.New(fs, confirm.Auto(true)),
		Run:     runner,
		Confirm: confirm.Auto(true),
	}
	return ctx, fs, runner
}

func TestRun_EnableWritesBlocks(t *testing.T) {
	ctx, fs, runner := newContext(t, config.ProxyConfig{
		Enabled: true,
		Host:    "proxy.corp.example",
		Port:    3128,
		NoProxy: []string{"localhost", "127.0.0.1"},
	})
	require.NoError(t, fs.WriteFile(EnvironmentPath, []byte("LANG=C\n"), 0644))

	require.NoError(t, New().Run(ctx))

	env, err := fs.ReadFile(EnvironmentPath)
	require.NoError(t, err)
	assert.Equal(t,
		"LANG=C\n\n# outfit proxy\nhttp_proxy=http://proxy.corp.example:3128\nhttps_proxy=http://proxy.corp.example:3128\nno_proxy=localhost,127.0.0.1\n",
		string(env))

	apt, err := fs.ReadFile(AptConfPath)
	require.NoError(t, err)
	assert.Contains(t, string(apt), `Acquire::http::Proxy "http://proxy.corp.example:3128";`)

	assert.True(t, runner.Ran("git config --global http.proxy http://proxy.corp.example:3128"))
}

func TestRun_EnableIsIdempotent(t *testing.T) {
	ctx, fs, _ := newContext(t, config.ProxyConfig{
		Enabled: true,
		Host:    "proxy.corp.example",
		Port:    3128,
	})

	require.NoError(t, New().Run(ctx))
	first, err := fs.ReadFile(EnvironmentPath)
	require.NoError(t, err)

	require.NoError(t, New().Run(ctx))
	second, err := fs.ReadFile(EnvironmentPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRun_DisableRemovesBlocks(t *testing.T) {
	enabled := config.ProxyConfig{
		Enabled: true,
		Host:    "proxy.corp.example",
		Port:    3128,
	}
	ctx, fs, _ := newContext(t, enabled)
	require.NoError(t, fs.WriteFile(EnvironmentPath, []byte("LANG=C\n"), 0644))
	require.NoError(t, New().Run(ctx))

	// Flip the switch; the block must come back out cleanly
	disabled := enabled
	disabled.Enabled = false
	ctx.Config.Proxy = disabled

	runner := cmdrun.NewRecorder()
	ctx.Run = runner
	require.NoError(t, New().Run(ctx))

	env, err := fs.ReadFile(EnvironmentPath)
	require.NoError(t, err)
	assert.Equal(t, "LANG=C\n", string(env))
	assert.True(t, runner.Ran("git config --global --unset http.proxy"))
}

func TestRun_EnabledWithoutHostFails(t *testing.T) {
	ctx, _, _ := newContext(t, config.ProxyConfig{Enabled: true})
	assert.Error(t, New().Run(ctx))
}

func TestRun_DryRunSkipsGit(t *testing.T) {
	ctx, _, runner := newContext(t, config.ProxyConfig{
		Enabled: true,
		Host:    "proxy.corp.example",
		Port:    3128,
	})
	ctx.DryRun = true
	ctx.Blocks = blockfile.New(ctx.FS, confirm.Auto(true), blockfile.WithDryRun(true))

	require.NoError(t, New().Run(ctx))
	assert.Empty(t, runner.Calls)
}
