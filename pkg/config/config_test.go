package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point the loader at an empty config dir so host configuration can't
// leak into tests
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Proxy.Enabled)
	assert.Equal(t, 3128, cfg.Proxy.Port)
	assert.Equal(t, []string{"localhost", "127.0.0.1"}, cfg.Proxy.NoProxy)
	assert.Empty(t, cfg.Packages.Apt)
	assert.Equal(t, "suspend", cfg.Power.LidCloseAction)
	assert.Equal(t, "# ", cfg.Blocks.TitleMarker)
	// ~ paths are expanded
	assert.True(t, filepath.IsAbs(cfg.Dotfiles.Path), "dotfiles path should be expanded: %s", cfg.Dotfiles.Path)
}

func TestLoad_UserConfigFile(t *testing.T) {
	dir := isolate(t)

	content := `
[proxy]
enabled = true
host = "proxy.corp.example"

[packages]
apt = ["git", "vim"]

[[users]]
name = "deploy"
groups = ["sudo"]
shell = "/bin/bash"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "outfit.toml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Proxy.Enabled)
	assert.Equal(t, "proxy.corp.example", cfg.Proxy.Host)
	// defaults survive for keys the file does not set
	assert.Equal(t, 3128, cfg.Proxy.Port)
	assert.Equal(t, []string{"git", "vim"}, cfg.Packages.Apt)
	require.Len(t, cfg.Users, 1)
	assert.Equal(t, "deploy", cfg.Users[0].Name)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("OUTFIT_PROXY_HOST", "proxy.env.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "proxy.env.example", cfg.Proxy.Host)
}

func TestLoadWithOverrides(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithOverrides(map[string]interface{}{
		"dotfiles.repo": "https://example.com/dotfiles.git",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/dotfiles.git", cfg.Dotfiles.Repo)
}

func TestDefaultContent(t *testing.T) {
	content := DefaultContent()
	assert.Contains(t, content, "[proxy]")
	assert.Contains(t, content, "title_marker")
}

func TestMarshalTOML(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	out, err := MarshalTOML(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[proxy]")
	assert.Contains(t, out, "port = 3128")
}

func TestProxyURL(t *testing.T) {
	assert.Equal(t, "", ProxyConfig{}.URL())
	assert.Equal(t, "http://proxy:3128", ProxyConfig{Host: "proxy", Port: 3128}.URL())
}
