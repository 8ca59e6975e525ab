package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	assert.Equal(t, "/custom/config", ConfigDir())
	assert.Equal(t, "/custom/config/outfit.toml", ConfigFilePath())
}

func TestDataDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvDataDir, "/custom/data")
	assert.Equal(t, "/custom/data", DataDir())
}

func TestConfigDir_Default(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	dir := ConfigDir()
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, "outfit", filepath.Base(dir))
}

func TestExpandHome(t *testing.T) {
	t.Setenv(EnvHome, "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"~", "/home/tester"},
		{"~/dotfiles", "/home/tester/dotfiles"},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/other", "~user/other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandHome(tt.in), "ExpandHome(%q)", tt.in)
	}
}
