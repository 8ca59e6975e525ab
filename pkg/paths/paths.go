// Package paths provides centralized path handling for outfit.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for outfit
	EnvConfigDir = "OUTFIT_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for outfit
	EnvDataDir = "OUTFIT_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names
const (
	// AppDirName is the directory name for outfit-specific files
	AppDirName = "outfit"

	// ConfigFileName is the name of the main configuration file
	ConfigFileName = "outfit.toml"

	// LogFileName is the name of the log file
	LogFileName = "outfit.log"
)

// ConfigDir returns the directory holding outfit's own configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the path of the main configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// DataDir returns the directory for outfit's data files
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// StateDir returns the directory for outfit's state files
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
