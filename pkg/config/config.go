// Package config loads outfit's configuration.
//
// Sources merge in order of increasing precedence: embedded defaults,
// the user config file (~/.config/outfit/outfit.toml), an outfit.toml
// in the current directory, OUTFIT_* environment variables, and
// programmatic overrides from CLI flags.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is outfit's fully merged configuration
type Config struct {
	Proxy    ProxyConfig    `koanf:"proxy" toml:"proxy"`
	Packages PackagesConfig `koanf:"packages" toml:"packages"`
	Users    []UserConfig   `koanf:"users" toml:"users"`
	Dotfiles DotfilesConfig `koanf:"dotfiles" toml:"dotfiles"`
	Power    PowerConfig    `koanf:"power" toml:"power"`
	Blocks   BlocksConfig   `koanf:"blocks" toml:"blocks"`
}

// ProxyConfig describes the HTTP proxy the machine sits behind
type ProxyConfig struct {
	Enabled bool     `koanf:"enabled" toml:"enabled"`
	Host    string   `koanf:"host" toml:"host"`
	Port    int      `koanf:"port" toml:"port"`
	NoProxy []string `koanf:"no_proxy" toml:"no_proxy"`
}

// URL returns the proxy URL, or "" when no host is configured
func (p ProxyConfig) URL() string {
	if p.Host == "" {
		return ""
	}
	return "http://" + p.Host + ":" + strconv.Itoa(p.Port)
}

// PackagesConfig lists the packages the packages module installs
type PackagesConfig struct {
	Apt []string `koanf:"apt" toml:"apt"`
}

// UserConfig describes an account the users module creates
type UserConfig struct {
	Name   string   `koanf:"name" toml:"name"`
	Groups []string `koanf:"groups" toml:"groups"`
	Shell  string   `koanf:"shell" toml:"shell"`
}

// DotfilesConfig describes the dotfiles repository and how it hooks
// into the user's shell
type DotfilesConfig struct {
	Repo    string `koanf:"repo" toml:"repo"`
	Path    string `koanf:"path" toml:"path"`
	Profile string `koanf:"profile" toml:"profile"`
}

// PowerConfig holds desktop power management settings
type PowerConfig struct {
	IdleDelay      int    `koanf:"idle_delay" toml:"idle_delay"`
	LidCloseAction string `koanf:"lid_close_action" toml:"lid_close_action"`
}

// BlocksConfig configures the block editor's title convention
type BlocksConfig struct {
	// TitleMarker is the prefix that makes a line a section title
	TitleMarker string `koanf:"title_marker" toml:"title_marker"`
}

// Load returns the merged configuration
func Load() (*Config, error) {
	return LoadWithOverrides(nil)
}

// LoadWithOverrides returns the merged configuration with the given
// programmatic overrides applied last (keys in koanf dot notation,
// e.g. "dotfiles.repo")
func LoadWithOverrides(overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. User config file, then a local one next to the caller
	for _, path := range []string{paths.ConfigFilePath(), "outfit.toml"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	// 3. Environment: OUTFIT_PROXY_HOST -> proxy.host
	envProvider := env.Provider("OUTFIT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "OUTFIT_")), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. CLI flag overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	cfg.Dotfiles.Path = paths.ExpandHome(cfg.Dotfiles.Path)
	cfg.Dotfiles.Profile = paths.ExpandHome(cfg.Dotfiles.Profile)

	return &cfg, nil
}
