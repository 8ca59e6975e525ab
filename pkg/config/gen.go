package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/outfit/pkg/errors"
)

// DefaultContent returns the built-in defaults as commented TOML,
// suitable as a starting point for a user config file.
func DefaultContent() string {
	return string(defaultConfig)
}

// MarshalTOML renders a merged configuration back to TOML. Used by
// `outfit genconfig --merged` to show the effective configuration
// after files, environment and flags are applied.
func MarshalTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}
	return string(data), nil
}
