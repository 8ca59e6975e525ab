package config

import (
	_ "embed"
	"errors"
)

// defaultConfig holds the embedded built-in defaults
//
//go:embed defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
