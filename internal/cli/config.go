package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tinkerkit/graphson/pkg/traversal"
)

// Config holds the user-level defaults read from config.toml. Flags always
// win over config values.
type Config struct {
	// Namespace is the tag namespace prefix used when re-tagging values
	// ("g" unless a server extension namespace is in play).
	Namespace string `toml:"namespace"`

	// LambdaLanguage is the language assumed for bare lambda scripts.
	LambdaLanguage string `toml:"lambda_language"`

	// Pretty indents decode output by default.
	Pretty bool `toml:"pretty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Namespace:      "g",
		LambdaLanguage: traversal.DefaultLambdaLanguage,
	}
}

// LoadConfig reads a toml config file, layering it over the defaults.
// Unknown keys are rejected so typos surface instead of silently doing
// nothing.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, os.ErrNotExist
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
