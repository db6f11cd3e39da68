// Package config loads the defaults of the radix command from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/govalues/radix"
	"github.com/govalues/radix/internal/logging"
)

// Defaults used when neither the config file nor flags set a value.
const (
	DefaultFrom      = 10
	DefaultTo        = 2
	DefaultPrecision = radix.DefaultPrecision
)

// Config holds the settings of the radix command.
type Config struct {
	From      int       `toml:"from"`
	To        int       `toml:"to"`
	Precision int       `toml:"precision"`
	Log       LogConfig `toml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		From:      DefaultFrom,
		To:        DefaultTo,
		Precision: DefaultPrecision,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultPath returns the path of the user config file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "radix", "config.toml"), nil
}

// Load reads the config file at path on top of the defaults.
// A missing file is not an error when the path is the default one.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logging.Warn("unknown config keys", "path", path, "keys", fmt.Sprint(undecoded))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path in TOML format.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks the bases, precision and logging settings.
func (c *Config) Validate() error {
	if _, err := radix.NewBase(c.From); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if _, err := radix.NewBase(c.To); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}
