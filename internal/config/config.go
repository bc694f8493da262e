// Package config loads the optional shell configuration file.
//
// The file is YAML and lives at $BSH_CONFIG, or <user config dir>/bsh/config.yaml
// when the variable is unset. A missing file is not an error: defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "BSH_CONFIG"

	appDir          = "bsh"
	configFileName  = "config.yaml"
	historyFileName = "history"
)

type Config struct {
	Prompt  string        `yaml:"prompt"`
	Color   bool          `yaml:"color"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives log records; empty discards them.
	File string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Prompt: "> ",
		Color:  true,
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Path returns the config file location without checking that it exists.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}

	return filepath.Join(dir, appDir, configFileName), nil
}

// Load reads the file at path over the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg.applyDefaults()
		return cfg, nil
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config from %q: %w", path, err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("failed to parse config from %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed for %q: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills values that depend on the environment.
func (c *Config) applyDefaults() {
	if !c.History.Enabled || c.History.File != "" {
		return
	}

	// without a config dir history is kept in memory only
	if dir, err := os.UserConfigDir(); err == nil {
		c.History.File = filepath.Join(dir, appDir, historyFileName)
	}
}

func (c *Config) Validate() error {
	if c.Prompt == "" {
		return errors.New("prompt must not be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return nil
}
