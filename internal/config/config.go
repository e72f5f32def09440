// Package config loads pincecheck settings: defaults, then an optional YAML
// file, then PINCECHECK_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/pincecheck/internal/flow"
	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting.
type Config struct {
	// DBPath is the SQLite file holding operator credentials.
	DBPath string `yaml:"db_path"`

	// LogFile receives structured logs. Empty disables logging; the TUI
	// owns stdout so logs never go there.
	LogFile        string `yaml:"log_file"`
	LogLevel       string `yaml:"log_level"`
	LogTransitions bool   `yaml:"log_transitions"`

	// StaleRemediation is "purge" or "keep".
	StaleRemediation string `yaml:"stale_remediation"`

	// WordWrap is the column width of the About and Contact pages.
	WordWrap int `yaml:"word_wrap"`
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pincecheck"
	}
	return filepath.Join(home, ".pincecheck")
}

// DefaultPath returns the config file location: PINCECHECK_CONFIG if set,
// otherwise ~/.pincecheck/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("PINCECHECK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(defaultDir(), "config.yaml")
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		DBPath:           filepath.Join(defaultDir(), "pincecheck.db"),
		LogLevel:         "info",
		StaleRemediation: string(flow.StalePurge),
		WordWrap:         80,
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PINCECHECK_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("PINCECHECK_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("PINCECHECK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PINCECHECK_LOG_TRANSITIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogTransitions = b
		}
	}
	if v := os.Getenv("PINCECHECK_STALE_REMEDIATION"); v != "" {
		c.StaleRemediation = v
	}
	if v := os.Getenv("PINCECHECK_WORD_WRAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.WordWrap = n
		}
	}
}

// Validate rejects settings the rest of the program cannot use.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if _, err := flow.ParseStalePolicy(c.StaleRemediation); err != nil {
		return fmt.Errorf("stale_remediation: %w", err)
	}
	if c.WordWrap <= 0 {
		return fmt.Errorf("word_wrap must be positive, got %d", c.WordWrap)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
