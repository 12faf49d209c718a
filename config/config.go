package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler/consolehandler"
)

// Config holds console logging configuration
type Config struct {
	// Verbosity of the output: quiet, normal, verbose, very_verbose or debug
	Verbosity string `toml:"verbosity" validate:"omitempty,oneof=quiet normal verbose very_verbose debug"`
	// Color is auto, always or never
	Color string `toml:"color" validate:"omitempty,oneof=auto always never"`
	// Level used for lines read from a stream
	Level string `toml:"level" validate:"omitempty,oneof=debug info notice warning error critical alert emergency"`
	// Styles override or extend the default level styles
	Styles map[string]formatter.StyleSpec `toml:"styles,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Verbosity: core.VerbosityNormal.String(),
		Color:     "auto",
		Level:     core.InfoLevel.String(),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes TOML on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath, falling back to defaults
// when there is none
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save writes cfg to path as TOML
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns $XDG_CONFIG_HOME/conlog/config.toml, or the same
// file under ~/.config
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "conlog", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "conlog", "config.toml")
}

// Validate checks field values and every style spec
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for name, spec := range c.Styles {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `<>/\`) {
			return fmt.Errorf("invalid style name %q", name)
		}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
	}
	return nil
}

// StyleTable returns the default table with the configured styles applied
func (c *Config) StyleTable() (*formatter.StyleTable, error) {
	table := formatter.DefaultStyleTable()
	for name, spec := range c.Styles {
		if err := table.Set(name, spec); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// VerbosityLevel parses the configured verbosity
func (c *Config) VerbosityLevel() (core.Verbosity, error) {
	return core.ParseVerbosity(c.Verbosity)
}

// StreamLevel parses the configured stream level
func (c *Config) StreamLevel() (core.Level, error) {
	if c.Level == "" {
		return core.InfoLevel, nil
	}
	return core.ParseLevel(c.Level)
}

// ColorMode maps the color setting to a consolehandler.ColorMode
func (c *Config) ColorMode() consolehandler.ColorMode {
	switch strings.ToLower(c.Color) {
	case "always":
		return consolehandler.ColorAlways
	case "never":
		return consolehandler.ColorNever
	default:
		return consolehandler.ColorAuto
	}
}

// NewOutput builds a console output on w from the config
func (c *Config) NewOutput(w io.Writer) (*consolehandler.ConsoleOutput, error) {
	verbosity, err := c.VerbosityLevel()
	if err != nil {
		return nil, err
	}
	styles, err := c.StyleTable()
	if err != nil {
		return nil, err
	}
	return consolehandler.NewConsoleOutput(consolehandler.ConsoleConfig{
		Writer:    w,
		Verbosity: verbosity,
		Styles:    styles,
		Color:     c.ColorMode(),
	}), nil
}
