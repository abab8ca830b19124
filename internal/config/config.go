package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is looked up in $XDG_CONFIG_HOME.
	FileName = "hellman.yaml"
	// DotFileName is looked up in $HOME.
	DotFileName = ".hellman.yaml"

	EnvConfig   = "HELLMAN_CONFIG"
	EnvLogLevel = "HELLMAN_LOG_LEVEL"
	EnvColor    = "HELLMAN_COLOR"
)

var ErrInvalidColorMode = errors.New("invalid color mode")

// ColorMode controls when rendered lines are styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // color when stdout is a terminal
	ColorAlways ColorMode = "always" // always use color
	ColorNever  ColorMode = "never"  // never use color
)

// ParseColorMode validates s. The empty string selects ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
	}
}

type Report struct {
	Format string `yaml:"format"`
	Title  string `yaml:"title"`
}

// Config holds settings shared by all commands.
type Config struct {
	// Source is the file the config was read from, empty for defaults.
	Source   string    `yaml:"-"`
	LogLevel string    `yaml:"log_level"`
	Color    ColorMode `yaml:"color"`
	Report   Report    `yaml:"report"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Color:    ColorAuto,
	}
}

// Load reads the config file at path, or the first one found in the
// standard locations when path is empty, and applies environment
// overrides. A missing file in a standard location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	explicit := path != ""
	if !explicit {
		path = findConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
			cfg.Source = path
		case explicit || !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = ColorMode(v)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config and normalizes the color mode.
func (c *Config) Validate() error {
	mode, err := ParseColorMode(string(c.Color))
	if err != nil {
		return err
	}
	c.Color = mode
	return nil
}

func findConfigPath() string {
	var candidates []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DotFileName))
	}

	for _, file := range candidates {
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			return file
		}
	}
	return ""
}
