package cli

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	jigsaw "github.com/AlexeyTsvetkov/jigsaw-puzzle"
)

// Config holds the defaults a config file may set. Command-line flags
// take precedence when given.
type Config struct {
	Measure    string         `toml:"measure"`
	Workers    int            `toml:"workers"`
	Background string         `toml:"background"`
	Generate   GenerateConfig `toml:"generate"`
	Inspect    InspectConfig  `toml:"inspect"`
}

type GenerateConfig struct {
	// Seed for shuffling; 0 picks a random one.
	Seed    uint64 `toml:"seed"`
	Shuffle bool   `toml:"shuffle"`
}

type InspectConfig struct {
	Colors int    `toml:"colors"`
	Method string `toml:"method"`
}

func DefaultConfig() Config {
	return Config{
		Measure:    "rgb-mgc",
		Background: "#000000",
		Generate:   GenerateConfig{Shuffle: true},
		Inspect:    InspectConfig{Colors: 6, Method: "dominant"},
	}
}

// configPath returns the config file location using the XDG standard
// (~/.config/jigsaw/config.toml).
func configPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads path over DefaultConfig. An empty path means the XDG
// location. A missing file is only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return DefaultConfig(), nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown keys %v", path, keys)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := jigsaw.MeasureByName(c.Measure); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	if _, err := parseColor(c.Background); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Inspect.Colors < 0 {
		return fmt.Errorf("config: inspect.colors must not be negative, got %d", c.Inspect.Colors)
	}
	return nil
}

// parseColor reads a #rrggbb hex color. The result is opaque.
func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("background %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
