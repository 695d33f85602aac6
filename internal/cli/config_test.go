package cli

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jigsaw "github.com/AlexeyTsvetkov/jigsaw-puzzle"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), true)
	require.Error(t, err)
}

func TestLoadConfigXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, appName), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, appName, "config.toml"), []byte(`measure = "lab"`), 0o644))

	cfg, err := LoadConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, "lab", cfg.Measure)
	assert.Equal(t, DefaultConfig().Inspect, cfg.Inspect)
}

func TestLoadConfigValues(t *testing.T) {
	path := writeConfig(t, `
measure = "rgb"
workers = 3
background = "#ff8000"

[generate]
seed = 99
shuffle = false

[inspect]
colors = 4
method = "kmeans"
`)
	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Measure:    "rgb",
		Workers:    3,
		Background: "#ff8000",
		Generate:   GenerateConfig{Seed: 99, Shuffle: false},
		Inspect:    InspectConfig{Colors: 4, Method: "kmeans"},
	}, cfg)
}

func TestLoadConfigRejects(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key":     `colour = "red"`,
		"unknown measure": `measure = "sobel"`,
		"bad background":  `background = "#zz0000"`,
		"negative":        `workers = -2`,
		"syntax":          `measure = `,
	} {
		_, err := LoadConfig(writeConfig(t, body), true)
		require.Error(t, err, name)
	}

	_, err := LoadConfig(writeConfig(t, `measure = "sobel"`), true)
	require.ErrorIs(t, err, jigsaw.ErrUnknownMeasure)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}, c)

	c, err = parseColor("ffffff")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)

	_, err = parseColor("")
	require.Error(t, err)
}
