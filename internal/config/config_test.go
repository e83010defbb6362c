package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsAreValid(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			c, err := Preset(name)
			require.NoError(t, err)
			assert.NoError(t, c.Validate())
		})
	}
}

func TestClassicPreset(t *testing.T) {
	c := Default()
	assert.Equal(t, []int{5, 10, 8, 5}, c.Layers)
	assert.Equal(t, 28, c.NodeCount())
	assert.Equal(t, Padding{Horizontal: 0.05, Vertical: 0.05}, c.Padding)
	assert.Equal(t, FanOutOrdered, c.FanOut)
	assert.Equal(t, EdgeGradient, c.EdgeColor)
	assert.Equal(t, 5, c.MaxFanOut)
	assert.InDelta(t, 45, c.Amplitude, 1e-9)
}

func TestDriftPreset(t *testing.T) {
	c, err := Preset(PresetDrift)
	require.NoError(t, err)
	assert.Equal(t, Padding{Horizontal: 0.05, Vertical: 0.01}, c.Padding)
	assert.Equal(t, FanOutRandom, c.FanOut)
	assert.Equal(t, EdgeAnimated, c.EdgeColor)
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("nope")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestPresetReturnsCopy(t *testing.T) {
	a := Default()
	a.Layers[0] = 99
	b := Default()
	assert.Equal(t, 5, b.Layers[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"single layer", func(c *Config) { c.Layers = []int{5} }},
		{"no layers", func(c *Config) { c.Layers = nil }},
		{"empty layer", func(c *Config) { c.Layers = []int{3, 0, 2} }},
		{"bad fan-out policy", func(c *Config) { c.FanOut = "sideways" }},
		{"bad edge policy", func(c *Config) { c.EdgeColor = "rainbow" }},
		{"zero fan-out cap", func(c *Config) { c.MaxFanOut = 0 }},
		{"padding too large", func(c *Config) { c.Padding.Horizontal = 0.5 }},
		{"negative amplitude", func(c *Config) { c.Amplitude = -1 }},
		{"bad color", func(c *Config) { c.Palette.NodeFill.Hex = "purple" }},
		{"alpha out of range", func(c *Config) { c.Palette.GradientEnd.Alpha = 1.5 }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestValidateNil(t *testing.T) {
	var c *Config
	assert.ErrorIs(t, c.Validate(), ErrInvalid)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "viz.toml", `
layers = [3, 4, 3]
fan_out = "random"
amplitude = 20.0

[padding]
vertical = 0.02

[palette.node_fill]
hex = "#ffffff"
alpha = 1.0
`)
	c := Default()
	require.NoError(t, LoadFile(path, &c))

	assert.Equal(t, []int{3, 4, 3}, c.Layers)
	assert.Equal(t, FanOutRandom, c.FanOut)
	assert.InDelta(t, 20, c.Amplitude, 1e-9)
	assert.InDelta(t, 0.02, c.Padding.Vertical, 1e-9)
	assert.InDelta(t, 0.05, c.Padding.Horizontal, 1e-9, "untouched keys keep preset values")
	assert.Equal(t, "#ffffff", c.Palette.NodeFill.Hex)
	assert.Equal(t, EdgeGradient, c.EdgeColor)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "viz.yaml", `
layers: [2, 2]
edge_color: animated
window:
  fullscreen: true
`)
	c := Default()
	require.NoError(t, LoadFile(path, &c))

	assert.Equal(t, []int{2, 2}, c.Layers)
	assert.Equal(t, EdgeAnimated, c.EdgeColor)
	assert.True(t, c.Window.Fullscreen)
	assert.Equal(t, WindowWidth, c.Window.Width)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "viz.toml", `layers = [7]`)
	c := Default()
	assert.ErrorIs(t, LoadFile(path, &c), ErrInvalid)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeFile(t, "viz.json", `{}`)
	c := Default()
	assert.ErrorIs(t, LoadFile(path, &c), ErrUnknownFormat)
}

func TestLoadMissingFile(t *testing.T) {
	c := Default()
	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.toml"), &c))
}

func TestResolve(t *testing.T) {
	c, err := Resolve(PresetDrift, "")
	require.NoError(t, err)
	assert.Equal(t, EdgeAnimated, c.EdgeColor)

	path := writeFile(t, "viz.yml", "max_fan_out: 2\n")
	c, err = Resolve(PresetClassic, path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.MaxFanOut)
	assert.Equal(t, FanOutOrdered, c.FanOut)

	_, err = Resolve("missing", "")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
