package cli

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/neural-visualization/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, _ := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSnapshotWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "frame.png")
	_, err := execute(t, "snapshot", "--out", path, "--frames", "3",
		"--width", "200", "--height", "100", "--scale", "2", "--seed", "7", "--background", "#101020")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestSnapshotSequence(t *testing.T) {
	dir := t.TempDir()
	pattern := filepath.Join(dir, "frame-%02d.png")
	_, err := execute(t, "snapshot", "--out", pattern, "-n", "3",
		"--width", "120", "--height", "80", "--preset", "drift")
	require.NoError(t, err)

	for _, name := range []string{"frame-00.png", "frame-01.png", "frame-02.png"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestSnapshotLiteralPercent(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "snapshot", "--out", filepath.Join(dir, "100%.png"), "-n", "2",
		"--width", "60", "--height", "40")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "100%.png"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestIsSequence(t *testing.T) {
	tests := []struct {
		out  string
		want bool
	}{
		{"frame.png", false},
		{"100%.png", false},
		{"100%%-%d.png", true},
		{"50%%.png", false},
		{"frame-%d.png", true},
		{"frame-%04d.png", true},
		{"out/%3d.png", true},
	}
	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			assert.Equal(t, tt.want, isSequence(tt.out))
		})
	}
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	tests := []struct {
		name string
		args []string
	}{
		{"single layer", []string{"--layers", "4"}},
		{"zero frames", []string{"--frames", "0"}},
		{"bad scale", []string{"--scale", "0"}},
		{"bad background", []string{"--background", "nope"}},
		{"bad fan-out", []string{"--fan-out", "diagonal"}},
		{"unknown preset", []string{"--preset", "wild"}},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.toml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"snapshot", "--out", out, "--width", "50", "--height", "50"}, tt.args...)
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestSceneFlagOverrides(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "viz.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("layers = [2, 3]\nedge_color = \"animated\"\n"), 0o644))

	var (
		flags sceneFlags
		got   config.Config
	)
	cmd := &cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			got, err = flags.resolve(cmd)
			return err
		},
	}
	flags.register(cmd)
	cmd.SetArgs([]string{"--config", cfgPath, "--fan-out", "random", "--seed", "9"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []int{2, 3}, got.Layers)
	assert.Equal(t, config.EdgeAnimated, got.EdgeColor)
	assert.Equal(t, config.FanOutRandom, got.FanOut)
	assert.Equal(t, int64(9), got.Seed)
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "classic")
	assert.Contains(t, out, "layers=[5 10 8 5]")
	assert.Contains(t, out, "drift")
	assert.Contains(t, out, "padding=5%/1%")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(io.Discard, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestParseBackground(t *testing.T) {
	c, err := parseBackground("")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = parseBackground("#ff0000")
	require.NoError(t, err)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xffff), a)
}
