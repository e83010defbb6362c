// Package cli implements the neuralviz command line.
//
// Commands:
//   - run: open a window and animate until closed
//   - snapshot: render frames headlessly to PNG
//   - presets: list the built-in presets
//
// Every command resolves its configuration the same way: start from a
// preset, decode an optional TOML or YAML file over it, then apply flags
// that were set explicitly.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/neural-visualization/internal/config"
)

// Execute runs the root command. With --error-dialog a failure is also shown
// in a native dialog, for launches without a terminal.
func Execute() error {
	root, opts := newRootCmd()
	err := root.ExecuteContext(context.Background())
	if err != nil && opts.errorDialog {
		showError(err)
	}
	return err
}

type rootOpts struct {
	verbose     bool
	errorDialog bool
}

func newRootCmd() (*cobra.Command, *rootOpts) {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "neuralviz",
		Short:        "Animated neural network backdrop",
		Long:         `neuralviz draws a layered node-and-edge graph whose nodes drift around their slots, with edges in gradient or cycling colors.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&opts.errorDialog, "error-dialog", false, "show fatal errors in a dialog window")

	root.AddCommand(newRunCmd())
	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newPresetsCmd())

	return root, opts
}

// sceneFlags are shared by every command that builds a scene.
type sceneFlags struct {
	preset     string
	configPath string
	layers     []int
	fanOut     string
	edgeColor  string
	seed       int64
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.preset, "preset", "p", config.PresetClassic, "preset: classic or drift")
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML or YAML config file")
	fs.IntSliceVar(&f.layers, "layers", nil, "node count per layer, e.g. 5,10,8,5")
	fs.StringVar(&f.fanOut, "fan-out", "", "fan-out policy: ordered or random")
	fs.StringVar(&f.edgeColor, "edge-color", "", "edge color policy: gradient or animated")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 uses the clock)")
}

// resolve builds the config for cmd and validates it after flag overrides.
func (f *sceneFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Resolve(f.preset, f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("layers") {
		c.Layers = append([]int(nil), f.layers...)
	}
	if fs.Changed("fan-out") {
		c.FanOut = f.fanOut
	}
	if fs.Changed("edge-color") {
		c.EdgeColor = f.edgeColor
	}
	if fs.Changed("seed") {
		c.Seed = f.seed
	}

	if err := c.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("flags: %w", err)
	}
	return c, nil
}
