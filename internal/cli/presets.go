package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/neural-visualization/internal/config"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePresets(cmd.OutOrStdout())
		},
	}
}

func writePresets(w io.Writer) error {
	for _, name := range config.PresetNames() {
		c, err := config.Preset(name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%-8s layers=%v padding=%.0f%%/%.0f%% fan-out=%s edges=%s\n",
			name, c.Layers, c.Padding.Horizontal*100, c.Padding.Vertical*100, c.FanOut, c.EdgeColor)
		if err != nil {
			return err
		}
	}
	return nil
}
