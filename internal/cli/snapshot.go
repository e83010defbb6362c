package cli

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/neural-visualization/internal/anim"
	"github.com/iburimskiy/neural-visualization/internal/config"
	"github.com/iburimskiy/neural-visualization/internal/render"
)

// frameVerb matches the integer verb that turns --out into a sequence.
var frameVerb = regexp.MustCompile(`%[-+ #0]*[0-9]*d`)

type snapshotOpts struct {
	scene      sceneFlags
	output     string
	frames     int
	width      int
	height     int
	scale      float64
	background string
}

func newSnapshotCmd() *cobra.Command {
	opts := snapshotOpts{
		output: "neuralviz.png",
		frames: 1,
		width:  config.WindowWidth,
		height: config.WindowHeight,
		scale:  1,
	}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames to PNG without a window",
		Long: `Render the animation headlessly and write the last frame as a PNG.

If --out contains a printf verb (e.g. frame-%04d.png) every frame is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.scene.resolve(cmd)
			if err != nil {
				return err
			}
			return runSnapshot(cmd.Context(), c, opts)
		},
	}

	opts.scene.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&opts.output, "out", "o", opts.output, "output file, or a pattern like frame-%04d.png")
	fs.IntVarP(&opts.frames, "frames", "n", opts.frames, "number of frames to render")
	fs.IntVar(&opts.width, "width", opts.width, "viewport width in logical units")
	fs.IntVar(&opts.height, "height", opts.height, "viewport height in logical units")
	fs.Float64Var(&opts.scale, "scale", opts.scale, "device pixel ratio of the output")
	fs.StringVar(&opts.background, "background", "", "background hex color (default transparent)")

	return cmd
}

func runSnapshot(ctx context.Context, c config.Config, opts snapshotOpts) error {
	logger := loggerFromContext(ctx)

	if opts.frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", opts.frames)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", opts.scale)
	}
	bg, err := parseBackground(opts.background)
	if err != nil {
		return err
	}

	a, err := anim.New(c, logger)
	if err != nil {
		return err
	}
	if err := a.Resize(float64(opts.width), float64(opts.height)); err != nil {
		return err
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	prog := newProgress(logger)
	surface := render.NewPNGSurface(opts.width, opts.height, opts.scale, bg)

	if isSequence(opts.output) {
		for i := range opts.frames {
			if err := a.Tick(surface); err != nil {
				return err
			}
			path := fmt.Sprintf(opts.output, i)
			if err := surface.SavePNG(path); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			logger.Debug("frame written", "path", path)
		}
	} else {
		if err := a.RunFrames(opts.frames, surface); err != nil {
			return err
		}
		if err := surface.SavePNG(opts.output); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
	}

	prog.done("snapshot rendered", "frames", opts.frames, "out", opts.output)
	return nil
}

// isSequence reports whether out names one file per frame. A bare % such as
// in 100%.png is part of the file name.
func isSequence(out string) bool {
	return frameVerb.MatchString(strings.ReplaceAll(out, "%%", ""))
}

func parseBackground(hex string) (color.Color, error) {
	if hex == "" {
		return nil, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", hex, err)
	}
	return c.Clamped(), nil
}
