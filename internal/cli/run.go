package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/neural-visualization/internal/anim"
	"github.com/iburimskiy/neural-visualization/internal/config"
	"github.com/iburimskiy/neural-visualization/internal/game"
)

const statsInterval = 5 * time.Second

type runOpts struct {
	scene      sceneFlags
	width      int
	height     int
	fullscreen bool
	debug      bool
}

func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and animate the network",
		Long:  `Open a resizable window and animate until it is closed, Escape is pressed, or the process is interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runWindow(cmd.Context(), c, opts.debug)
		},
	}

	opts.scene.register(cmd)
	cmd.Flags().IntVar(&opts.width, "width", config.WindowWidth, "initial window width")
	cmd.Flags().IntVar(&opts.height, "height", config.WindowHeight, "initial window height")
	cmd.Flags().BoolVar(&opts.fullscreen, "fullscreen", false, "start in fullscreen")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "print tick rate and scene size on screen")

	return cmd
}

func (o *runOpts) resolve(cmd *cobra.Command) (config.Config, error) {
	c, err := o.scene.resolve(cmd)
	if err != nil {
		return config.Config{}, err
	}
	fs := cmd.Flags()
	if fs.Changed("width") {
		c.Window.Width = o.width
	}
	if fs.Changed("height") {
		c.Window.Height = o.height
	}
	if fs.Changed("fullscreen") {
		c.Window.Fullscreen = o.fullscreen
	}
	return c, c.Validate()
}

func runWindow(ctx context.Context, c config.Config, debug bool) error {
	logger := loggerFromContext(ctx)

	a, err := anim.New(c, logger)
	if err != nil {
		return err
	}
	g := game.New(a, logger, game.Options{Debug: debug})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		g.Stop()
	}()
	go reportStats(ctx, logger, g)

	ebiten.SetWindowSize(c.Window.Width, c.Window.Height)
	ebiten.SetWindowTitle(c.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(c.Window.Fullscreen)

	logger.Info("starting", "layers", c.Layers, "fan_out", c.FanOut, "edge_color", c.EdgeColor)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("stopped", "frames", a.Frames())
	return nil
}

// reportStats logs the measured tick rate until ctx is done.
func reportStats(ctx context.Context, logger *log.Logger, g *game.Game) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logger.Debug("frame stats", "tps", g.TickRate())
		}
	}
}
