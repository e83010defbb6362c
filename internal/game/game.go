// Package game hosts the animation in an Ebitengine window.
//
// Ebitengine calls Layout, Update and Draw in turn on a single goroutine.
// Layout doubles as the resize notification: when the outside size changes
// the scene is rebuilt there, before the next Update or Draw sees it.
package game

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/neural-visualization/internal/anim"
)

const frameRingSize = 120

var now = time.Now

type Options struct {
	// Debug prints tick rate and scene size in the corner.
	Debug bool
	// ScaleFactor reports the device pixel ratio. Defaults to the current
	// monitor's.
	ScaleFactor func() float64
}

type Game struct {
	anim   *anim.Animator
	logger *log.Logger
	opts   Options

	surface *surface
	tap     *frameTap

	width, height int
	scale         float64

	// last size a rebuild was attempted for, successful or not
	triedWidth, triedHeight int
	resize                  func(w, h float64) error

	stopped atomic.Bool
	lastErr error
}

func New(a *anim.Animator, logger *log.Logger, opts Options) *Game {
	if logger == nil {
		logger = log.Default()
	}
	if opts.ScaleFactor == nil {
		opts.ScaleFactor = func() float64 { return ebiten.Monitor().DeviceScaleFactor() }
	}
	return &Game{
		anim:   a,
		logger: logger,
		opts:   opts,
		tap:    newFrameTap(frameRingSize),
		resize: a.Resize,
	}
}

// Stop makes the next Update end the game loop. Safe to call from any
// goroutine.
func (g *Game) Stop() {
	g.stopped.Store(true)
}

// TickRate is the measured number of updates per second.
func (g *Game) TickRate() float64 {
	return g.tap.rate()
}

func (g *Game) Update() error {
	if g.stopped.Load() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.lastErr != nil {
		return g.lastErr
	}
	// started minimized: wait for the first non-empty Layout
	if g.anim.Scene() == nil {
		return nil
	}
	g.tap.record(now())
	return g.anim.Step()
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = newSurface()
	}
	g.surface.dst = screen
	g.surface.scale = g.scale
	if err := g.anim.Draw(g.surface); err != nil {
		return
	}

	if g.opts.Debug {
		sc := g.anim.Scene()
		msg := fmt.Sprintf("TPS %.1f  FPS %.1f  %dx%d @%.2fx  nodes %d  edges %d",
			g.TickRate(), ebiten.ActualFPS(), g.width, g.height, g.scale, len(sc.Nodes), len(sc.Edges))
		ebitenutil.DebugPrintAt(screen, msg, 12, 12)
	}
}

// Layout rebuilds the scene when the window size or pixel density changes
// and returns the device-scaled screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.opts.ScaleFactor()
	if s <= 0 {
		s = 1
	}

	// a minimized window reports zero; keep the last scene
	resized := outsideWidth != g.triedWidth || outsideHeight != g.triedHeight
	if resized && outsideWidth > 0 && outsideHeight > 0 {
		g.triedWidth, g.triedHeight = outsideWidth, outsideHeight
		if err := g.resize(float64(outsideWidth), float64(outsideHeight)); err != nil {
			g.logger.Error("resize failed", "width", outsideWidth, "height", outsideHeight, "err", err)
			if g.anim.Scene() == nil {
				g.lastErr = err
			}
		} else {
			g.width, g.height = outsideWidth, outsideHeight
		}
	}
	if s != g.scale {
		g.logger.Debug("device scale changed", "scale", s)
		g.scale = s
	}

	return max(1, int(math.Ceil(float64(outsideWidth)*s))), max(1, int(math.Ceil(float64(outsideHeight)*s)))
}

// Size is the logical viewport the current scene was built for.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Scale() float64 { return g.scale }
