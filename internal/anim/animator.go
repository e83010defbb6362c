// Package anim runs the per-frame loop: it owns the current scene, rebuilds
// it on resize, and advances motion and edge colors once per tick.
package anim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/neural-visualization/internal/config"
	"github.com/iburimskiy/neural-visualization/internal/render"
	"github.com/iburimskiy/neural-visualization/internal/scene"
)

var ErrNoScene = errors.New("scene not built: call Resize first")

// Animator is not safe for concurrent use; the host calls it from a single
// goroutine.
type Animator struct {
	params      scene.Params
	renderer    *render.Renderer
	offsetSpeed float64
	rng         *rand.Rand
	logger      *log.Logger

	scene  *scene.Scene
	frames uint64
}

// New validates c and prepares an Animator. No scene exists until the first
// Resize.
func New(c config.Config, logger *log.Logger) (*Animator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	style, err := render.NewStyle(c)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Animator{
		params:      Params(c),
		renderer:    render.NewRenderer(style),
		offsetSpeed: c.OffsetSpeed,
		rng:         rand.New(rand.NewSource(seed)),
		logger:      logger,
	}, nil
}

// Params maps the scene-related fields of c.
func Params(c config.Config) scene.Params {
	fanOut := scene.FanOutOrdered
	if c.FanOut == config.FanOutRandom {
		fanOut = scene.FanOutRandom
	}
	return scene.Params{
		Layers:    append([]int(nil), c.Layers...),
		Padding:   scene.Padding{Horizontal: c.Padding.Horizontal, Vertical: c.Padding.Vertical},
		FanOut:    fanOut,
		MaxFanOut: c.MaxFanOut,
		Motion: scene.Motion{
			Amplitude:   c.Amplitude,
			SpeedBase:   c.SpeedBase,
			SpeedJitter: c.SpeedJitter,
		},
	}
}

// Resize rebuilds nodes and edges for a viewport of w by h logical units and
// swaps the new scene in. The previous scene is left untouched; on error it
// stays current.
func (a *Animator) Resize(w, h float64) error {
	sc, err := scene.Build(w, h, a.params, a.rng)
	if err != nil {
		return fmt.Errorf("rebuild %gx%g: %w", w, h, err)
	}
	a.scene = sc
	a.logger.Debug("scene rebuilt", "width", w, "height", h, "nodes", len(sc.Nodes), "edges", len(sc.Edges))
	return nil
}

// Scene returns the current scene, nil before the first Resize.
func (a *Animator) Scene() *scene.Scene { return a.scene }

func (a *Animator) Frames() uint64 { return a.frames }

// Tick runs one frame against s: clear, draw every edge, then update and
// draw every node, then advance the edge color offset.
func (a *Animator) Tick(s render.Surface) error {
	sc := a.scene
	if sc == nil {
		return ErrNoScene
	}

	s.Clear()
	a.renderer.DrawEdges(s, sc)
	for _, n := range sc.Nodes {
		n.Update()
		a.renderer.DrawNode(s, n)
	}
	sc.Advance(a.offsetSpeed)
	a.frames++
	return nil
}

// Step advances motion without drawing, for hosts that separate update from
// draw.
func (a *Animator) Step() error {
	sc := a.scene
	if sc == nil {
		return ErrNoScene
	}
	sc.UpdateNodes()
	sc.Advance(a.offsetSpeed)
	a.frames++
	return nil
}

// Draw renders the current scene without advancing it.
func (a *Animator) Draw(s render.Surface) error {
	if a.scene == nil {
		return ErrNoScene
	}
	a.renderer.Draw(s, a.scene)
	return nil
}

// Run ticks s every interval until ctx is done. It returns ctx.Err() on
// cancellation, or the first tick error.
func (a *Animator) Run(ctx context.Context, interval time.Duration, s render.Surface) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("animation stopped", "frames", a.frames)
			return ctx.Err()
		case <-ticker.C:
			if err := a.Tick(s); err != nil {
				return err
			}
		}
	}
}

// RunFrames ticks s n times back to back.
func (a *Animator) RunFrames(n int, s render.Surface) error {
	for range n {
		if err := a.Tick(s); err != nil {
			return err
		}
	}
	return nil
}
