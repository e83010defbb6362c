package anim

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/neural-visualization/internal/config"
	"github.com/iburimskiy/neural-visualization/internal/render/rendertest"
	"github.com/iburimskiy/neural-visualization/internal/scene"
)

func newAnimator(t *testing.T, preset string) *Animator {
	t.Helper()
	c, err := config.Preset(preset)
	require.NoError(t, err)
	c.Seed = 42
	a, err := New(c, log.New(io.Discard))
	require.NoError(t, err)
	return a
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	c := config.Default()
	c.Layers = []int{5}
	_, err := New(c, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestParams(t *testing.T) {
	c, err := config.Preset(config.PresetDrift)
	require.NoError(t, err)
	p := Params(c)

	assert.Equal(t, scene.FanOutRandom, p.FanOut)
	assert.Equal(t, c.Layers, p.Layers)
	assert.InDelta(t, 0.01, p.Padding.Vertical, 1e-9)
	assert.InDelta(t, 45, p.Motion.Amplitude, 1e-9)

	p.Layers[0] = 100
	assert.NotEqual(t, 100, c.Layers[0])
}

func TestTickBeforeResize(t *testing.T) {
	a := newAnimator(t, config.PresetClassic)
	assert.ErrorIs(t, a.Tick(&rendertest.Recorder{}), ErrNoScene)
	assert.ErrorIs(t, a.Step(), ErrNoScene)
	assert.ErrorIs(t, a.Draw(&rendertest.Recorder{}), ErrNoScene)
}

func TestTickDrawsOneFrame(t *testing.T) {
	a := newAnimator(t, config.PresetClassic)
	require.NoError(t, a.Resize(1000, 800))
	sc := a.Scene()

	rec := &rendertest.Recorder{}
	require.NoError(t, a.RunFrames(3, rec))

	frames := rec.Frames()
	require.Len(t, frames, 3)
	for _, f := range frames {
		assert.Equal(t, rendertest.OpClear, f[0].Op)
		lines := f[1 : 1+len(sc.Edges)]
		for _, c := range lines {
			assert.Equal(t, rendertest.OpLine, c.Op)
		}
		circles := f[1+len(sc.Edges):]
		assert.Len(t, circles, len(sc.Nodes))
		for _, c := range circles {
			assert.Equal(t, rendertest.OpCircle, c.Op)
		}
	}
	assert.Equal(t, uint64(3), a.Frames())
}

func TestTickMovesNodesWithinAmplitude(t *testing.T) {
	a := newAnimator(t, config.PresetClassic)
	require.NoError(t, a.Resize(1280, 720))
	n := a.Scene().Nodes[0]
	start := n.Pos

	rec := &rendertest.Recorder{}
	require.NoError(t, a.RunFrames(600, rec))

	assert.NotEqual(t, start, n.Pos)
	assert.LessOrEqual(t, n.Pos.X-n.Base.X, 45.0+1e-9)
	assert.GreaterOrEqual(t, n.Pos.X-n.Base.X, -45.0-1e-9)
}

func TestTickAdvancesOffset(t *testing.T) {
	a := newAnimator(t, config.PresetDrift)
	require.NoError(t, a.Resize(800, 600))
	require.NoError(t, a.Tick(&rendertest.Recorder{}))
	assert.InDelta(t, config.OffsetSpeed, a.Scene().Offset, 1e-12)
}

func TestResizeReplacesScene(t *testing.T) {
	a := newAnimator(t, config.PresetClassic)
	require.NoError(t, a.Resize(800, 600))
	old := a.Scene()
	oldNodes := old.Nodes
	oldBase := oldNodes[0].Base

	require.NoError(t, a.Resize(1920, 1080))
	cur := a.Scene()

	assert.NotSame(t, old, cur)
	assert.Len(t, cur.Nodes, 28)
	assert.Equal(t, oldBase, oldNodes[0].Base, "old scene must not be mutated")
	assert.InDelta(t, 1920*0.05, cur.Nodes[0].Base.X, 1e-9)
	assert.InDelta(t, 1920.0, cur.Width, 1e-9)
}

func TestResizeFailureKeepsScene(t *testing.T) {
	a := newAnimator(t, config.PresetClassic)
	require.NoError(t, a.Resize(800, 600))
	old := a.Scene()

	assert.ErrorIs(t, a.Resize(0, 600), scene.ErrBadViewport)
	assert.Same(t, old, a.Scene())
}

func TestStepThenDraw(t *testing.T) {
	a := newAnimator(t, config.PresetDrift)
	require.NoError(t, a.Resize(800, 600))
	n := a.Scene().Nodes[0]
	phase := n.PhaseX

	require.NoError(t, a.Step())
	assert.InDelta(t, phase+n.Speed, n.PhaseX, 1e-12)

	rec := &rendertest.Recorder{}
	require.NoError(t, a.Draw(rec))
	assert.Equal(t, len(a.Scene().Nodes), rec.Count(rendertest.OpCircle))
	assert.InDelta(t, phase+n.Speed, n.PhaseX, 1e-12, "draw must not advance motion")
}

func TestRunStopsOnCancel(t *testing.T) {
	a := newAnimator(t, config.PresetClassic)
	require.NoError(t, a.Resize(800, 600))

	ctx, cancel := context.WithCancel(context.Background())
	rec := &rendertest.Recorder{}
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx, time.Millisecond, rec) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.Positive(t, a.Frames())
}

func TestRunWithoutScene(t *testing.T) {
	a := newAnimator(t, config.PresetClassic)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.ErrorIs(t, a.Run(ctx, time.Millisecond, &rendertest.Recorder{}), ErrNoScene)
}
