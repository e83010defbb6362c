// Package rendertest provides a Surface that records draw calls.
package rendertest

import (
	"image/color"

	"github.com/iburimskiy/neural-visualization/internal/render"
	"github.com/iburimskiy/neural-visualization/internal/scene"
)

type Op int

const (
	OpClear Op = iota
	OpLine
	OpCircle
)

type Call struct {
	Op     Op
	From   scene.Point
	To     scene.Point
	Width  float64
	Paint  render.Paint
	Radius float64
	Fill   color.NRGBA
	Glow   render.Glow
}

// Recorder implements render.Surface by appending every call.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

func (r *Recorder) StrokeLine(from, to scene.Point, width float64, paint render.Paint) {
	r.Calls = append(r.Calls, Call{Op: OpLine, From: from, To: to, Width: width, Paint: paint})
}

func (r *Recorder) FillCircle(center scene.Point, radius float64, fill color.NRGBA, glow render.Glow) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, From: center, Radius: radius, Fill: fill, Glow: glow})
}

func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Frames splits the recording at each Clear.
func (r *Recorder) Frames() [][]Call {
	var frames [][]Call
	for _, c := range r.Calls {
		if c.Op == OpClear || len(frames) == 0 {
			frames = append(frames, nil)
		}
		frames[len(frames)-1] = append(frames[len(frames)-1], c)
	}
	return frames
}
