// Package render draws a scene onto an immediate-mode Surface.
//
// A Surface is the host's drawing API: clear, stroke a line with a solid or
// gradient paint, and fill a circle with an optional glow. The package ships
// a PNG surface backed by gg; the windowed host lives in internal/game.
package render

import (
	"image/color"

	"github.com/iburimskiy/neural-visualization/internal/scene"
)

// Surface is drawn in logical units. Implementations apply their own device
// scale.
type Surface interface {
	Clear()
	StrokeLine(from, to scene.Point, width float64, paint Paint)
	FillCircle(center scene.Point, radius float64, fill color.NRGBA, glow Glow)
}

// Paint is either Solid or LinearGradient.
type Paint interface {
	paint()
}

type Solid struct {
	Color color.NRGBA
}

// LinearGradient runs from Start at From to End at To.
type LinearGradient struct {
	From, To   scene.Point
	Start, End color.NRGBA
}

func (Solid) paint()          {}
func (LinearGradient) paint() {}

// Glow is a soft halo drawn behind a circle. The zero Glow draws nothing.
type Glow struct {
	Blur  float64
	Color color.NRGBA
}

func (g Glow) Visible() bool {
	return g.Blur > 0 && g.Color.A > 0
}

// At returns the gradient color at fraction t along its axis.
func (g LinearGradient) At(t float64) color.NRGBA {
	return lerpNRGBA(g.Start, g.End, clamp01(t))
}

// Project returns the fraction along the gradient axis of p.
func (g LinearGradient) Project(p scene.Point) float64 {
	dx, dy := g.To.X-g.From.X, g.To.Y-g.From.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return clamp01(((p.X-g.From.X)*dx + (p.Y-g.From.Y)*dy) / l2)
}
