package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/neural-visualization/internal/config"
	"github.com/iburimskiy/neural-visualization/internal/scene"
)

// EdgePolicy selects how edges are colored.
type EdgePolicy int

const (
	// EdgeGradient strokes each edge with a fixed two-stop gradient.
	EdgeGradient EdgePolicy = iota
	// EdgeAnimated strokes each edge with a solid color that cycles over time.
	EdgeAnimated
)

const (
	minEdgeAlpha = 0.3
	maxEdgeAlpha = 0.6
)

type Style struct {
	EdgePolicy  EdgePolicy
	EdgeWidth   float64
	StaggerStep float64

	GradientStart, GradientEnd color.NRGBA
	MixFrom, MixTo             colorful.Color

	NodeRadius float64
	NodeFill   color.NRGBA
	Glow       Glow
}

// NewStyle resolves the drawing parameters of c.
func NewStyle(c config.Config) (Style, error) {
	s := Style{
		EdgeWidth:   c.EdgeWidth,
		StaggerStep: c.StaggerStep,
		NodeRadius:  c.NodeRadius,
	}
	switch c.EdgeColor {
	case config.EdgeGradient:
		s.EdgePolicy = EdgeGradient
	case config.EdgeAnimated:
		s.EdgePolicy = EdgeAnimated
	default:
		return Style{}, fmt.Errorf("unknown edge color policy %q", c.EdgeColor)
	}

	var err error
	p := c.Palette
	if s.GradientStart, err = parseColor(p.GradientStart); err != nil {
		return Style{}, err
	}
	if s.GradientEnd, err = parseColor(p.GradientEnd); err != nil {
		return Style{}, err
	}
	if s.NodeFill, err = parseColor(p.NodeFill); err != nil {
		return Style{}, err
	}
	glow, err := parseColor(p.NodeGlow)
	if err != nil {
		return Style{}, err
	}
	s.Glow = Glow{Blur: c.GlowRadius, Color: glow}

	if s.MixFrom, err = colorful.Hex(p.MixFrom.Hex); err != nil {
		return Style{}, fmt.Errorf("color %q: %w", p.MixFrom.Hex, err)
	}
	if s.MixTo, err = colorful.Hex(p.MixTo.Hex); err != nil {
		return Style{}, fmt.Errorf("color %q: %w", p.MixTo.Hex, err)
	}
	return s, nil
}

type Renderer struct {
	style Style
}

func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

func (r *Renderer) Style() Style { return r.style }

// Draw clears the surface and draws the scene as it stands, edges first so
// they sit beneath the nodes.
func (r *Renderer) Draw(s Surface, sc *scene.Scene) {
	s.Clear()
	r.DrawEdges(s, sc)
	for _, n := range sc.Nodes {
		r.DrawNode(s, n)
	}
}

func (r *Renderer) DrawEdges(s Surface, sc *scene.Scene) {
	for i, e := range sc.Edges {
		s.StrokeLine(e.From.Pos, e.To.Pos, r.style.EdgeWidth, r.EdgePaint(i, e, sc.Offset))
	}
}

func (r *Renderer) DrawNode(s Surface, n *scene.Node) {
	s.FillCircle(n.Pos, r.style.NodeRadius, r.style.NodeFill, r.style.Glow)
}

// EdgePaint returns the paint for edge i at the given color offset.
func (r *Renderer) EdgePaint(i int, e scene.Connection, offset float64) Paint {
	if r.style.EdgePolicy == EdgeGradient {
		return LinearGradient{
			From:  e.From.Pos,
			To:    e.To.Pos,
			Start: r.style.GradientStart,
			End:   r.style.GradientEnd,
		}
	}
	return Solid{Color: r.AnimatedColor(i, offset)}
}

// AnimatedColor staggers each edge's phase by its index, so neighbouring
// edges pulse out of step.
func (r *Renderer) AnimatedColor(i int, offset float64) color.NRGBA {
	mix := MixFactor(offset + float64(i)*r.style.StaggerStep)
	cr, cg, cb := mixColor(r.style.MixFrom, r.style.MixTo, mix)
	return color.NRGBA{R: cr, G: cg, B: cb, A: alpha8(minEdgeAlpha + mix*(maxEdgeAlpha-minEdgeAlpha))}
}

// MixFactor maps a phase to [0,1] along one sine cycle per unit of phase.
func MixFactor(phase float64) float64 {
	t := phase - math.Floor(phase)
	return clamp01((math.Sin(t*2*math.Pi) + 1) / 2)
}
