package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/neural-visualization/internal/scene"
)

// glowRings approximates a blurred shadow with stacked translucent circles.
const glowRings = 6

// PNGSurface rasterizes into an in-memory image. Coordinates are logical
// units multiplied by scale, the headless stand-in for device pixel ratio.
type PNGSurface struct {
	dc         *gg.Context
	scale      float64
	background color.Color
}

// NewPNGSurface allocates a width*scale by height*scale canvas. A nil
// background clears to transparent.
func NewPNGSurface(width, height int, scale float64, background color.Color) *PNGSurface {
	if scale <= 0 {
		scale = 1
	}
	if background == nil {
		background = color.Transparent
	}
	w := int(float64(width) * scale)
	h := int(float64(height) * scale)
	return &PNGSurface{dc: gg.NewContext(w, h), scale: scale, background: background}
}

func (p *PNGSurface) Clear() {
	p.dc.SetColor(p.background)
	p.dc.Clear()
}

func (p *PNGSurface) StrokeLine(from, to scene.Point, width float64, paint Paint) {
	x0, y0 := from.X*p.scale, from.Y*p.scale
	x1, y1 := to.X*p.scale, to.Y*p.scale

	switch pt := paint.(type) {
	case LinearGradient:
		// gradient geometry is evaluated in device pixels
		g := gg.NewLinearGradient(pt.From.X*p.scale, pt.From.Y*p.scale, pt.To.X*p.scale, pt.To.Y*p.scale)
		g.AddColorStop(0, pt.Start)
		g.AddColorStop(1, pt.End)
		p.dc.SetStrokeStyle(g)
	case Solid:
		p.dc.SetColor(pt.Color)
	}

	p.dc.SetLineWidth(width * p.scale)
	p.dc.DrawLine(x0, y0, x1, y1)
	p.dc.Stroke()
}

func (p *PNGSurface) FillCircle(center scene.Point, radius float64, fill color.NRGBA, glow Glow) {
	cx, cy, r := center.X*p.scale, center.Y*p.scale, radius*p.scale

	if glow.Visible() {
		spread := glow.Blur * p.scale / 2
		for i := glowRings; i > 0; i-- {
			c := glow.Color
			c.A = uint8(float64(glow.Color.A) * 0.25 * float64(glowRings-i+1) / glowRings)
			p.dc.SetColor(c)
			p.dc.DrawCircle(cx, cy, r+spread*float64(i)/glowRings)
			p.dc.Fill()
		}
	}

	p.dc.SetColor(fill)
	p.dc.DrawCircle(cx, cy, r)
	p.dc.Fill()
}

func (p *PNGSurface) Image() image.Image { return p.dc.Image() }

func (p *PNGSurface) EncodePNG(w io.Writer) error { return p.dc.EncodePNG(w) }

func (p *PNGSurface) SavePNG(path string) error { return p.dc.SavePNG(path) }
