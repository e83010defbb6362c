package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/neural-visualization/internal/render"
	"github.com/iburimskiy/neural-visualization/internal/scene"
)

// surface draws onto an ebiten screen image. Coordinates arrive in logical
// units and are multiplied by the device scale factor.
type surface struct {
	dst   *ebiten.Image
	scale float64

	white *ebiten.Image
	glow  *ebiten.Image

	// reused between strokes
	vs []ebiten.Vertex
	is []uint16
}

func newSurface() *surface {
	return &surface{
		scale: 1,
		white: newWhitePixel(),
		glow:  newGlowTexture(glowTextureSize),
	}
}

func (s *surface) Clear() {
	s.dst.Clear()
}

// StrokeLine tessellates the line and colors every vertex, which yields a
// true linear gradient along the stroke.
func (s *surface) StrokeLine(from, to scene.Point, width float64, paint render.Paint) {
	x0, y0 := toDevice(from, s.scale)
	x1, y1 := toDevice(to, s.scale)

	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:   float32(width * s.scale),
		LineCap: vector.LineCapButt,
	})

	for i := range s.vs {
		v := &s.vs[i]
		v.SrcX, v.SrcY = 1, 1
		c := s.colorAt(paint, v.DstX, v.DstY)
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = vertexColor(c)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.vs, s.is, s.white, op)
}

func (s *surface) colorAt(paint render.Paint, dx, dy float32) color.NRGBA {
	switch p := paint.(type) {
	case render.LinearGradient:
		pt := scene.Point{X: float64(dx) / s.scale, Y: float64(dy) / s.scale}
		return p.At(p.Project(pt))
	case render.Solid:
		return p.Color
	default:
		return color.NRGBA{}
	}
}

// FillCircle draws the glow first, then the solid disc on top. The glow is
// part of this call only, so nothing carries over to the next draw.
func (s *surface) FillCircle(center scene.Point, radius float64, fill color.NRGBA, glow render.Glow) {
	cx, cy := toDevice(center, s.scale)

	if glow.Visible() {
		extent := (radius + glow.Blur) * s.scale * 2
		scale := extent / float64(glowTextureSize)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-glowTextureSize/2, -glowTextureSize/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(cx), float64(cy))
		op.ColorScale.ScaleWithColor(glow.Color)
		op.Filter = ebiten.FilterLinear
		s.dst.DrawImage(s.glow, op)
	}

	vector.DrawFilledCircle(s.dst, cx, cy, float32(radius*s.scale), fill, true)
}
