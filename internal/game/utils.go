package game

import (
	"image/color"

	"github.com/iburimskiy/neural-visualization/internal/scene"
)

// vertexColor converts c to the straight-alpha components ebiten.Vertex expects.
func vertexColor(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// toDevice scales a logical point by the device scale factor.
func toDevice(p scene.Point, scale float64) (float32, float32) {
	return float32(p.X * scale), float32(p.Y * scale)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
