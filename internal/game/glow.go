package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const glowTextureSize = 64

// newGlowTexture renders a white radial falloff with premultiplied alpha.
// Drawn tinted and scaled under a node, it stands in for a shadow blur.
func newGlowTexture(size int) *ebiten.Image {
	pixels := make([]byte, size*size*4)
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-center, float64(y)+0.5-center
			d := clamp01(math.Sqrt(dx*dx+dy*dy) / center)
			// gaussian-ish: dense core, long soft tail
			v := uint8(math.Round(math.Exp(-d*d*4) * (1 - d) * 255))
			i := (y*size + x) * 4
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = v, v, v, v
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pixels)
	return img
}

// newWhitePixel returns a 1x1 white sub-image used as the source for
// DrawTriangles, sampled away from the edges to avoid bleeding.
func newWhitePixel() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}
