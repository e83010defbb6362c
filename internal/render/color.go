package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/neural-visualization/internal/config"
)

// parseColor turns a config color into straight-alpha NRGBA.
func parseColor(c config.Color) (color.NRGBA, error) {
	cc, err := colorful.Hex(c.Hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", c.Hex, err)
	}
	r, g, b := cc.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(c.Alpha)}, nil
}

// mixColor blends two colors in RGB space; t is clamped to [0,1].
func mixColor(a, b colorful.Color, t float64) (uint8, uint8, uint8) {
	return a.BlendRgb(b, clamp01(t)).Clamped().RGB255()
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
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
