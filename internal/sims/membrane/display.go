package membrane

import (
	"image/color"
	"math"
)

// Palette exposes one color per lipid type for rendering. Index 0 is unused
// because type values start at 1; it stays black.
func (w *World) Palette() []color.RGBA {
	return TypePalette(w.cfg.Params.Types)
}

// TypePalette builds a palette of k visually distinct colors, indexed by
// lipid type value.
func TypePalette(k int) []color.RGBA {
	palette := make([]color.RGBA, k+1)
	palette[0] = color.RGBA{A: 255}
	for t := 1; t <= k; t++ {
		hue := float64(t-1) / float64(k) * 360
		palette[t] = hsvToRGBA(hue, 0.62, 0.94)
	}
	return palette
}

func hsvToRGBA(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
