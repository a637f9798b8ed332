// Package export renders the simulation's output grids into files: heatmap
// PNGs, CSV dumps, an acceptance-rate chart and an optional lattice video.
// It consumes the engine's outputs and never feeds back into a run.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	titleBarHeight = 20
	legendWidth    = 64
	legendBarWidth = 12
	legendPad      = 8
)

// Heatmap renders scalar grids as PNG images with a color ramp, a min/max
// legend and a title line.
type Heatmap struct {
	CellSize int
	Title    string
}

// Render produces the heatmap image for a row-major w×h grid. Values are
// normalized to the grid's own min/max; a flat grid renders at the cold end
// of the ramp.
func (hm Heatmap) Render(values []float64, w, h int) *image.RGBA {
	cell := hm.CellSize
	if cell < 1 {
		cell = 1
	}
	gridW, gridH := w*cell, h*cell
	img := image.NewRGBA(image.Rect(0, 0, gridW+legendWidth, gridH+titleBarHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{R: 24, G: 24, B: 28, A: 255}}, image.Point{}, draw.Src)

	minV, maxV := minMax(values)
	span := maxV - minV

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := 0.0
			if span > 0 {
				t = (values[y*w+x] - minV) / span
			}
			fillRect(img, x*cell, titleBarHeight+y*cell, (x+1)*cell, titleBarHeight+(y+1)*cell, rampColor(t))
		}
	}

	legendX := gridW + legendPad
	denom := gridH - 1
	if denom < 1 {
		denom = 1
	}
	for ly := 0; ly < gridH; ly++ {
		t := 1 - float64(ly)/float64(denom)
		fillRect(img, legendX, titleBarHeight+ly, legendX+legendBarWidth, titleBarHeight+ly+1, rampColor(t))
	}
	drawLabel(img, legendX+legendBarWidth+4, titleBarHeight+10, formatValue(maxV))
	drawLabel(img, legendX+legendBarWidth+4, titleBarHeight+gridH-2, formatValue(minV))
	if hm.Title != "" {
		drawLabel(img, 4, 14, hm.Title)
	}
	return img
}

// WritePNG renders the grid and writes it to path.
func (hm Heatmap) WritePNG(path string, values []float64, w, h int) error {
	if len(values) != w*h {
		return fmt.Errorf("export: grid has %d values, want %d", len(values), w*h)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, hm.Render(values, w, h))
}

// rampColor maps t in [0, 1] onto a cold-to-hot gradient.
func rampColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 30, G: 50, B: 110, A: 255}},
		{0.25, color.RGBA{R: 40, G: 120, B: 180, A: 255}},
		{0.5, color.RGBA{R: 90, G: 190, B: 120, A: 255}},
		{0.75, color.RGBA{R: 235, G: 180, B: 60, A: 255}},
		{1.0, color.RGBA{R: 220, G: 50, B: 40, A: 255}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func drawLabel(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 230, G: 230, B: 230, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
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

// CountsToFloats converts a move-counter grid for heatmap rendering.
func CountsToFloats(counts []uint32) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}
	return out
}

// TypesToFloats converts a lipid-type grid for heatmap rendering.
func TypesToFloats(cells []uint8) []float64 {
	out := make([]float64, len(cells))
	for i, c := range cells {
		out[i] = float64(c)
	}
	return out
}

// FlattenMatrix converts a square matrix into row-major values plus its
// dimension.
func FlattenMatrix(m [][]float64) ([]float64, int) {
	k := len(m)
	out := make([]float64, 0, k*k)
	for _, row := range m {
		out = append(out, row...)
	}
	return out, k
}
