//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"lipidmc/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type probabilityProvider interface {
	ProbabilityGrid(dir int) []float64
}

// Overlay tints the screen by the simulation's current switch-probability
// field, one cardinal direction at a time.
type Overlay struct {
	sim     core.Sim
	scale   int
	showDir int // -1 when hidden
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, showDir: -1}
}

var dirKeys = [4]ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
}

var dirTints = [4]color.RGBA{
	{R: 64, G: 164, B: 223},
	{R: 255, G: 120, B: 40},
	{R: 120, G: 220, B: 100},
	{R: 230, G: 90, B: 200},
}

// Update toggles the displayed direction: keys 1-4 select up, down, left
// and right; pressing the active key again hides the overlay.
func (o *Overlay) Update() {
	for d, key := range dirKeys {
		if inpututil.IsKeyJustPressed(key) {
			if o.showDir == d {
				o.showDir = -1
			} else {
				o.showDir = d
			}
		}
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showDir < 0 {
		return
	}
	provider, ok := o.sim.(probabilityProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	grid := provider.ProbabilityGrid(o.showDir)
	if len(grid) != total {
		return
	}

	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	const maxAlpha = 150.0
	tint := dirTints[o.showDir]
	for i := 0; i < total; i++ {
		base := i * 4
		// Field entries live in [0, 1/3]; rescale to [0, 1] for display.
		intensity := grid[i] * 3
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 1 {
			intensity = 1
		}
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		// WritePixels expects premultiplied alpha.
		alpha := maxAlpha * intensity
		o.maskBuf[base+0] = uint8(math.Round(float64(tint.R) * alpha / 255))
		o.maskBuf[base+1] = uint8(math.Round(float64(tint.G) * alpha / 255))
		o.maskBuf[base+2] = uint8(math.Round(float64(tint.B) * alpha / 255))
		o.maskBuf[base+3] = uint8(math.Round(alpha))
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
