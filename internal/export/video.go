package export

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// VideoRecorder streams palette-rendered lattice frames into an MJPEG video
// file, one frame per completed round.
type VideoRecorder struct {
	aw      mjpeg.AviWriter
	palette []color.RGBA
	w, h    int
	cell    int
	buf     bytes.Buffer
	opts    jpeg.Options
}

// NewVideoRecorder opens the video file for a w×h lattice rendered at
// cellSize pixels per cell.
func NewVideoRecorder(path string, w, h, cellSize, fps int, palette []color.RGBA) (*VideoRecorder, error) {
	if cellSize < 1 {
		cellSize = 1
	}
	if fps < 1 {
		fps = 1
	}
	aw, err := mjpeg.New(path, int32(w*cellSize), int32(h*cellSize), int32(fps))
	if err != nil {
		return nil, err
	}
	return &VideoRecorder{
		aw:      aw,
		palette: palette,
		w:       w,
		h:       h,
		cell:    cellSize,
		opts:    jpeg.Options{Quality: 75},
	}, nil
}

// AddFrame encodes the current lattice as one video frame.
func (v *VideoRecorder) AddFrame(cells []uint8) error {
	img := image.NewRGBA(image.Rect(0, 0, v.w*v.cell, v.h*v.cell))
	for y := 0; y < v.h; y++ {
		for x := 0; x < v.w; x++ {
			col := paletteColor(v.palette, cells[y*v.w+x])
			fillRect(img, x*v.cell, y*v.cell, (x+1)*v.cell, (y+1)*v.cell, col)
		}
	}
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return err
	}
	return v.aw.AddFrame(v.buf.Bytes())
}

// Close finalizes the video file.
func (v *VideoRecorder) Close() error { return v.aw.Close() }

func paletteColor(palette []color.RGBA, value uint8) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{A: 255}
	}
	idx := int(value)
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}
