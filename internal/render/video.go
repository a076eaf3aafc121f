package render

import (
	"bytes"
	"image/color"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"gridflow/internal/core"
)

// Animation muxes per-round grid frames into an MJPEG AVI file.
type Animation struct {
	writer  mjpeg.AviWriter
	palette []color.RGBA
	scale   int
	buf     bytes.Buffer
}

// NewAnimation opens path for writing frames of the given grid size.
func NewAnimation(path string, size core.Size, scale, fps int) (*Animation, error) {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 10
	}
	writer, err := mjpeg.New(path, int32(size.W*scale), int32(size.H*scale), int32(fps))
	if err != nil {
		return nil, err
	}
	return &Animation{writer: writer, palette: DefaultPalette, scale: scale}, nil
}

// AddFrame renders the grid and appends it to the video.
func (a *Animation) AddFrame(g *core.Grid) error {
	a.buf.Reset()
	img := Frame(g, a.palette, a.scale)
	if err := jpeg.Encode(&a.buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return err
	}
	return a.writer.AddFrame(a.buf.Bytes())
}

// Close finalizes the AVI index. The file is unreadable without it.
func (a *Animation) Close() error {
	return a.writer.Close()
}
