package render

import (
	"image"
	"image/color"

	"gridflow/internal/core"
)

// DefaultPalette shades cell values from cold to hot. Index 0 covers zero
// and negative values, the last entry covers everything at or past it.
var DefaultPalette = []color.RGBA{
	{R: 20, G: 24, B: 46, A: 255},
	{R: 38, G: 70, B: 120, A: 255},
	{R: 52, G: 120, B: 160, A: 255},
	{R: 90, G: 180, B: 140, A: 255},
	{R: 222, G: 170, B: 60, A: 255},
	{R: 235, G: 110, B: 40, A: 255},
	{R: 230, G: 50, B: 35, A: 255},
	{R: 255, G: 240, B: 220, A: 255},
}

// paletteAt clamps a cell value into the palette.
func paletteAt(palette []color.RGBA, v int) color.RGBA {
	if v < 0 {
		v = 0
	}
	if last := len(palette) - 1; v > last {
		v = last
	}
	return palette[v]
}

// Frame renders the grid into an RGBA image, one scale×scale block per
// cell. A scale below 1 is treated as 1.
func Frame(g *core.Grid, palette []color.RGBA, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	img := image.NewRGBA(image.Rect(0, 0, g.W*scale, g.H*scale))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			col := paletteAt(palette, g.At(x, y))
			for dy := 0; dy < scale; dy++ {
				row := (y*scale + dy) * img.Stride
				for dx := 0; dx < scale; dx++ {
					base := row + (x*scale+dx)*4
					img.Pix[base+0] = col.R
					img.Pix[base+1] = col.G
					img.Pix[base+2] = col.B
					img.Pix[base+3] = col.A
				}
			}
		}
	}
	return img
}
