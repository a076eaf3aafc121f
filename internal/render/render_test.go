package render

import (
	"bytes"
	"testing"

	"gridflow/internal/core"
)

func TestFrameClampsPaletteIndex(t *testing.T) {
	g, err := core.FromRows([][]int{{-3, 0}, {2, 99}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	img := Frame(g, DefaultPalette, 1)

	if got, want := img.RGBAAt(0, 0), DefaultPalette[0]; got != want {
		t.Fatalf("negative cell = %v, want palette[0] %v", got, want)
	}
	if got, want := img.RGBAAt(1, 0), DefaultPalette[0]; got != want {
		t.Fatalf("zero cell = %v, want palette[0] %v", got, want)
	}
	if got, want := img.RGBAAt(0, 1), DefaultPalette[2]; got != want {
		t.Fatalf("cell 2 = %v, want palette[2] %v", got, want)
	}
	last := DefaultPalette[len(DefaultPalette)-1]
	if got := img.RGBAAt(1, 1); got != last {
		t.Fatalf("oversized cell = %v, want last palette entry %v", got, last)
	}
}

func TestFrameScale(t *testing.T) {
	g := core.NewGrid(2, 3)
	img := Frame(g, nil, 4)
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 12 {
		t.Fatalf("scaled frame = %dx%d, want 8x12", bounds.Dx(), bounds.Dy())
	}
}

func TestSeriesRenderPNG(t *testing.T) {
	g, err := core.FromRows([][]int{{4, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	var s Series
	s.Observe(0, g, 4)
	g.Set(0, 0, 2)
	s.Observe(1, g, 4)

	var buf bytes.Buffer
	if err := s.RenderPNG(&buf); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Fatal("output is not a PNG")
	}
}

func TestSeriesRenderNeedsTwoRounds(t *testing.T) {
	var s Series
	var buf bytes.Buffer
	if err := s.RenderPNG(&buf); err == nil {
		t.Fatal("expected error for empty series")
	}
}
