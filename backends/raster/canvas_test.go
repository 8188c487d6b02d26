package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/gg"

	"github.com/rands/exceedbar"
	"github.com/rands/exceedbar/text"
)

func renderBar(t *testing.T, progress float64) (image.Image, *exceedbar.Frame) {
	t.Helper()
	fonts := text.GoFonts()
	bar := exceedbar.New(
		exceedbar.WithRange(0, 100),
		exceedbar.WithProgress(progress),
		exceedbar.WithMeasurer(text.NewMeasurer(fonts)),
	)
	const w, h = 320, 48
	c, err := NewCanvas(w, h, fonts)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	c.Clear(gg.White)
	if err := bar.Render(c, w, h); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return c.Image(), bar.Frame(w, h)
}

func assertColor(t *testing.T, img image.Image, x, y int, want gg.RGBA) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	w := color.NRGBAModel.Convert(want).(color.NRGBA)
	if absDiff(got.R, w.R) > 2 || absDiff(got.G, w.G) > 2 || absDiff(got.B, w.B) > 2 {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, w)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestCanvas_NormalSegments(t *testing.T) {
	img, f := renderBar(t, 50)
	g := f.Geometry
	y := int((g.BarTop + g.BarBottom) / 2)

	assertColor(t, img, int(g.MinX)+20, y, exceedbar.DefaultProgressColor)
	assertColor(t, img, int(g.TrackMaxWidth)-20, y, exceedbar.DefaultTrackColor)
	// Above the bar and left of the top label stays background.
	assertColor(t, img, 5, 2, gg.White)
}

func TestCanvas_ExceededSegment(t *testing.T) {
	img, f := renderBar(t, 200)
	g := f.Geometry
	if !g.IsExceeded {
		t.Fatal("frame not exceeded")
	}
	y := int((g.BarTop + g.BarBottom) / 2)

	assertColor(t, img, int(g.MinX)+20, y, exceedbar.DefaultProgressColor)
	assertColor(t, img, int(g.TrackMaxWidth)-20, y, exceedbar.DefaultExceededColor)
}

func TestCanvas_DrawsLabels(t *testing.T) {
	img, f := renderBar(t, 50)
	pct := f.Texts()[0]

	inked := false
	b := img.Bounds()
	for x := int(pct.X); x < b.Max.X && !inked; x++ {
		for y := int(f.Geometry.BarTop); y < b.Max.Y; y++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r < 0xF000 || g < 0xF000 || bl < 0xF000 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("percentage label left no ink")
	}
}

func TestCanvas_EncodePNG(t *testing.T) {
	c, err := NewCanvas(40, 20, nil)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	defer c.Close()

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("size = %v", img.Bounds())
	}
}

func TestCanvas_SkipsEmptyText(t *testing.T) {
	c, err := NewCanvas(10, 10, nil)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	defer c.Close()
	if err := c.DrawText("", 0, 10, exceedbar.TextStyle{Size: 14}); err != nil {
		t.Errorf("DrawText: %v", err)
	}
	if err := c.DrawText("x", 0, 10, exceedbar.TextStyle{}); err != nil {
		t.Errorf("DrawText zero size: %v", err)
	}
}
