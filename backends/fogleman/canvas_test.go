package fogleman

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"github.com/rands/exceedbar"
	"github.com/rands/exceedbar/text"
)

func TestCanvas_Segments(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		tail     gg.RGBA
	}{
		{"normal", 40, exceedbar.DefaultTrackColor},
		{"exceeded", 250, exceedbar.DefaultExceededColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := exceedbar.New(
				exceedbar.WithRange(0, 100),
				exceedbar.WithProgress(tt.progress),
				exceedbar.WithMeasurer(text.NewMeasurer(text.GoFonts())),
			)
			c := NewCanvas(320, 48, nil)
			defer c.Close()
			c.Clear(gg.White)
			if err := bar.Render(c, 320, 48); err != nil {
				t.Fatalf("Render: %v", err)
			}

			g := bar.Frame(320, 48).Geometry
			y := int((g.BarTop + g.BarBottom) / 2)
			img := c.Image()
			check := func(x int, want gg.RGBA) {
				t.Helper()
				got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				w := color.NRGBAModel.Convert(want).(color.NRGBA)
				if diff(got.R, w.R) > 2 || diff(got.G, w.G) > 2 || diff(got.B, w.B) > 2 {
					t.Errorf("pixel %d = %v, want %v", x, got, w)
				}
			}
			check(int(g.MinX)+10, exceedbar.DefaultProgressColor)
			check(int(g.TrackMaxWidth)-10, tt.tail)
		})
	}
}

func TestCanvas_FaceCache(t *testing.T) {
	c := NewCanvas(60, 30, nil)
	style := exceedbar.TextStyle{Size: 12, Weight: exceedbar.FontBold, Color: gg.Black}
	for range 3 {
		if err := c.DrawText("7 %", 2, 20, style); err != nil {
			t.Fatalf("DrawText: %v", err)
		}
	}
	if len(c.faces) != 1 {
		t.Errorf("faces = %d, want 1", len(c.faces))
	}
	_ = c.Close()
	if len(c.faces) != 0 {
		t.Errorf("faces after Close = %d", len(c.faces))
	}
}

func diff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
