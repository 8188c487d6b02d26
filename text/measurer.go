package text

import (
	"github.com/rands/exceedbar"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measurer measures labels with x/image faces. The advance is the sum of
// glyph advances including kerning; the ink height spans the union of the
// glyph bounds.
type Measurer struct {
	fonts *FontSet
}

var _ exceedbar.Measurer = (*Measurer)(nil)

// NewMeasurer returns a Measurer over fs.
func NewMeasurer(fs *FontSet) *Measurer {
	return &Measurer{fonts: fs}
}

// MeasureText implements exceedbar.Measurer. A face that cannot be built
// measures as empty and is logged.
func (m *Measurer) MeasureText(s string, size float64, w exceedbar.FontWeight) exceedbar.TextExtent {
	if s == "" || size <= 0 {
		return exceedbar.TextExtent{}
	}
	var ext exceedbar.TextExtent
	err := m.fonts.withFace(size, w, func(face font.Face) {
		bounds, advance := font.BoundString(face, s)
		ext.Advance = fixedToFloat(advance)
		ext.InkHeight = fixedToFloat(bounds.Max.Y - bounds.Min.Y)
	})
	if err != nil {
		exceedbar.Logger().Warn("text: measure failed", "text", s, "size", size, "error", err)
		return exceedbar.TextExtent{}
	}
	return ext
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
