package text

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/rands/exceedbar"
)

// ShapingMeasurer measures labels after HarfBuzz shaping.
//
// ShapingMeasurer is safe for concurrent use: parsed fonts are read-only
// and the shaper, which keeps internal buffers, is pooled.
type ShapingMeasurer struct {
	fonts      [2]*gtfont.Font
	shaperPool sync.Pool
}

var _ exceedbar.Measurer = (*ShapingMeasurer)(nil)

// NewShapingMeasurer parses the fonts of fs with go-text/typesetting.
func NewShapingMeasurer(fs *FontSet) (*ShapingMeasurer, error) {
	m := &ShapingMeasurer{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	for i, data := range fs.data {
		face, err := gtfont.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse %s font: %w", exceedbar.FontWeight(i), err)
		}
		m.fonts[i] = face.Font
	}
	return m, nil
}

// MeasureText implements exceedbar.Measurer.
func (m *ShapingMeasurer) MeasureText(s string, size float64, w exceedbar.FontWeight) exceedbar.TextExtent {
	if s == "" || size <= 0 {
		return exceedbar.TextExtent{}
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(m.fonts[weightIndex(w)]),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	out.RecalculateAll()
	return exceedbar.TextExtent{
		Advance:   fixedToFloat(out.Advance),
		InkHeight: fixedToFloat(out.GlyphBounds.Ascent - out.GlyphBounds.Descent),
	}
}

// detectScript returns the script of the first non-space rune. Labels are
// single-script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\u00a0' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
