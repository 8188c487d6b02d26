package exceedbar

import (
	"math"
	"unicode/utf8"
)

// FontWeight selects the face a label is measured and drawn with.
type FontWeight int

const (
	// FontRegular is used for the top (planned maximum) label.
	FontRegular FontWeight = iota
	// FontBold is used for the percentage label.
	FontBold
)

// String returns "regular" or "bold".
func (w FontWeight) String() string {
	if w == FontBold {
		return "bold"
	}
	return "regular"
}

// TextExtent is the result of measuring a string.
//
// Advance is the pen advance, which counts leading and trailing spaces.
// InkHeight is the height of the union of glyph bounds. Label boxes take
// their width from Advance and their height from InkHeight.
type TextExtent struct {
	Advance   float64
	InkHeight float64
}

// Measurer measures text in pixels. Implementations live in the text
// package; hosts may supply their own.
type Measurer interface {
	MeasureText(s string, size float64, weight FontWeight) TextExtent
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(s string, size float64, weight FontWeight) TextExtent

// MeasureText implements Measurer.
func (f MeasurerFunc) MeasureText(s string, size float64, weight FontWeight) TextExtent {
	return f(s, size, weight)
}

// ApproxMeasurer estimates extents from the font size alone: 0.6 em per
// rune (0.65 em bold) and 0.7 em of ink height. It is the fallback when no
// font-backed measurer is configured.
type ApproxMeasurer struct{}

// MeasureText implements Measurer.
func (ApproxMeasurer) MeasureText(s string, size float64, weight FontWeight) TextExtent {
	if s == "" {
		return TextExtent{}
	}
	em := 0.6
	if weight == FontBold {
		em = 0.65
	}
	return TextExtent{
		Advance:   float64(utf8.RuneCountInString(s)) * size * em,
		InkHeight: size * 0.7,
	}
}

// Box converts an extent to whole pixels: the advance is truncated and
// the ink height is rounded up so glyphs are never clipped.
func (e TextExtent) Box() LabelBox {
	return LabelBox{
		Width:  int(e.Advance),
		Height: int(math.Ceil(e.InkHeight)),
	}
}
