// Package text measures bar labels with real fonts.
//
// A FontSet holds the regular and bold faces of one family. Two measurers
// are built on it:
//
//   - Measurer: glyph advances and bounds from golang.org/x/image
//   - ShapingMeasurer: HarfBuzz shaping from go-text/typesetting, which
//     honours kerning and ligatures
//
// Both implement exceedbar.Measurer:
//
//	fonts := text.GoFonts()
//	bar := exceedbar.New(exceedbar.WithMeasurer(text.NewMeasurer(fonts)))
//
// Sizes are in pixels; faces are built at 72 DPI so one point is one pixel.
package text
