// Package raster draws bar frames with the gogpu/gg software rasterizer.
//
// The canvas owns a gg.Context. Importing github.com/gogpu/gg/gpu in the
// main package moves fills onto the GPU without changes here.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"

	"github.com/rands/exceedbar"
	"github.com/rands/exceedbar/text"
)

// Canvas implements exceedbar.Canvas on a gg.Context.
type Canvas struct {
	dc      *gg.Context
	sources [2]*ggtext.FontSource
	faces   map[faceKey]ggtext.Face
}

type faceKey struct {
	size   float64
	weight exceedbar.FontWeight
}

var _ exceedbar.Canvas = (*Canvas)(nil)

// NewCanvas creates a width x height canvas. Labels are drawn with fonts;
// nil selects text.GoFonts. opts are passed to gg.NewContext.
func NewCanvas(width, height int, fonts *text.FontSet, opts ...gg.ContextOption) (*Canvas, error) {
	if fonts == nil {
		fonts = text.GoFonts()
	}
	c := &Canvas{
		dc:    gg.NewContext(width, height, opts...),
		faces: make(map[faceKey]ggtext.Face),
	}
	for _, w := range []exceedbar.FontWeight{exceedbar.FontRegular, exceedbar.FontBold} {
		src, err := ggtext.NewFontSource(fonts.Data(w))
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("raster: %s font: %w", w, err)
		}
		c.sources[w] = src
	}
	return c, nil
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col gg.RGBA) {
	c.dc.ClearWithColor(col)
}

// FillPath implements exceedbar.Canvas.
func (c *Canvas) FillPath(p *gg.Path, col gg.RGBA) error {
	c.dc.ClearPath()
	exceedbar.Replay(p, c.dc)
	c.dc.SetColor(col)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("raster: fill: %w", err)
	}
	return nil
}

// DrawText implements exceedbar.Canvas.
func (c *Canvas) DrawText(s string, x, y float64, style exceedbar.TextStyle) error {
	if s == "" || style.Size <= 0 {
		return nil
	}
	c.dc.SetFont(c.face(style.Size, style.Weight))
	c.dc.SetColor(style.Color)
	c.dc.DrawString(s, x, y)
	return nil
}

func (c *Canvas) face(size float64, w exceedbar.FontWeight) ggtext.Face {
	key := faceKey{size: size, weight: w}
	if f, ok := c.faces[key]; ok {
		return f
	}
	src := c.sources[exceedbar.FontRegular]
	if w == exceedbar.FontBold {
		src = c.sources[exceedbar.FontBold]
	}
	f := src.Face(size)
	c.faces[key] = f
	return f
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Close releases the context and the font sources.
func (c *Canvas) Close() error {
	for i, src := range c.sources {
		if src != nil {
			_ = src.Close()
			c.sources[i] = nil
		}
	}
	return c.dc.Close()
}
