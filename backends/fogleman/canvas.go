// Package fogleman draws bar frames with github.com/fogleman/gg.
package fogleman

import (
	"fmt"
	"image"
	"io"

	fgg "github.com/fogleman/gg"
	"github.com/gogpu/gg"
	"golang.org/x/image/font"

	"github.com/rands/exceedbar"
	"github.com/rands/exceedbar/text"
)

// Canvas implements exceedbar.Canvas on a fogleman/gg context.
type Canvas struct {
	dc    *fgg.Context
	fonts *text.FontSet
	faces map[faceKey]font.Face
}

type faceKey struct {
	size   float64
	weight exceedbar.FontWeight
}

var _ exceedbar.Canvas = (*Canvas)(nil)

// NewCanvas creates a width x height canvas. nil fonts selects
// text.GoFonts.
func NewCanvas(width, height int, fonts *text.FontSet) *Canvas {
	if fonts == nil {
		fonts = text.GoFonts()
	}
	return &Canvas{
		dc:    fgg.NewContext(width, height),
		fonts: fonts,
		faces: make(map[faceKey]font.Face),
	}
}

// Context returns the underlying fogleman context.
func (c *Canvas) Context() *fgg.Context { return c.dc }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col gg.RGBA) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// FillPath implements exceedbar.Canvas.
func (c *Canvas) FillPath(p *gg.Path, col gg.RGBA) error {
	c.dc.ClearPath()
	exceedbar.Replay(p, c.dc)
	c.dc.SetColor(col)
	c.dc.Fill()
	return nil
}

// DrawText implements exceedbar.Canvas.
func (c *Canvas) DrawText(s string, x, y float64, style exceedbar.TextStyle) error {
	if s == "" || style.Size <= 0 {
		return nil
	}
	key := faceKey{size: style.Size, weight: style.Weight}
	face, ok := c.faces[key]
	if !ok {
		var err error
		if face, err = c.fonts.Face(style.Size, style.Weight); err != nil {
			return fmt.Errorf("fogleman: %w", err)
		}
		c.faces[key] = face
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(style.Color)
	c.dc.DrawString(s, x, y)
	return nil
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// Close releases the cached font faces.
func (c *Canvas) Close() error {
	for k, f := range c.faces {
		_ = f.Close()
		delete(c.faces, k)
	}
	return nil
}
