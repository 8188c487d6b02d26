// Package vector records bar frames as resolution-independent drawing
// commands with gogpu/gg/recording.
//
// A recording can be played back to any registered recording backend.
// The raster backend is linked in by this package.
package vector

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // registers "raster"
	ggtext "github.com/gogpu/gg/text"

	"github.com/rands/exceedbar"
	"github.com/rands/exceedbar/text"
)

// Canvas implements exceedbar.Canvas on a recording.Recorder.
type Canvas struct {
	rec     *recording.Recorder
	sources [2]*ggtext.FontSource
}

var _ exceedbar.Canvas = (*Canvas)(nil)

// NewCanvas starts a width x height recording. nil fonts selects
// text.GoFonts.
func NewCanvas(width, height int, fonts *text.FontSet) (*Canvas, error) {
	if fonts == nil {
		fonts = text.GoFonts()
	}
	sources, err := openSources(fonts.Data)
	if err != nil {
		return nil, err
	}
	return &Canvas{rec: recording.NewRecorder(width, height), sources: sources}, nil
}

// openSources parses the regular and bold font data. On failure every
// source already opened is closed again.
func openSources(data func(exceedbar.FontWeight) []byte) ([2]*ggtext.FontSource, error) {
	var sources [2]*ggtext.FontSource
	for _, w := range []exceedbar.FontWeight{exceedbar.FontRegular, exceedbar.FontBold} {
		src, err := ggtext.NewFontSource(data(w))
		if err != nil {
			closeSources(&sources)
			return sources, fmt.Errorf("vector: %s font: %w", w, err)
		}
		sources[weightIndex(w)] = src
	}
	return sources, nil
}

func closeSources(sources *[2]*ggtext.FontSource) {
	for i, src := range sources {
		if src != nil {
			_ = src.Close()
			sources[i] = nil
		}
	}
}

// Recorder returns the underlying recorder.
func (c *Canvas) Recorder() *recording.Recorder { return c.rec }

// Clear records a full-canvas fill with col.
func (c *Canvas) Clear(col gg.RGBA) {
	c.rec.ClearWithColor(col)
}

// FillPath implements exceedbar.Canvas.
func (c *Canvas) FillPath(p *gg.Path, col gg.RGBA) error {
	c.rec.ClearPath()
	c.rec.SetFillRGBA(col.R, col.G, col.B, col.A)
	exceedbar.Replay(p, c.rec)
	c.rec.Fill()
	return nil
}

// DrawText implements exceedbar.Canvas.
func (c *Canvas) DrawText(s string, x, y float64, style exceedbar.TextStyle) error {
	if s == "" || style.Size <= 0 {
		return nil
	}
	c.rec.SetFont(c.sources[weightIndex(style.Weight)].Face(style.Size))
	c.rec.SetFontSize(style.Size)
	c.rec.SetFillRGBA(style.Color.R, style.Color.G, style.Color.B, style.Color.A)
	c.rec.DrawString(s, x, y)
	return nil
}

// Close releases the font sources. Recorded text refers to their faces,
// so call it only once every playback of the recording is done. Close is
// safe to call more than once.
func (c *Canvas) Close() error {
	closeSources(&c.sources)
	return nil
}

// Finish ends the recording. The canvas must not be drawn on afterwards.
func (c *Canvas) Finish() *recording.Recording {
	return c.rec.FinishRecording()
}

// Rasterize plays r back on the named recording backend and returns its
// image. Only backends that expose an image are accepted.
func Rasterize(r *recording.Recording, backend string) (image.Image, error) {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}
	if err := r.Playback(b); err != nil {
		return nil, fmt.Errorf("vector: playback: %w", err)
	}
	ib, ok := b.(interface{ Image() image.Image })
	if !ok {
		return nil, fmt.Errorf("vector: backend %q has no image output", backend)
	}
	return ib.Image(), nil
}

// Save plays r back on the named backend and writes the result to path.
func Save(r *recording.Recording, backend, path string) error {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	if err := r.Playback(b); err != nil {
		return fmt.Errorf("vector: playback: %w", err)
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("vector: backend %q cannot write files", backend)
	}
	return fb.SaveToFile(path)
}

func weightIndex(w exceedbar.FontWeight) int {
	if w == exceedbar.FontBold {
		return 1
	}
	return 0
}
