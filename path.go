package exceedbar

import (
	"math"

	"github.com/gogpu/gg"
)

// PathSink receives replayed path elements. gogpu/gg and fogleman/gg
// contexts and the gg recording.Recorder satisfy it as they are.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Replay sends every element of p to s in order.
func Replay(p *gg.Path, s PathSink) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			s.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			s.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			s.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			s.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			s.ClosePath()
		}
	}
}

// PathBounds returns the axis-aligned box enclosing every end and control
// point of p, or the zero Rect for an empty path. Control points of the
// curves RoundedRect builds never leave the box of their end points, so
// for bar outlines this is also the tight box.
func PathBounds(p *gg.Path) Rect {
	elems := p.Elements()
	if len(elems) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt gg.Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, elem := range elems {
		switch e := elem.(type) {
		case gg.MoveTo:
			add(e.Point)
		case gg.LineTo:
			add(e.Point)
		case gg.QuadTo:
			add(e.Control)
			add(e.Point)
		case gg.CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return Rect{Left: minX, Top: minY, Right: maxX, Bottom: maxY}
}
