package exceedbar

import (
	"math"

	"github.com/gogpu/gg"
)

// kappa places cubic control points so a quarter turn approximates an
// elliptical arc: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// RoundedRect builds a closed outline of r whose corners listed in c are
// quarter ellipses and whose remaining corners are square.
//
// The radius is clamped per axis to half the width and half the height
// (and to zero for negative input), so narrow or short rectangles never
// produce self-intersecting curves. A rounded and a square corner start
// and end on the same points, which keeps neighbouring segments aligned
// along a shared edge whatever their corner masks.
//
// The outline starts at (Right, Top+ry) and runs counter-clockwise on
// screen: top-right, top-left, bottom-left, bottom-right. Every edge is
// drawn explicitly, the right one included, before the subpath is closed.
func RoundedRect(r Rect, radius float64, c Corners) *gg.Path {
	rx, ry := clampRadius(radius, r.Width()), clampRadius(radius, r.Height())
	ox, oy := rx*kappa, ry*kappa
	left, top, right, bottom := r.Left, r.Top, r.Right, r.Bottom

	p := gg.NewPath()
	p.MoveTo(right, top+ry)

	if c.Has(CornerTopRight) {
		p.CubicTo(right, top+ry-oy, right-rx+ox, top, right-rx, top)
	} else {
		p.LineTo(right, top)
		p.LineTo(right-rx, top)
	}
	p.LineTo(left+rx, top)

	if c.Has(CornerTopLeft) {
		p.CubicTo(left+rx-ox, top, left, top+ry-oy, left, top+ry)
	} else {
		p.LineTo(left, top)
		p.LineTo(left, top+ry)
	}
	p.LineTo(left, bottom-ry)

	if c.Has(CornerBottomLeft) {
		p.CubicTo(left, bottom-ry+oy, left+rx-ox, bottom, left+rx, bottom)
	} else {
		p.LineTo(left, bottom)
		p.LineTo(left+rx, bottom)
	}
	p.LineTo(right-rx, bottom)

	if c.Has(CornerBottomRight) {
		p.CubicTo(right-rx+ox, bottom, right, bottom-ry+oy, right, bottom-ry)
	} else {
		p.LineTo(right, bottom)
		p.LineTo(right, bottom-ry)
	}
	p.LineTo(right, top+ry)
	p.Close()
	return p
}

func clampRadius(radius, extent float64) float64 {
	r := math.Min(radius, extent/2)
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}
