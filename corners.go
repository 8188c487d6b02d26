package exceedbar

import "strings"

// Corners selects which corners of a rectangle are rounded.
// Each bit is independent; unset corners are drawn square.
type Corners uint8

const (
	// CornerTopLeft rounds the top-left corner.
	CornerTopLeft Corners = 1 << iota
	// CornerTopRight rounds the top-right corner.
	CornerTopRight
	// CornerBottomRight rounds the bottom-right corner.
	CornerBottomRight
	// CornerBottomLeft rounds the bottom-left corner.
	CornerBottomLeft

	// CornersNone draws a plain rectangle.
	CornersNone Corners = 0
	// CornersLeft rounds both left corners (a progress segment followed by an exceeded one).
	CornersLeft = CornerTopLeft | CornerBottomLeft
	// CornersRight rounds both right corners (the exceeded segment).
	CornersRight = CornerTopRight | CornerBottomRight
	// CornersAll rounds every corner.
	CornersAll = CornersLeft | CornersRight
)

// Has reports whether every corner in c2 is set in c.
func (c Corners) Has(c2 Corners) bool {
	return c&c2 == c2
}

// String returns a compact form such as "TL|BL".
func (c Corners) String() string {
	if c&CornersAll == 0 {
		return "none"
	}
	names := make([]string, 0, 4)
	for _, n := range []struct {
		bit  Corners
		name string
	}{
		{CornerTopLeft, "TL"},
		{CornerTopRight, "TR"},
		{CornerBottomRight, "BR"},
		{CornerBottomLeft, "BL"},
	} {
		if c.Has(n.bit) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
