package exceedbar

// Rect is a floating point rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left. It may be negative for degenerate input.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Bounds is the drawable interior of the widget in whole pixels:
// the allocated size minus padding.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Padding is the space reserved around the drawable interior.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Inset returns the bounds left after removing p from a width x height area.
func (p Padding) Inset(width, height int) Bounds {
	return Bounds{
		MinX: p.Left,
		MinY: p.Top,
		MaxX: width - p.Right,
		MaxY: height - p.Bottom,
	}
}

// LabelBox is the measured pixel size of a label.
type LabelBox struct {
	Width, Height int
}
