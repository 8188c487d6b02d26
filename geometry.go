package exceedbar

import "math"

// ProgressGeometry is the per-frame layout of the bar. It is recomputed
// on every draw and carries no identity between frames.
type ProgressGeometry struct {
	// IsExceeded reports progress > Max.
	IsExceeded bool
	// MinX is the left edge shared by the track and the progress segment.
	MinX float64
	// TrackMaxWidth is the right edge of the track. Space for the
	// percentage label and the gap is reserved to its right.
	TrackMaxWidth float64
	BarTop        float64
	BarBottom     float64
	// ProgressEndX is the right edge of the normal segment and, when
	// exceeded, the left edge of the exceeded segment.
	ProgressEndX float64
}

// ComputeGeometry maps progress within r onto the pixel bounds b.
//
// The bar is as tall as the percentage label and sits on the bottom edge
// of b. While progress <= Max the normal segment grows linearly with
// progress; past Max it shrinks to TrackMaxWidth*Max/progress and the rest
// of the track is drawn as the exceeded segment. Non-positive progress
// always reads as an empty bar.
func ComputeGeometry(r Range, progress float64, b Bounds, pct LabelBox, trackGap int) ProgressGeometry {
	g := ProgressGeometry{
		IsExceeded:    progress > r.Max,
		MinX:          float64(b.MinX),
		TrackMaxWidth: float64(b.MaxX - pct.Width - trackGap),
		BarTop:        float64(b.MaxY - pct.Height),
	}
	g.BarBottom = g.BarTop + float64(pct.Height)

	switch {
	case progress <= 0:
		g.ProgressEndX = g.MinX
	case g.IsExceeded:
		g.ProgressEndX = g.TrackMaxWidth * r.Max / progress
	default:
		g.ProgressEndX = g.TrackMaxWidth * progress / r.Max
	}

	g.ProgressEndX = math.Min(g.ProgressEndX, g.TrackMaxWidth)
	// A narrow track or a non-positive Max can push the end left of the
	// track start; the segment then reads as empty.
	if g.ProgressEndX < g.MinX || math.IsNaN(g.ProgressEndX) {
		g.ProgressEndX = g.MinX
	}
	return g
}

// TrackRect is the background span [MinX, TrackMaxWidth].
func (g ProgressGeometry) TrackRect() Rect {
	return Rect{Left: g.MinX, Top: g.BarTop, Right: g.TrackMaxWidth, Bottom: g.BarBottom}
}

// ProgressRect is the normal segment span [MinX, ProgressEndX].
func (g ProgressGeometry) ProgressRect() Rect {
	return Rect{Left: g.MinX, Top: g.BarTop, Right: g.ProgressEndX, Bottom: g.BarBottom}
}

// ExceededRect is the exceeded segment span [ProgressEndX, TrackMaxWidth].
// It is only drawn when IsExceeded is set.
func (g ProgressGeometry) ExceededRect() Rect {
	return Rect{Left: g.ProgressEndX, Top: g.BarTop, Right: g.TrackMaxWidth, Bottom: g.BarBottom}
}

// TrackCorners is always fully rounded.
func (g ProgressGeometry) TrackCorners() Corners {
	return CornersAll
}

// ProgressCorners rounds the left side always and the right side only when
// no exceeded segment butts against it.
func (g ProgressGeometry) ProgressCorners() Corners {
	if g.IsExceeded {
		return CornersLeft
	}
	return CornersAll
}

// ExceededCorners rounds the right side always and the left side only
// when the normal segment has zero width.
func (g ProgressGeometry) ExceededCorners() Corners {
	if g.ProgressEndX == g.MinX {
		return CornersAll
	}
	return CornersRight
}
