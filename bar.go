package exceedbar

import (
	"context"
	"log/slog"

	"github.com/gogpu/gg"
)

// Bar is one exceedable progress bar: its values, style and the labels
// derived from them.
//
// Bar is not safe for concurrent use. Setters and Frame are expected to be
// called from the goroutine that drives drawing.
type Bar struct {
	rng      Range
	progress float64
	style    Style

	padding            Padding
	radius             float64
	trackGap           int
	topTextBottomSpace int
	minWidth           int
	minHeight          int

	engine       GeometryEngine
	formatter    TextFormatter
	onInvalidate func()

	labels Labels
}

// New creates a Bar. With no options it shows an empty 0..1 range in the
// default palette.
func New(opts ...Option) *Bar {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Bar{
		style:              o.style,
		padding:            o.padding,
		radius:             float64(o.px(o.radiusDP)),
		trackGap:           o.px(o.trackGapDP),
		topTextBottomSpace: o.px(o.topTextBottomSpaceDP),
		minWidth:           o.minWidth,
		minHeight:          o.minHeight,
		formatter:          o.formatter,
		onInvalidate:       o.onInvalidate,
		engine: GeometryEngine{
			Measurer: o.measurer,
			Numbers:  o.numbers,
		},
	}
	b.style.TopTextSize = float64(o.px(o.topTextSP))
	b.style.PercentageTextSize = float64(o.px(o.percentageTextSP))
	b.engine.TopTextSize = b.style.TopTextSize
	b.engine.PercentageTextSize = b.style.PercentageTextSize

	b.rng = o.rng
	b.rng.normalize()
	b.progress = b.rng.ClampProgress(o.progress)
	b.refreshLabels()
	return b
}

// Min returns the range minimum.
func (b *Bar) Min() float64 { return b.rng.Min }

// Max returns the range maximum (the planned value).
func (b *Bar) Max() float64 { return b.rng.Max }

// Progress returns the stored progress.
func (b *Bar) Progress() float64 { return b.progress }

// Range returns the current range.
func (b *Bar) Range() Range { return b.rng }

// Style returns the current style.
func (b *Bar) Style() Style { return b.style }

// Labels returns the labels measured at the last invalidation.
func (b *Bar) Labels() Labels { return b.labels }

// Engine returns the geometry engine the bar lays out with.
func (b *Bar) Engine() *GeometryEngine { return &b.engine }

// SetMin sets the range minimum, swapping with the maximum if needed.
func (b *Bar) SetMin(v float64) {
	if b.rng.SetMin(v) {
		Logger().Debug("exceedbar: range swapped", "min", b.rng.Min, "max", b.rng.Max)
	}
	b.Invalidate()
}

// SetMax sets the range maximum, swapping with the minimum if needed.
func (b *Bar) SetMax(v float64) {
	if b.rng.SetMax(v) {
		Logger().Debug("exceedbar: range swapped", "min", b.rng.Min, "max", b.rng.Max)
	}
	b.Invalidate()
}

// SetRange replaces both bounds with a single invalidation. Unlike a
// SetMin and SetMax pair it cannot be thrown off by an intermediate swap.
func (b *Bar) SetRange(lo, hi float64) {
	if b.rng.Set(lo, hi) {
		Logger().Debug("exceedbar: range swapped", "min", b.rng.Min, "max", b.rng.Max)
	}
	b.Invalidate()
}

// SetProgress stores p floored at the range minimum. Progress above the
// maximum is kept and drawn as exceeded.
func (b *Bar) SetProgress(p float64) {
	b.progress = b.rng.ClampProgress(p)
	b.Invalidate()
}

// SetTrackColor sets the background track color.
func (b *Bar) SetTrackColor(c gg.RGBA) {
	b.style.TrackColor = c
	b.Invalidate()
}

// SetProgressColor sets the normal segment color.
func (b *Bar) SetProgressColor(c gg.RGBA) {
	b.style.ProgressColor = c
	b.Invalidate()
}

// SetExceededColor sets the exceeded segment color.
func (b *Bar) SetExceededColor(c gg.RGBA) {
	b.style.ExceededColor = c
	b.Invalidate()
}

// SetPercentageTextColor sets the percentage label color.
func (b *Bar) SetPercentageTextColor(c gg.RGBA) {
	b.style.PercentageTextColor = c
	b.Invalidate()
}

// SetTopTextColor sets the planned-max label color.
func (b *Bar) SetTopTextColor(c gg.RGBA) {
	b.style.TopTextColor = c
	b.Invalidate()
}

// SetTopTextSize sets the planned-max label size in pixels.
func (b *Bar) SetTopTextSize(px float64) {
	b.style.TopTextSize = px
	b.engine.TopTextSize = px
	b.Invalidate()
}

// SetPercentageTextSize sets the percentage label size in pixels.
func (b *Bar) SetPercentageTextSize(px float64) {
	b.style.PercentageTextSize = px
	b.engine.PercentageTextSize = px
	b.Invalidate()
}

// SetTopTextFormatter sets the planned-max formatter. Nil removes it.
func (b *Bar) SetTopTextFormatter(f TextFormatter) {
	b.formatter = f
	b.Invalidate()
}

// Invalidate re-measures the labels and asks the host for a redraw.
func (b *Bar) Invalidate() {
	b.refreshLabels()
	if b.onInvalidate != nil {
		b.onInvalidate()
	}
}

func (b *Bar) refreshLabels() {
	b.labels = b.engine.Labels(b.rng, b.progress, b.formatter)
	Logger().Debug("exceedbar: labels measured",
		"plannedMax", b.labels.PlannedMax.Text,
		"percentage", b.labels.Percentage.Text)
}

// Bounds returns the drawable interior of a width x height bar.
func (b *Bar) Bounds(width, height int) Bounds {
	return b.padding.Inset(width, height)
}

// Frame lays out a width x height bar and returns its draw commands.
func (b *Bar) Frame(width, height int) *Frame {
	bounds := b.Bounds(width, height)
	pct, top := b.labels.Percentage, b.labels.PlannedMax
	g := b.engine.ComputeGeometry(b.rng, b.progress, bounds, pct.Box, b.trackGap)

	f := &Frame{
		Width:    width,
		Height:   height,
		Geometry: g,
		Commands: make([]Command, 0, 5),
	}
	f.Commands = append(f.Commands,
		b.segment(SegmentTrack, g.TrackRect(), g.TrackCorners(), b.style.TrackColor),
		b.segment(SegmentProgress, g.ProgressRect(), g.ProgressCorners(), b.style.ProgressColor),
	)
	if g.IsExceeded {
		f.Commands = append(f.Commands,
			b.segment(SegmentExceeded, g.ExceededRect(), g.ExceededCorners(), b.style.ExceededColor))
	}
	f.Commands = append(f.Commands,
		TextCommand{
			Text: pct.Text,
			X:    float64(bounds.MaxX - pct.Box.Width),
			Y:    float64(bounds.MaxY),
			Style: TextStyle{
				Size:   b.style.PercentageTextSize,
				Weight: FontBold,
				Color:  b.style.PercentageTextColor,
			},
		},
		TextCommand{
			Text: top.Text,
			X:    float64(bounds.MaxX - top.Box.Width),
			Y:    float64(bounds.MinY + top.Box.Height),
			Style: TextStyle{
				Size:   b.style.TopTextSize,
				Weight: FontRegular,
				Color:  b.style.TopTextColor,
			},
		},
	)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("exceedbar: frame",
			"width", width, "height", height,
			"exceeded", g.IsExceeded,
			"trackMaxWidth", g.TrackMaxWidth,
			"progressEndX", g.ProgressEndX)
	}
	return f
}

// Render lays out a frame and replays it on c.
func (b *Bar) Render(c Canvas, width, height int) error {
	return b.Frame(width, height).Draw(c)
}

// Measure negotiates the bar size with a parent layout.
func (b *Bar) Measure(w, h MeasureSpec) (int, int) {
	dw, dh := desiredSize(b.padding, b.minWidth, b.minHeight, b.labels,
		b.labels.Percentage.Box.Height, b.topTextBottomSpace)
	return ResolveSize(dw, w), ResolveSize(dh, h)
}

func (b *Bar) segment(s Segment, r Rect, c Corners, col gg.RGBA) FillPathCommand {
	return FillPathCommand{
		Segment: s,
		Rect:    r,
		Corners: c,
		Path:    RoundedRect(r, b.radius, c),
		Color:   col,
	}
}
