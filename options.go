package exceedbar

import (
	"math"

	"github.com/gogpu/gg"
)

// Option configures a Bar during creation.
//
// Example:
//
//	bar := exceedbar.New(
//	    exceedbar.WithRange(0, 1500),
//	    exceedbar.WithProgress(1720),
//	    exceedbar.WithTopTextFormatter(func(s string) string { return s + " kWh" }),
//	)
type Option func(*options)

// options holds Bar configuration. Lengths ending in DP are density
// independent and scaled by density when the Bar is built.
type options struct {
	rng      Range
	progress float64
	style    Style

	topTextSP        float64
	percentageTextSP float64

	density              float64
	radiusDP             float64
	trackGapDP           float64
	topTextBottomSpaceDP float64

	padding   Padding
	minWidth  int
	minHeight int

	measurer     Measurer
	numbers      NumberFormatter
	formatter    TextFormatter
	onInvalidate func()
}

// defaultOptions mirrors the stock widget: an empty 0..1 range, 4dp
// corner radius, 10dp gaps and 14sp labels.
func defaultOptions() options {
	return options{
		rng: Range{Min: 0, Max: 1},
		style: Style{
			TrackColor:          DefaultTrackColor,
			ProgressColor:       DefaultProgressColor,
			ExceededColor:       DefaultExceededColor,
			PercentageTextColor: DefaultTextColor,
			TopTextColor:        DefaultTextColor,
		},
		topTextSP:            14,
		percentageTextSP:     14,
		density:              1,
		radiusDP:             4,
		trackGapDP:           10,
		topTextBottomSpaceDP: 10,
	}
}

// px converts a density independent length to whole pixels.
func (o *options) px(dp float64) int {
	return int(math.Round(dp * o.density))
}

// WithRange sets the initial range. Bounds given in the wrong order are
// swapped.
func WithRange(lo, hi float64) Option {
	return func(o *options) {
		o.rng = Range{Min: lo, Max: hi}
	}
}

// WithProgress sets the initial progress. It is floored at the range
// minimum when the Bar is built.
func WithProgress(p float64) Option {
	return func(o *options) {
		o.progress = p
	}
}

// WithColors sets the track, progress and exceeded segment colors.
func WithColors(track, progress, exceeded gg.RGBA) Option {
	return func(o *options) {
		o.style.TrackColor = track
		o.style.ProgressColor = progress
		o.style.ExceededColor = exceeded
	}
}

// WithTrackColor sets the background track color.
func WithTrackColor(c gg.RGBA) Option {
	return func(o *options) { o.style.TrackColor = c }
}

// WithProgressColor sets the normal segment color.
func WithProgressColor(c gg.RGBA) Option {
	return func(o *options) { o.style.ProgressColor = c }
}

// WithExceededColor sets the exceeded segment color.
func WithExceededColor(c gg.RGBA) Option {
	return func(o *options) { o.style.ExceededColor = c }
}

// WithTextColors sets the percentage and top label colors.
func WithTextColors(percentage, top gg.RGBA) Option {
	return func(o *options) {
		o.style.PercentageTextColor = percentage
		o.style.TopTextColor = top
	}
}

// WithTextSizes sets the top and percentage label sizes in sp.
func WithTextSizes(topSP, percentageSP float64) Option {
	return func(o *options) {
		o.topTextSP = topSP
		o.percentageTextSP = percentageSP
	}
}

// WithDensity sets the pixels-per-dp scale. Values <= 0 are ignored.
func WithDensity(d float64) Option {
	return func(o *options) {
		if d > 0 {
			o.density = d
		}
	}
}

// WithRadius sets the corner radius in dp.
func WithRadius(dp float64) Option {
	return func(o *options) { o.radiusDP = dp }
}

// WithTrackGap sets the space between the track and the percentage label
// in dp.
func WithTrackGap(dp float64) Option {
	return func(o *options) { o.trackGapDP = dp }
}

// WithTopTextBottomSpace sets the space below the top label in dp.
func WithTopTextBottomSpace(dp float64) Option {
	return func(o *options) { o.topTextBottomSpaceDP = dp }
}

// WithPadding sets the padding in pixels.
func WithPadding(p Padding) Option {
	return func(o *options) { o.padding = p }
}

// WithMinimumSize sets the suggested minimum interior size in pixels used
// during layout negotiation.
func WithMinimumSize(width, height int) Option {
	return func(o *options) {
		o.minWidth = width
		o.minHeight = height
	}
}

// WithMeasurer sets the text measurer. Without one the Bar estimates text
// size from the font size (see ApproxMeasurer).
func WithMeasurer(m Measurer) Option {
	return func(o *options) { o.measurer = m }
}

// WithNumberFormatter replaces DefaultDecimalFormat.
func WithNumberFormatter(f NumberFormatter) Option {
	return func(o *options) { o.numbers = f }
}

// WithTopTextFormatter sets the planned-max text formatter.
func WithTopTextFormatter(f TextFormatter) Option {
	return func(o *options) { o.formatter = f }
}

// WithOnInvalidate registers the host's redraw request. It is called
// after every setter.
func WithOnInvalidate(fn func()) Option {
	return func(o *options) { o.onInvalidate = fn }
}
