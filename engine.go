package exceedbar

// Label is display text together with its measured box.
type Label struct {
	Text string
	Box  LabelBox
}

// Labels holds the two labels drawn with the bar.
type Labels struct {
	// PlannedMax is drawn above the bar, right-aligned.
	PlannedMax Label
	// Percentage is drawn to the right of the bar.
	Percentage Label
}

// GeometryEngine sizes labels and lays out the bar. It holds no per-frame
// state; a host calls Labels when values change and ComputeGeometry on
// every draw.
type GeometryEngine struct {
	Measurer           Measurer
	Numbers            NumberFormatter
	TopTextSize        float64
	PercentageTextSize float64
}

// Measure formats value as planned-max text, applies formatter when it is
// non-nil, and measures the result with the regular top-text face.
func (e *GeometryEngine) Measure(value float64, formatter TextFormatter) LabelBox {
	return e.PlannedMaxLabel(value, formatter).Box
}

// PlannedMaxLabel returns the text and box of the label showing the
// planned maximum.
func (e *GeometryEngine) PlannedMaxLabel(plannedMax float64, formatter TextFormatter) Label {
	s := e.numbers().FormatNumber(plannedMax)
	if formatter != nil {
		s = formatter(s)
	}
	return Label{Text: s, Box: e.measurer().MeasureText(s, e.TopTextSize, FontRegular).Box()}
}

// PercentageLabel returns the "<n> %" label. The percentage is
// progress*100/plannedMax, or 0 when plannedMax is not positive.
func (e *GeometryEngine) PercentageLabel(progress, plannedMax float64) Label {
	var pct float64
	if plannedMax > 0 {
		pct = progress * 100 / plannedMax
	}
	s := e.numbers().FormatNumber(pct) + " %"
	return Label{Text: s, Box: e.measurer().MeasureText(s, e.PercentageTextSize, FontBold).Box()}
}

// Labels sizes both labels for the current values.
func (e *GeometryEngine) Labels(r Range, progress float64, formatter TextFormatter) Labels {
	return Labels{
		PlannedMax: e.PlannedMaxLabel(r.Max, formatter),
		Percentage: e.PercentageLabel(progress, r.Max),
	}
}

// ComputeGeometry lays out the bar; see the package-level ComputeGeometry.
func (e *GeometryEngine) ComputeGeometry(r Range, progress float64, b Bounds, pct LabelBox, trackGap int) ProgressGeometry {
	return ComputeGeometry(r, progress, b, pct, trackGap)
}

func (e *GeometryEngine) measurer() Measurer {
	if e.Measurer == nil {
		return ApproxMeasurer{}
	}
	return e.Measurer
}

func (e *GeometryEngine) numbers() NumberFormatter {
	if e.Numbers == nil {
		return DefaultDecimalFormat()
	}
	return e.Numbers
}
