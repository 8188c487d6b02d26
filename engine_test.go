package exceedbar

import (
	"math"
	"testing"
	"unicode/utf8"
)

// fixedMeasurer reports 8px per rune (9px bold) of advance and an ink
// height equal to the font size plus a fraction, so rounding is visible.
var fixedMeasurer = MeasurerFunc(func(s string, size float64, weight FontWeight) TextExtent {
	perRune := 8.0
	if weight == FontBold {
		perRune = 9
	}
	return TextExtent{
		Advance:   float64(utf8.RuneCountInString(s))*perRune + 0.75,
		InkHeight: size + 0.25,
	}
})

func TestGeometryEngine_Labels(t *testing.T) {
	e := &GeometryEngine{Measurer: fixedMeasurer, TopTextSize: 14, PercentageTextSize: 12}

	tests := []struct {
		name        string
		rng         Range
		progress    float64
		formatter   TextFormatter
		wantTop     string
		wantPercent string
	}{
		{"half", Range{0, 100}, 50, nil, "100", "50 %"},
		{"exceeded", Range{0, 1500}, 1720, nil, "1 500", "114.67 %"},
		{"unit", Range{0, 1500}, 0, func(s string) string { return s + " kWh" }, "1 500 kWh", "0 %"},
		{"zero max", Range{0, 0}, 5, nil, "0", "0 %"},
		{"negative max", Range{-10, -5}, -5, nil, "-5", "0 %"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := e.Labels(tt.rng, tt.progress, tt.formatter)
			if l.PlannedMax.Text != tt.wantTop {
				t.Errorf("top text = %q, want %q", l.PlannedMax.Text, tt.wantTop)
			}
			if l.Percentage.Text != tt.wantPercent {
				t.Errorf("percentage text = %q, want %q", l.Percentage.Text, tt.wantPercent)
			}
		})
	}
}

func TestGeometryEngine_BoxUsesAdvanceAndInk(t *testing.T) {
	e := &GeometryEngine{Measurer: fixedMeasurer, TopTextSize: 14, PercentageTextSize: 12}

	box := e.Measure(100, nil) // "100", regular
	if box.Width != 24 {
		t.Errorf("width = %d, want 24 (advance truncated)", box.Width)
	}
	if box.Height != 15 {
		t.Errorf("height = %d, want 15 (ink height rounded up)", box.Height)
	}

	pct := e.PercentageLabel(50, 100) // "50 %", bold
	if pct.Box.Width != 36 || pct.Box.Height != 13 {
		t.Errorf("percentage box = %+v, want {36 13}", pct.Box)
	}
}

func TestGeometryEngine_Defaults(t *testing.T) {
	var e GeometryEngine
	l := e.Labels(Range{0, 1}, 0, nil)
	if l.PlannedMax.Text != "1" || l.Percentage.Text != "0 %" {
		t.Errorf("labels = %+v", l)
	}
	// Zero font size yields zero ink height but never panics.
	if l.PlannedMax.Box.Height != 0 {
		t.Errorf("height = %d, want 0", l.PlannedMax.Box.Height)
	}
	if box := e.Measure(0, func(string) string { return "" }); box != (LabelBox{}) {
		t.Errorf("empty text box = %+v, want zero", box)
	}
}

func TestApproxMeasurer(t *testing.T) {
	var m ApproxMeasurer
	if got := m.MeasureText("", 14, FontRegular); got != (TextExtent{}) {
		t.Errorf("empty = %+v", got)
	}
	reg := m.MeasureText("100", 10, FontRegular)
	bold := m.MeasureText("100", 10, FontBold)
	if math.Abs(reg.Advance-18) > 1e-9 {
		t.Errorf("regular advance = %v, want 18", reg.Advance)
	}
	if bold.Advance <= reg.Advance {
		t.Errorf("bold advance %v should exceed regular %v", bold.Advance, reg.Advance)
	}
}
