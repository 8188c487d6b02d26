package exceedbar

import (
	"math"
	"testing"
)

func TestComputeGeometry_Scenarios(t *testing.T) {
	bounds := Bounds{MinX: 0, MinY: 0, MaxX: 300, MaxY: 40}
	pct := LabelBox{Width: 40, Height: 16}

	tests := []struct {
		name         string
		progress     float64
		wantExceeded bool
		wantEnd      float64
	}{
		{"half", 50, false, 125},
		{"overshoot", 150, true, 250 * 100.0 / 150},
		{"empty", 0, false, 0},
		{"at max", 100, false, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeGeometry(Range{Min: 0, Max: 100}, tt.progress, bounds, pct, 10)
			if g.TrackMaxWidth != 250 {
				t.Errorf("TrackMaxWidth = %v, want 250", g.TrackMaxWidth)
			}
			if g.IsExceeded != tt.wantExceeded {
				t.Errorf("IsExceeded = %v, want %v", g.IsExceeded, tt.wantExceeded)
			}
			if math.Abs(g.ProgressEndX-tt.wantEnd) > 1e-9 {
				t.Errorf("ProgressEndX = %v, want %v", g.ProgressEndX, tt.wantEnd)
			}
			if g.BarTop != 24 || g.BarBottom != 40 {
				t.Errorf("bar spans [%v, %v], want [24, 40]", g.BarTop, g.BarBottom)
			}
		})
	}
}

func TestComputeGeometry_BoundaryIsExact(t *testing.T) {
	for _, maxV := range []float64{1, 3, 7, 100, 1e6, 0.1} {
		g := ComputeGeometry(Range{Max: maxV}, maxV, Bounds{MaxX: 517, MaxY: 20}, LabelBox{Width: 33, Height: 12}, 10)
		if g.ProgressEndX != g.TrackMaxWidth {
			t.Errorf("max=%v: ProgressEndX = %v, want exactly %v", maxV, g.ProgressEndX, g.TrackMaxWidth)
		}
		if g.IsExceeded {
			t.Errorf("max=%v: progress == max must not be exceeded", maxV)
		}
	}
}

func TestComputeGeometry_Monotonic(t *testing.T) {
	r := Range{Min: 0, Max: 100}
	b := Bounds{MinX: 12, MaxX: 400, MaxY: 30}
	pct := LabelBox{Width: 50, Height: 14}

	prev := math.Inf(-1)
	for p := 0.0; p <= 100; p += 0.5 {
		g := ComputeGeometry(r, p, b, pct, 10)
		if g.ProgressEndX < prev {
			t.Fatalf("progress %v: end %v decreased from %v", p, g.ProgressEndX, prev)
		}
		prev = g.ProgressEndX
	}

	prev = math.Inf(1)
	for p := 100.0; p <= 10000; p += 25 {
		g := ComputeGeometry(r, p, b, pct, 10)
		if g.ProgressEndX > prev {
			t.Fatalf("progress %v: end %v increased from %v", p, g.ProgressEndX, prev)
		}
		prev = g.ProgressEndX
	}

	far := ComputeGeometry(r, 1e12, b, pct, 10)
	if far.ProgressEndX != float64(b.MinX) {
		t.Errorf("huge overshoot: end = %v, want MinX %d", far.ProgressEndX, b.MinX)
	}
}

func TestComputeGeometry_Clamp(t *testing.T) {
	ranges := []Range{{0, 100}, {-10, -5}, {0, 0}, {-50, 50}, {5, 5}, {0, 1e-9}}
	progresses := []float64{-100, -1, 0, 1e-12, 0.5, 5, 50, 100, 150, 1e9}
	boundsList := []Bounds{
		{MinX: 0, MaxX: 300, MaxY: 40},
		{MinX: 20, MaxX: 300, MaxY: 40},
		{MinX: 20, MaxX: 40, MaxY: 40}, // track narrower than padding
		{MinX: 0, MaxX: 0, MaxY: 0},
	}

	for _, r := range ranges {
		for _, p := range progresses {
			for _, b := range boundsList {
				g := ComputeGeometry(r, r.ClampProgress(p), b, LabelBox{Width: 30, Height: 10}, 10)
				if math.IsNaN(g.ProgressEndX) {
					t.Fatalf("range %+v progress %v bounds %+v: NaN end", r, p, b)
				}
				if g.ProgressEndX < float64(b.MinX) {
					t.Errorf("range %+v progress %v bounds %+v: end %v < MinX", r, p, b, g.ProgressEndX)
				}
				if g.ProgressEndX > g.TrackMaxWidth && g.TrackMaxWidth >= float64(b.MinX) {
					t.Errorf("range %+v progress %v bounds %+v: end %v > track %v", r, p, b, g.ProgressEndX, g.TrackMaxWidth)
				}
			}
		}
	}
}

func TestComputeGeometry_NonPositiveProgressIsEmpty(t *testing.T) {
	r := Range{Min: -10, Max: 10}
	for _, p := range []float64{-10, -3, 0} {
		g := ComputeGeometry(r, p, Bounds{MinX: 8, MaxX: 200, MaxY: 20}, LabelBox{Width: 20, Height: 10}, 10)
		if g.ProgressEndX != 8 {
			t.Errorf("progress %v: end = %v, want 8", p, g.ProgressEndX)
		}
	}
}

func TestComputeGeometry_ZeroMax(t *testing.T) {
	g := ComputeGeometry(Range{Min: 0, Max: 0}, 5, Bounds{MaxX: 100, MaxY: 10}, LabelBox{Width: 10, Height: 10}, 10)
	if !g.IsExceeded {
		t.Error("progress above a zero max should be exceeded")
	}
	if g.ProgressEndX != 0 {
		t.Errorf("end = %v, want 0", g.ProgressEndX)
	}
	if g.ExceededCorners() != CornersAll {
		t.Errorf("exceeded corners = %v, want all", g.ExceededCorners())
	}
}

func TestProgressGeometry_Corners(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 300, MaxY: 40}
	pct := LabelBox{Width: 40, Height: 16}
	r := Range{Min: 0, Max: 100}

	normal := ComputeGeometry(r, 40, b, pct, 10)
	if normal.TrackCorners() != CornersAll {
		t.Errorf("track corners = %v, want all", normal.TrackCorners())
	}
	if normal.ProgressCorners() != CornersAll {
		t.Errorf("normal progress corners = %v, want all", normal.ProgressCorners())
	}

	over := ComputeGeometry(r, 250, b, pct, 10)
	if !over.IsExceeded || over.ProgressEndX <= over.MinX {
		t.Fatalf("expected exceeded geometry with a visible progress segment, got %+v", over)
	}
	if pc := over.ProgressCorners(); pc.Has(CornerTopRight) || pc.Has(CornerBottomRight) || !pc.Has(CornersLeft) {
		t.Errorf("progress corners at seam = %v, want left only", pc)
	}
	if ec := over.ExceededCorners(); ec.Has(CornerTopLeft) || ec.Has(CornerBottomLeft) || !ec.Has(CornersRight) {
		t.Errorf("exceeded corners at seam = %v, want right only", ec)
	}
	if over.ProgressRect().Right != over.ExceededRect().Left {
		t.Errorf("seam mismatch: %v vs %v", over.ProgressRect().Right, over.ExceededRect().Left)
	}
}
