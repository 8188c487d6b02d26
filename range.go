package exceedbar

// Range is the closed interval progress is mapped from.
// Min <= Max holds after every setter call.
type Range struct {
	Min, Max float64
}

// SetMin stores v as the lower bound, swapping the bounds when v would
// exceed Max. It reports whether a swap happened.
func (r *Range) SetMin(v float64) bool {
	r.Min = v
	return r.normalize()
}

// SetMax stores v as the upper bound, swapping the bounds when v would
// fall below Min. It reports whether a swap happened.
func (r *Range) SetMax(v float64) bool {
	r.Max = v
	return r.normalize()
}

// Set stores both bounds at once, swapping them when given out of order.
func (r *Range) Set(lo, hi float64) bool {
	r.Min, r.Max = lo, hi
	return r.normalize()
}

// ClampProgress floors p at Min. There is no upper clamp: values above
// Max are the exceeded state.
func (r Range) ClampProgress(p float64) float64 {
	if p < r.Min {
		return r.Min
	}
	return p
}

func (r *Range) normalize() bool {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
		return true
	}
	return false
}
