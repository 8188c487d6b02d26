package exceedbar

// SpecMode is how a parent constrains one dimension of the bar.
type SpecMode int

const (
	// Unspecified lets the bar take its desired size.
	Unspecified SpecMode = iota
	// Exactly forces the given size.
	Exactly
	// AtMost caps the desired size.
	AtMost
)

// String returns the mode name.
func (m SpecMode) String() string {
	switch m {
	case Exactly:
		return "exactly"
	case AtMost:
		return "at-most"
	default:
		return "unspecified"
	}
}

// MeasureSpec is a parent constraint for one dimension.
type MeasureSpec struct {
	Mode SpecMode
	Size int
}

// ExactlySpec is shorthand for MeasureSpec{Exactly, size}.
func ExactlySpec(size int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: size} }

// AtMostSpec is shorthand for MeasureSpec{AtMost, size}.
func AtMostSpec(size int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: size} }

// ResolveSize reconciles a desired size with a parent constraint.
func ResolveSize(desired int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(desired, spec.Size)
	default:
		return desired
	}
}

// minDesiredWidth is the narrowest track the bar asks for.
const minDesiredWidth = 100

// desiredSize is the size the bar wants before constraints apply. The
// height stacks the top label and its bottom space over the taller of the
// bar and the percentage label.
func desiredSize(p Padding, minWidth, minHeight int, labels Labels, barHeight, topTextBottomSpace int) (int, int) {
	w := p.Left + p.Right + max(minDesiredWidth, minWidth)
	content := max(labels.Percentage.Box.Height, barHeight) + labels.PlannedMax.Box.Height + topTextBottomSpace
	h := p.Top + p.Bottom + max(content, minHeight)
	return w, h
}
