package engine

// Span is a vertical extent of the page measured in rows.
type Span struct {
	Top    int
	Height int
}

func (s Span) bottom() int { return s.Top + s.Height }

// Threshold defines when an element counts as "in view": Ratio is the
// fraction of the element that must overlap the viewport, and Margin
// shrinks the viewport's top and bottom edges by that fraction of its
// height before the overlap is measured. A positive Margin requires
// elements to be closer to the center of the viewport.
type Threshold struct {
	Ratio  float64
	Margin float64
}

// Intersects reports whether el is in view of viewport under th.
// Zero-height elements intersect when they sit inside the shrunk viewport.
func Intersects(viewport, el Span, th Threshold) bool {
	inset := int(float64(viewport.Height) * th.Margin)
	top := viewport.Top + inset
	bottom := viewport.bottom() - inset
	if bottom <= top {
		return false
	}

	overlapTop := max(top, el.Top)
	overlapBottom := min(bottom, el.bottom())
	overlap := overlapBottom - overlapTop

	if el.Height <= 0 {
		return el.Top >= top && el.Top < bottom
	}
	if overlap <= 0 {
		return false
	}
	return float64(overlap)/float64(el.Height) >= th.Ratio
}
