package marquee

import "math"

// animateTolerance absorbs sub-unit layout rounding: content exactly equal to
// the viewport (or within one unit over) does not animate.
const animateTolerance = 1

// Measurement is the result of one dimension pass. It is a pure value; taking
// a measurement never mutates the instance.
type Measurement struct {
	// Viewport is the viewport extent along the scroll axis.
	Viewport float64
	// Content is the sum of original item extents plus inter-item gaps.
	Content float64
	// Reference is the larger of Viewport and the host's visible extent,
	// used to size the loop set generously enough for wide displays.
	Reference float64
	// ShouldAnimate reports whether the content overflows the viewport
	// (or animation is forced).
	ShouldAnimate bool
	// Forced is set when ShouldAnimate was overridden by ForceAnimation.
	Forced bool
}

// Degraded reports the zero-size-content state: items exist but measure to
// nothing (or there are no items). Not an error; a later measurement may
// succeed once content is measurable.
func (m Measurement) Degraded() bool { return m.Content == 0 }

// measure computes the current dimensions of a strip. visibleExtent is the
// host's full visible size along the scroll axis.
func measure(items []*Item, a Axis, gap, viewportExtent, visibleExtent float64, force bool) Measurement {
	m := Measurement{
		Viewport:  viewportExtent,
		Reference: math.Max(viewportExtent, visibleExtent),
	}
	for _, it := range items {
		m.Content += it.Extent(a)
	}
	if n := len(items); n > 1 {
		m.Content += float64(n-1) * gap
	}
	if m.Content == 0 {
		return m
	}
	m.ShouldAnimate = m.Content > m.Viewport+animateTolerance
	if !m.ShouldAnimate && force {
		m.ShouldAnimate = true
		m.Forced = true
	}
	return m
}
