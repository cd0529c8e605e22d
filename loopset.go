package marquee

import "math"

// Bounds on clone synthesis. Regardless of configuration the builder never
// attaches more than maxRepeatSets full copies in either direction, and
// trims repeat sets until the combined appended+prepended clone count fits
// within maxClones, bottoming out at one appended and two prepended sets.
const (
	maxRepeatSets = 20
	maxClones     = 100
)

// ElementKind distinguishes originals from clones in a loop set.
type ElementKind uint8

const (
	// Original is a user-authored item.
	Original ElementKind = iota
	// Cloned is a generated duplicate used only to fill the loop surface.
	Cloned
)

// Element is one entry of a loop set: an original item or a clone of one,
// placed at a fixed offset within the strip. Clones alias the source item's
// image; they are never pixel copies, and they are discarded wholesale on
// every rebuild.
type Element struct {
	Kind ElementKind
	// SourceIndex is the index of the original item this element renders.
	SourceIndex int
	// SetIndex is 0 for originals, 1..n for appended repeat sets, and
	// -1..-n for prepended sets (reverse mode).
	SetIndex int
	// Offset is the element's position along the scroll axis, measured from
	// the strip head (the start of the prepended sets, if any).
	Offset float64

	Item *Item
}

// LoopSet is the ordered sequence of elements currently attached to the
// strip, together with the derived loop geometry.
type LoopSet struct {
	Elements []Element

	// Period is the exact translation distance after which the pattern
	// visually repeats: content size plus one gap. Zero for a static set.
	Period float64
	// Prepend is the total extent of the prepended repeat sets; zero unless
	// scrolling in reverse.
	Prepend float64
	// Length is the strip's exact rendered length: the sum of every attached
	// element's extent plus gaps.
	Length float64
	// Sets is the number of appended repeat sets.
	Sets int
	// PrependSets is the number of prepended repeat sets.
	PrependSets int
}

// CloneCount returns the number of cloned elements in the set.
func (ls *LoopSet) CloneCount() int {
	n := 0
	for i := range ls.Elements {
		if ls.Elements[i].Kind == Cloned {
			n++
		}
	}
	return n
}

// buildLoopSet constructs the loop surface for a measurement. It is
// idempotent: callers discard the previous set entirely and replace it with
// the result.
//
// When the measurement says not to animate, the result is the static terminal
// layout: originals only, zero period, translation belongs at zero.
func buildLoopSet(items []*Item, m Measurement, cfg *Config, a Axis, gap float64) LoopSet {
	if !m.ShouldAnimate || len(items) == 0 {
		return staticLoopSet(items, a, gap)
	}

	period := m.Content + gap
	sets := appendSets(items, m, cfg)
	pre := 0
	if cfg.Reverse {
		pre = prependSets(m)
	}
	if pre > maxRepeatSets {
		pre = maxRepeatSets
	}
	// The clone budget covers both directions; appended sets give way first,
	// then prepended ones.
	if n := len(items); n > 0 {
		for (pre+sets)*n > maxClones && sets > 1 {
			sets--
		}
		for (pre+sets)*n > maxClones && pre > 2 {
			pre--
		}
	}

	ls := LoopSet{
		Period:      period,
		Sets:        sets,
		PrependSets: pre,
		Prepend:     float64(pre) * period,
		Elements:    make([]Element, 0, (pre+1+sets)*len(items)),
	}

	offset := 0.0
	place := func(kind ElementKind, setIndex int) {
		for i, it := range items {
			if len(ls.Elements) > 0 {
				offset += gap
			}
			ls.Elements = append(ls.Elements, Element{
				Kind:        kind,
				SourceIndex: i,
				SetIndex:    setIndex,
				Offset:      offset,
				Item:        it,
			})
			offset += it.Extent(a)
		}
	}
	for s := -pre; s < 0; s++ {
		place(Cloned, s)
	}
	place(Original, 0)
	for s := 1; s <= sets; s++ {
		place(Cloned, s)
	}
	ls.Length = offset
	return ls
}

// staticLoopSet lays out the originals with no clones: the non-scrolling
// terminal layout.
func staticLoopSet(items []*Item, a Axis, gap float64) LoopSet {
	ls := LoopSet{Elements: make([]Element, 0, len(items))}
	offset := 0.0
	for i, it := range items {
		if i > 0 {
			offset += gap
		}
		ls.Elements = append(ls.Elements, Element{
			Kind:        Original,
			SourceIndex: i,
			SetIndex:    0,
			Offset:      offset,
			Item:        it,
		})
		offset += it.Extent(a)
	}
	ls.Length = offset
	return ls
}

// appendSets computes how many full clone sets follow the originals: at least
// the configured minimum, enough that the repeated content covers the
// reference size that many times over, and in forced mode enough to reach the
// forced target extent. The result is always capped by maxRepeatSets and
// maxClones.
func appendSets(items []*Item, m Measurement, cfg *Config) int {
	sets := cfg.RepeatCount
	if m.Forced {
		target := m.Reference * cfg.ForceAnimationWidth
		sets = int(math.Ceil(target / m.Content))
		if sets < cfg.RepeatCount {
			sets = cfg.RepeatCount
		}
	} else {
		need := m.Reference * float64(cfg.RepeatCount)
		for float64(sets)*m.Content < need && sets < maxRepeatSets {
			sets++
		}
	}
	if sets > maxRepeatSets {
		sets = maxRepeatSets
	}
	if n := len(items); n > 0 && sets*n > maxClones {
		sets = maxClones / n
		if sets < 1 {
			sets = 1
		}
	}
	return sets
}

// prependSets computes how many full clone sets precede the originals in
// reverse mode, so that scrolling toward the start never exposes empty space
// before the next wrap.
func prependSets(m Measurement) int {
	pre := int(math.Ceil(m.Reference/m.Content)) + 1
	if pre < 2 {
		pre = 2
	}
	return pre
}

// initialTranslation computes the strip's starting offset for a fresh loop
// set. Forward scrolling starts at -shift; reverse scrolling starts one
// period before the prepended sets so motion toward the start has a full
// period of runway.
func initialTranslation(ls *LoopSet, cfg *Config, viewportExtent float64) float64 {
	shift := 0.0
	switch cfg.ShiftMode {
	case ShiftViewport:
		shift = viewportExtent
	case ShiftUnits:
		shift = cfg.ShiftUnits
	}
	if cfg.Reverse {
		return -ls.Prepend - ls.Period + shift
	}
	return -shift
}
