package marquee

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Construction errors. Everything else the engine encounters at runtime is
// absorbed into state and reported through the event stream, never returned.
var (
	// ErrNoTarget is returned by Bind when the target resolves to no viewport.
	ErrNoTarget = errors.New("marquee: target resolves to no viewport")

	// ErrNilViewport is returned by Bind when a resolved viewport is nil.
	ErrNilViewport = errors.New("marquee: nil viewport")

	// ErrDestroyed is returned by operations invoked after Destroy.
	ErrDestroyed = errors.New("marquee: instance destroyed")
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Axis selects the scroll axis and carries the axis-specific geometry: which
// of a width/height pair is the scroll extent and how a scalar translation
// maps onto a 2-D offset. The position model never branches on orientation
// itself; it goes through these methods.
type Axis uint8

const (
	// Horizontal scrolls along X; the viewport extent is its width.
	Horizontal Axis = iota
	// Vertical scrolls along Y; the viewport extent is its height.
	Vertical
)

// Extent returns the scroll-axis component of a (width, height) pair.
func (a Axis) Extent(w, h float64) float64 {
	if a == Vertical {
		return h
	}
	return w
}

// Cross returns the cross-axis component of a (width, height) pair.
func (a Axis) Cross(w, h float64) float64 {
	if a == Vertical {
		return w
	}
	return h
}

// Point maps an (along, cross) pair back to (x, y).
func (a Axis) Point(along, cross float64) (x, y float64) {
	if a == Vertical {
		return cross, along
	}
	return along, cross
}

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Item is one original, user-authored content unit: an image plus its
// measured size. Items are immutable once attached; the engine only reads
// them. Image may be nil for headless use (measurement and position logic
// work on the stored sizes alone).
type Item struct {
	Image         *ebiten.Image
	Width, Height float64
}

// NewItem measures an image and wraps it as an Item.
func NewItem(img *ebiten.Image) *Item {
	b := img.Bounds()
	return &Item{Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// NewSizedItem creates an imageless Item with explicit dimensions.
func NewSizedItem(w, h float64) *Item {
	return &Item{Width: w, Height: h}
}

// Extent returns the item's size along the scroll axis.
func (it *Item) Extent(a Axis) float64 {
	return a.Extent(it.Width, it.Height)
}

// Viewport is one bounded visible area a strip scrolls within, together with
// the strip's authored content: the original items and their inter-item gap.
type Viewport struct {
	// Bounds is the screen-space rectangle the strip is clipped to.
	Bounds Rect

	// Gap is the authored inter-item spacing, used when the configuration
	// does not override it.
	Gap float64

	items []*Item
}

// NewViewport creates a viewport with the given bounds, authored gap, and
// original items. Items may be empty; an empty strip measures as zero-size
// content, which is a degraded (non-animating) state, not an error.
func NewViewport(bounds Rect, gap float64, items ...*Item) *Viewport {
	return &Viewport{Bounds: bounds, Gap: gap, items: append([]*Item(nil), items...)}
}

// Items returns the original items. The returned slice is the viewport's own;
// callers must not mutate it (use Instance.AddItem / Instance.RemoveItem).
func (v *Viewport) Items() []*Item {
	return v.items
}

// Locator resolves an abstract binding target into concrete viewports. It is
// the seam for external markup/selector resolution; the engine only sees the
// result.
type Locator interface {
	Resolve() ([]*Viewport, error)
}

// Bind resolves target into viewports and creates one started Instance per
// viewport, all joined to group. Target may be a *Viewport, a []*Viewport, or
// a Locator. Resolving to zero viewports is a construction error; so is an
// invalid configuration. On success every instance has measured, built its
// loop set, and is running if its content warrants animation.
func Bind(group *Group, target any, cfg Config) (*Multi, error) {
	if group == nil {
		group = NewGroup()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var viewports []*Viewport
	switch t := target.(type) {
	case *Viewport:
		if t != nil {
			viewports = []*Viewport{t}
		}
	case []*Viewport:
		viewports = t
	case Locator:
		var err error
		viewports, err = t.Resolve()
		if err != nil {
			return nil, fmt.Errorf("marquee: resolve target: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w (unsupported target %T)", ErrNoTarget, target)
	}
	if len(viewports) == 0 {
		return nil, ErrNoTarget
	}
	for _, v := range viewports {
		if v == nil {
			return nil, ErrNilViewport
		}
	}

	m := &Multi{instances: make([]*Instance, 0, len(viewports))}
	for _, v := range viewports {
		m.instances = append(m.instances, newInstance(group, v, cfg))
	}
	return m, nil
}

// Multi is a collection binding: the instances created from one Bind call.
// Its operations broadcast to every bound instance.
type Multi struct {
	instances []*Instance
}

// Instances returns the bound instances in binding order.
func (m *Multi) Instances() []*Instance { return m.instances }

// Step advances every instance by dt seconds.
func (m *Multi) Step(dt float64) {
	for _, in := range m.instances {
		in.Step(dt)
	}
}

// Draw renders every instance onto screen.
func (m *Multi) Draw(screen *ebiten.Image) {
	for _, in := range m.instances {
		in.Draw(screen)
	}
}

// Start starts every instance.
func (m *Multi) Start() {
	for _, in := range m.instances {
		in.Start()
	}
}

// Stop stops every instance.
func (m *Multi) Stop() {
	for _, in := range m.instances {
		in.Stop()
	}
}

// Pause pauses every instance.
func (m *Multi) Pause() {
	for _, in := range m.instances {
		in.Pause()
	}
}

// Resume resumes every instance.
func (m *Multi) Resume() {
	for _, in := range m.instances {
		in.Resume()
	}
}

// Refresh re-measures and rebuilds every instance.
func (m *Multi) Refresh() {
	for _, in := range m.instances {
		in.Refresh()
	}
}

// AddItem appends item to every instance's strip and refreshes.
func (m *Multi) AddItem(item *Item) {
	for _, in := range m.instances {
		in.AddItem(item)
	}
}

// RemoveItem removes the most recently added original from every instance.
func (m *Multi) RemoveItem() {
	for _, in := range m.instances {
		in.RemoveItem()
	}
}

// Destroy releases every instance.
func (m *Multi) Destroy() {
	for _, in := range m.instances {
		in.Destroy()
	}
}

// On attaches a listener to every instance. The returned function detaches it
// from all of them.
func (m *Multi) On(pattern EventType, fn func(Event)) func() {
	offs := make([]func(), 0, len(m.instances))
	for _, in := range m.instances {
		offs = append(offs, in.On(pattern, fn))
	}
	return func() {
		for _, off := range offs {
			off()
		}
	}
}
