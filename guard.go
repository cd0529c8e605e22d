package marquee

import "math"

// Guard defaults. Times are in seconds on the instance's logical clock,
// which advances with Step.
const (
	guardMinInterval = 0.050 // minimum spacing between accepted notifications
	guardDebounce    = 0.300 // quiet period before the coalesced refresh runs
	guardMinDelta    = 5.0   // minimum container delta considered real
	guardCeiling     = 100   // accepted notifications before hard-stop
)

// resizeGuard filters size-change notifications so the engine's own layout
// mutations cannot re-trigger measurement in a tight cycle. It owns no
// animation state: it only decides whether a notification schedules a
// refresh, and when that refresh is due. A rejected notification is a no-op,
// never an error.
type resizeGuard struct {
	// refreshing serializes recomputation: notifications arriving while a
	// refresh or initialization is in progress are rejected outright.
	refreshing bool

	lastAccepted float64
	accepted     int

	// disconnected is the terminal runaway state: the observation channel is
	// considered dead and no further notifications are accepted.
	disconnected bool

	// Last known host and container geometry, for the realness check.
	lastViewport float64
	lastVisibleW float64
	lastVisibleH float64
	primed       bool

	// pendingAt is the logical time the debounced refresh is due; negative
	// when nothing is pending.
	pendingAt float64

	minInterval float64
	debounce    float64
	minDelta    float64
	ceiling     int
}

func newResizeGuard() resizeGuard {
	return resizeGuard{
		pendingAt:    -1,
		lastAccepted: math.Inf(-1),
		minInterval:  guardMinInterval,
		debounce:     guardDebounce,
		minDelta:     guardMinDelta,
		ceiling:      guardCeiling,
	}
}

// prime records the initial geometry without counting an acceptance, so the
// first real notification is judged against the bind-time state.
func (g *resizeGuard) prime(viewport, visibleW, visibleH float64) {
	g.lastViewport = viewport
	g.lastVisibleW = visibleW
	g.lastVisibleH = visibleH
	g.primed = true
}

// filter runs a notification through every layer and, when all pass, records
// the acceptance and (re)arms the debounced refresh. It returns true when the
// notification was accepted. runaway is true on the transition into the
// hard-stop state.
func (g *resizeGuard) filter(now, viewport, visibleW, visibleH float64) (accepted, runaway bool) {
	if g.disconnected || g.refreshing {
		return false, false
	}
	if now-g.lastAccepted < g.minInterval {
		return false, false
	}
	if !g.real(viewport, visibleW, visibleH) {
		return false, false
	}

	g.accepted++
	g.lastAccepted = now
	g.lastViewport = viewport
	g.lastVisibleW = visibleW
	g.lastVisibleH = visibleH
	g.primed = true

	if g.accepted > g.ceiling {
		// Loop runaway: disconnect entirely and leave the instance in its
		// last good state. No automatic recovery.
		g.disconnected = true
		g.pendingAt = -1
		return false, true
	}

	g.pendingAt = now + g.debounce
	return true, false
}

// real reports whether a notification reflects a genuine size change: either
// the host's visible area changed, or the container moved by at least the
// minimum delta. Sub-unit layout rounding fails both tests.
func (g *resizeGuard) real(viewport, visibleW, visibleH float64) bool {
	if !g.primed {
		return true
	}
	if visibleW != g.lastVisibleW || visibleH != g.lastVisibleH {
		return true
	}
	return math.Abs(viewport-g.lastViewport) >= g.minDelta
}

// service reports whether the debounced refresh is due. Firing clears the
// pending deadline and resets the acceptance counter.
func (g *resizeGuard) service(now float64) bool {
	if g.disconnected || g.pendingAt < 0 || now < g.pendingAt {
		return false
	}
	g.pendingAt = -1
	g.accepted = 0
	return true
}

// cancel drops any pending refresh. Called on destroy so a dead instance is
// never refreshed by a stale deadline.
func (g *resizeGuard) cancel() {
	g.pendingAt = -1
}
