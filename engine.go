package marquee

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// State is the animation state of an instance. Running and Paused are both
// "animating" states; Stopped is the only state in which stepping does
// nothing at all.
type State uint8

const (
	Stopped State = iota
	Running
	Paused
)

// String returns "stopped", "running", or "paused".
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "stopped"
}

// pauseSource identifies who is holding an instance paused. The instance
// resumes motion only when every source has released its hold.
type pauseSource uint8

const (
	pauseManual pauseSource = 1 << iota // Pause() was called
	pauseSync                           // a peer's synchronized pause
	pauseHover                          // pointer inside the viewport
	pauseClick                          // click-toggled pause
	pauseHidden                         // window hidden or unfocused
	pauseOffscreen                      // viewport outside the visible area
	pauseMotion                         // reduced-motion preference
)

// Instance is one bound viewport+strip pair: the measurement, loop set,
// position model, and pause state for a single scrolling strip.
//
// Instances are single-threaded by design: every method must be called from
// the host's update loop (or before it starts). There are no locks.
type Instance struct {
	viewport *Viewport
	cfg      Config
	axis     Axis
	gap      float64
	group    *Group
	log      *zap.Logger

	listeners   []listener
	listenerSeq int

	meas        Measurement
	set         LoopSet
	translation float64

	state     State
	pausedBy  pauseSource
	destroyed bool

	// now is the instance's logical clock in seconds, advanced by Step. The
	// guard's rate limiting and debouncing run on this clock, which keeps
	// them deterministic under test.
	now   float64
	guard resizeGuard

	// Host visible area, tracked from NotifyResize.
	visibleW, visibleH float64

	// ramp eases speed from zero back to full after a resume.
	ramp *gween.Tween

	input       InputReader
	hoverMode   bool // adaptive selection: true = hover-pause, false = click-pause
	wasInside   bool
	viewVisible bool
	windowShown bool

	reducedMotion bool
}

func newInstance(g *Group, v *Viewport, cfg Config) *Instance {
	if cfg.Vertical && cfg.Height > 0 {
		v.Bounds.Height = cfg.Height
	}
	in := &Instance{
		viewport:    v,
		cfg:         cfg,
		axis:        cfg.axis(),
		gap:         cfg.resolveGap(v),
		group:       g,
		log:         newLogger(&cfg),
		guard:       newResizeGuard(),
		input:       hostInput{},
		viewVisible: true,
		windowShown: true,
		visibleW:    v.Bounds.Width,
		visibleH:    v.Bounds.Height,
	}
	if cfg.OnEvent != nil {
		in.On("marquee:*", cfg.OnEvent)
	}
	g.join(in)
	in.emit(EventInit)
	in.guard.prime(in.viewportExtent(), in.visibleW, in.visibleH)
	in.evalAdaptive()
	in.refresh(true)
	in.emit(EventInitComplete)
	return in
}

// --- Accessors ---

// State returns the current animation state.
func (in *Instance) State() State { return in.state }

// Animating reports whether the instance is in an animating state
// (Running or Paused).
func (in *Instance) Animating() bool { return in.state != Stopped }

// IsPaused reports whether the instance is paused.
func (in *Instance) IsPaused() bool { return in.state == Paused }

// Destroyed reports whether Destroy has run.
func (in *Instance) Destroyed() bool { return in.destroyed }

// Translation returns the current signed offset along the scroll axis.
func (in *Instance) Translation() float64 { return in.translation }

// Measurement returns the most recent dimension pass.
func (in *Instance) Measurement() Measurement { return in.meas }

// LoopSet returns the currently attached loop set.
func (in *Instance) LoopSet() *LoopSet { return &in.set }

// Viewport returns the bound viewport.
func (in *Instance) Viewport() *Viewport { return in.viewport }

// Axis returns the configured scroll axis.
func (in *Instance) Axis() Axis { return in.axis }

// GuardDisconnected reports the terminal runaway state: the size-observation
// channel has been disconnected for this instance.
func (in *Instance) GuardDisconnected() bool { return in.guard.disconnected }

// SetInputReader replaces the interaction input source. The default reads
// the ebiten cursor, mouse button, and window focus state.
func (in *Instance) SetInputReader(r InputReader) {
	if r != nil {
		in.input = r
	}
}

func (in *Instance) viewportExtent() float64 {
	return in.axis.Extent(in.viewport.Bounds.Width, in.viewport.Bounds.Height)
}

func (in *Instance) visibleExtent() float64 {
	return in.axis.Extent(in.visibleW, in.visibleH)
}

// --- Public operations ---

// Start re-measures, rebuilds the loop set, and begins animating when the
// content warrants it. Starting an already-running instance restarts it from
// the initial translation.
func (in *Instance) Start() {
	if in.destroyed {
		return
	}
	in.refresh(true)
}

// Stop halts stepping entirely. No further translation changes occur until
// the instance is started or resumed, both of which re-measure first.
func (in *Instance) Stop() {
	if in.destroyed || in.state == Stopped {
		return
	}
	in.state = Stopped
	in.ramp = nil
	in.emit(EventStopped)
}

// Pause freezes the translation while keeping the per-frame callback
// scheduled. With SyncPause, every other instance in the group is marked
// paused as well, without running their measurement logic.
func (in *Instance) Pause() {
	if in.destroyed {
		return
	}
	in.holdPause(pauseManual)
	if in.cfg.SyncPause {
		in.group.broadcastPause(in)
	}
}

// Resume releases a manual (or synchronized) pause. Resuming re-measures
// first: an instance whose content no longer overflows is stopped outright,
// and one whose loop set was never built gets it built before motion
// restarts. With SyncPause, paused peers are independently re-measured and
// resumed only if their own measurement allows it.
func (in *Instance) Resume() {
	if in.destroyed {
		return
	}
	in.releasePause(pauseManual | pauseSync)
	if in.state == Stopped && in.pausedBy == 0 {
		// A stopped instance may have been measured as zero-size earlier;
		// a resume re-measures and starts it when content now overflows.
		in.resumeMotion()
	}
	if in.cfg.SyncPause {
		in.group.resumePeers(in)
	}
}

// Refresh stops, re-measures, rebuilds the loop set, resets the translation
// baseline, and resumes stepping if the instance was animating.
func (in *Instance) Refresh() {
	if in.destroyed {
		return
	}
	in.refresh(false)
}

// AddItem appends an original item to the strip and refreshes.
func (in *Instance) AddItem(item *Item) {
	if in.destroyed || item == nil {
		return
	}
	in.viewport.items = append(in.viewport.items, item)
	in.refresh(false)
}

// RemoveItem removes the most recently added original item and refreshes.
// Removing from an empty strip is a no-op.
func (in *Instance) RemoveItem() {
	if in.destroyed || len(in.viewport.items) == 0 {
		return
	}
	in.viewport.items = in.viewport.items[:len(in.viewport.items)-1]
	in.refresh(false)
}

// Destroy stops the instance, cancels any pending debounced refresh, leaves
// the group, and releases listeners. Every operation on a destroyed instance
// is a no-op.
func (in *Instance) Destroy() {
	if in.destroyed {
		return
	}
	in.emit(EventDestroy)
	in.Stop()
	in.guard.cancel()
	in.guard.disconnected = true
	in.group.leave(in)
	in.emit(EventDestroyComplete)
	in.destroyed = true
	in.listeners = nil
}

// SetReducedMotion applies the host's reduced-motion preference. Turning it
// on pauses; turning it off attempts a resume. The preference is tracked
// bidirectionally, so flipping it repeatedly is safe.
func (in *Instance) SetReducedMotion(on bool) {
	if in.destroyed || on == in.reducedMotion {
		return
	}
	in.reducedMotion = on
	if on {
		in.holdPause(pauseMotion)
		in.emit(EventReducedMotionOn)
		return
	}
	in.emit(EventReducedMotionOff)
	in.releasePause(pauseMotion)
}

// NotifyResize feeds a host size-change notification through the guard.
// visibleW and visibleH are the host's full visible area. Rejected
// notifications are no-ops; accepted ones schedule a debounced refresh that
// fires from a later Step.
func (in *Instance) NotifyResize(visibleW, visibleH float64) {
	if in.destroyed || in.guard.disconnected {
		return
	}
	if in.visibleW > 0 && in.visibleH > 0 &&
		(in.visibleW > in.visibleH) != (visibleW > visibleH) {
		in.emit(EventOrientationChange)
	}
	if in.cfg.FullWidth {
		in.viewport.Bounds.Width = visibleW
	}
	if in.cfg.FullHeight {
		in.viewport.Bounds.Height = visibleH
	}
	in.visibleW, in.visibleH = visibleW, visibleH

	accepted, runaway := in.guard.filter(in.now, in.viewportExtent(), visibleW, visibleH)
	if runaway {
		in.log.Warn("resize runaway detected, size observer disconnected",
			zap.Int("accepted", in.guard.accepted))
		in.emit(EventResizeRunaway)
		return
	}
	if !accepted {
		return
	}
	in.emit(EventResized)
	in.evalAdaptive()
}

// --- Frame stepping ---

// Step advances the instance by dt seconds: it services the guard's pending
// debounced refresh, polls interaction and visibility signals, and, while
// Running, advances and wraps the translation. dt is the gap since the
// previous Step call (on the first call after a start, since the start
// itself), so pausing never accumulates a time debt.
func (in *Instance) Step(dt float64) {
	if in.destroyed {
		return
	}
	in.now += dt
	if in.guard.service(in.now) {
		in.refresh(false)
	}
	in.pollInteraction()
	if in.state != Running {
		return
	}

	speed := in.cfg.Speed
	if in.ramp != nil {
		v, done := in.ramp.Update(float32(dt))
		speed = float64(v)
		if done {
			in.ramp = nil
		}
	}

	if in.cfg.Reverse {
		in.translation += speed * dt
		for in.set.Period > 0 && in.translation >= -in.set.Prepend {
			in.translation -= in.set.Period
			in.emitCycle(+1)
		}
	} else {
		in.translation -= speed * dt
		for in.set.Period > 0 && in.translation <= -in.set.Period {
			in.translation += in.set.Period
			in.emitCycle(-1)
		}
	}
}

func (in *Instance) emitCycle(direction int) {
	e := in.snapshot(EventCycle)
	e.Direction = direction
	in.emitEvent(e)
}

// --- Internal transitions ---

// refresh is the full stop → re-measure → rebuild → restart cycle. run
// forces a start even if the instance was stopped; otherwise the previous
// animating state is preserved. The guard's in-progress flag serializes
// refreshes: notifications arriving mid-refresh are rejected.
func (in *Instance) refresh(run bool) {
	if in.guard.refreshing {
		return
	}
	in.guard.refreshing = true
	defer func() { in.guard.refreshing = false }()

	wasAnimating := in.state != Stopped
	in.state = Stopped
	in.ramp = nil

	in.meas = measure(in.viewport.items, in.axis, in.gap,
		in.viewportExtent(), in.visibleExtent(), in.cfg.ForceAnimation)
	in.emit(EventMeasured)

	in.set = buildLoopSet(in.viewport.items, in.meas, &in.cfg, in.axis, in.gap)

	if !in.meas.ShouldAnimate {
		// Static terminal layout: no clones, translation at rest.
		in.translation = 0
		in.emit(EventContentSetup)
		if run || wasAnimating {
			in.emit(EventSkipped)
		}
		return
	}

	in.emit(EventClonesBuilt)
	in.translation = initialTranslation(&in.set, &in.cfg, in.meas.Viewport)
	in.emit(EventContentSetup)

	if run || wasAnimating {
		in.startMotion()
	}
}

// startMotion enters Running, or Paused when a pause source is holding.
func (in *Instance) startMotion() {
	if in.pausedBy != 0 {
		in.state = Paused
		return
	}
	in.state = Running
	in.armRamp()
	in.emit(EventStarted)
}

// holdPause records a pause source and freezes a running instance.
func (in *Instance) holdPause(src pauseSource) {
	if in.destroyed {
		return
	}
	in.pausedBy |= src
	if in.state == Running {
		in.state = Paused
		in.emit(EventPaused)
	}
}

// releasePause clears pause sources and, once none remain, resumes motion
// through a fresh measurement.
func (in *Instance) releasePause(src pauseSource) {
	if in.destroyed {
		return
	}
	in.pausedBy &^= src
	if in.pausedBy != 0 || in.state != Paused {
		return
	}
	in.resumeMotion()
}

// resumeMotion is the measured resume: re-measure, stop outright if the
// content no longer warrants animation, rebuild a never-built loop set, then
// re-enter Running.
func (in *Instance) resumeMotion() {
	in.meas = measure(in.viewport.items, in.axis, in.gap,
		in.viewportExtent(), in.visibleExtent(), in.cfg.ForceAnimation)
	in.emit(EventMeasured)

	if !in.meas.ShouldAnimate {
		// Rather than a dangling paused-but-static state, stop outright.
		in.set = buildLoopSet(in.viewport.items, in.meas, &in.cfg, in.axis, in.gap)
		in.translation = 0
		if in.state != Stopped {
			in.state = Stopped
			in.emit(EventStopped)
		}
		return
	}
	if in.set.Period <= 0 {
		in.set = buildLoopSet(in.viewport.items, in.meas, &in.cfg, in.axis, in.gap)
		in.emit(EventClonesBuilt)
		in.translation = initialTranslation(&in.set, &in.cfg, in.meas.Viewport)
	}
	in.state = Running
	in.armRamp()
	in.emit(EventResumed)
}

func (in *Instance) armRamp() {
	if in.cfg.RampDuration <= 0 {
		in.ramp = nil
		return
	}
	in.ramp = gween.New(0, float32(in.cfg.Speed), float32(in.cfg.RampDuration), ease.OutQuad)
}
