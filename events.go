package marquee

import "strings"

// EventType names an outbound notification. All types share the "marquee:"
// namespace; listeners may subscribe to a single type or to a prefix wildcard
// such as "marquee:*" or "marquee:hover-*".
type EventType string

// Lifecycle events.
const (
	EventInit            EventType = "marquee:init"
	EventInitComplete    EventType = "marquee:init-complete"
	EventDestroy         EventType = "marquee:destroy"
	EventDestroyComplete EventType = "marquee:destroy-complete"
)

// Dimension events.
const (
	EventMeasured     EventType = "marquee:measured"
	EventClonesBuilt  EventType = "marquee:clones-built"
	EventContentSetup EventType = "marquee:content-setup"
)

// Animation events.
const (
	EventStarted EventType = "marquee:started"
	EventStopped EventType = "marquee:stopped"
	EventPaused  EventType = "marquee:paused"
	EventResumed EventType = "marquee:resumed"
	EventCycle   EventType = "marquee:cycle"
	EventSkipped EventType = "marquee:skipped"
)

// Interaction events.
const (
	EventHoverPause    EventType = "marquee:hover-pause"
	EventHoverResume   EventType = "marquee:hover-resume"
	EventClickPause    EventType = "marquee:click-pause"
	EventClickResume   EventType = "marquee:click-resume"
	EventOutsideResume EventType = "marquee:outside-resume"
)

// Visibility events.
const (
	EventVisible      EventType = "marquee:visible"
	EventInvisible    EventType = "marquee:invisible"
	EventWindowShown  EventType = "marquee:window-shown"
	EventWindowHidden EventType = "marquee:window-hidden"
)

// System events.
const (
	EventResized           EventType = "marquee:resized"
	EventOrientationChange EventType = "marquee:orientation-change"
	EventReducedMotionOn   EventType = "marquee:reduced-motion-on"
	EventReducedMotionOff  EventType = "marquee:reduced-motion-off"
	EventResizeRunaway     EventType = "marquee:resize-runaway"
)

// Event is one outbound notification, carrying the originating instance and
// the measured values current at emission time.
type Event struct {
	Type     EventType
	Instance *Instance

	// Measurement snapshot.
	Viewport float64
	Content  float64
	Forced   bool

	// Loop geometry snapshot.
	Period      float64
	CloneCount  int
	Translation float64

	// Direction is -1 for a forward cycle, +1 for a reverse cycle; zero for
	// every other event type.
	Direction int
}

type listener struct {
	id      int
	pattern EventType
	fn      func(Event)
}

// matches reports whether pattern accepts t. A trailing '*' makes the pattern
// a prefix match.
func (l *listener) matches(t EventType) bool {
	p := string(l.pattern)
	if strings.HasSuffix(p, "*") {
		return strings.HasPrefix(string(t), p[:len(p)-1])
	}
	return l.pattern == t
}

// On attaches fn as a listener for the given type or wildcard pattern. The
// returned function detaches it. Listeners run synchronously, on the same
// call that caused the event.
func (in *Instance) On(pattern EventType, fn func(Event)) func() {
	in.listenerSeq++
	id := in.listenerSeq
	in.listeners = append(in.listeners, listener{id: id, pattern: pattern, fn: fn})
	return func() {
		for i := range in.listeners {
			if in.listeners[i].id == id {
				in.listeners = append(in.listeners[:i], in.listeners[i+1:]...)
				return
			}
		}
	}
}

// emit delivers an event to every matching listener and mirrors it to the
// develop log.
func (in *Instance) emit(t EventType) {
	in.emitEvent(in.snapshot(t))
}

func (in *Instance) emitEvent(e Event) {
	in.log.Debug(string(e.Type),
		zapFloat("viewport", e.Viewport),
		zapFloat("content", e.Content),
		zapFloat("period", e.Period),
		zapFloat("translation", e.Translation),
	)
	// Iterate over a copy: listeners may detach themselves while being
	// notified, which shifts entries in the live slice.
	snapshot := append([]listener(nil), in.listeners...)
	for i := range snapshot {
		if snapshot[i].matches(e.Type) {
			snapshot[i].fn(e)
		}
	}
}

// snapshot fills an Event with the instance's current measured values.
func (in *Instance) snapshot(t EventType) Event {
	return Event{
		Type:        t,
		Instance:    in,
		Viewport:    in.meas.Viewport,
		Content:     in.meas.Content,
		Forced:      in.meas.Forced,
		Period:      in.set.Period,
		CloneCount:  in.set.CloneCount(),
		Translation: in.translation,
	}
}
