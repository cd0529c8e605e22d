package marquee

import "testing"

func TestListenerPatternMatching(t *testing.T) {
	cases := []struct {
		pattern EventType
		event   EventType
		want    bool
	}{
		{EventCycle, EventCycle, true},
		{EventCycle, EventPaused, false},
		{"marquee:*", EventCycle, true},
		{"marquee:*", EventReducedMotionOn, true},
		{"marquee:hover-*", EventHoverPause, true},
		{"marquee:hover-*", EventClickPause, false},
		{"*", EventCycle, true},
	}
	for _, tc := range cases {
		l := listener{pattern: tc.pattern}
		if got := l.matches(tc.event); got != tc.want {
			t.Errorf("pattern %q vs %q = %v, want %v", tc.pattern, tc.event, got, tc.want)
		}
	}
}

func TestUnsubscribeDetaches(t *testing.T) {
	in, _ := newTestMarquee(t, DefaultConfig(), Rect{Width: 200, Height: 60}, 0, 150, 150)

	calls := 0
	off := in.On("marquee:*", func(Event) { calls++ })
	in.Refresh()
	if calls == 0 {
		t.Fatal("listener never called")
	}

	off()
	before := calls
	in.Refresh()
	if calls != before {
		t.Errorf("detached listener still called (%d -> %d)", before, calls)
	}

	// Detaching twice is harmless.
	off()
}

func TestListenerDetachingItselfMidEmit(t *testing.T) {
	in, _ := newTestMarquee(t, DefaultConfig(), Rect{Width: 200, Height: 60}, 0, 150, 150)

	var a, b, c int
	var offA func()
	offA = in.On(EventMeasured, func(Event) {
		a++
		offA()
	})
	in.On(EventMeasured, func(Event) { b++ })
	in.On(EventMeasured, func(Event) { c++ })

	// One emission: detaching A must not skip B or double-deliver to C.
	in.Refresh()
	if a != 1 || b != 1 || c != 1 {
		t.Fatalf("calls a/b/c = %d/%d/%d, want 1/1/1", a, b, c)
	}

	// A is gone; the survivors still fire exactly once each.
	in.Refresh()
	if a != 1 || b != 2 || c != 2 {
		t.Errorf("calls a/b/c = %d/%d/%d, want 1/2/2", a, b, c)
	}
}

func TestBindLifecycleEventOrder(t *testing.T) {
	var order []EventType
	cfg := DefaultConfig()
	cfg.OnEvent = func(e Event) { order = append(order, e.Type) }

	_, err := Bind(NewGroup(), NewViewport(Rect{Width: 200, Height: 60}, 0,
		NewSizedItem(150, 40), NewSizedItem(150, 40)), cfg)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	want := []EventType{
		EventInit, EventMeasured, EventClonesBuilt, EventContentSetup,
		EventStarted, EventInitComplete,
	}
	if len(order) != len(want) {
		t.Fatalf("events = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("event %d = %v, want %v (full order %v)", i, order[i], want[i], order)
		}
	}
}

func TestSkippedEmittedForFittingContent(t *testing.T) {
	var order []EventType
	cfg := DefaultConfig()
	cfg.OnEvent = func(e Event) { order = append(order, e.Type) }

	_, err := Bind(NewGroup(), NewViewport(Rect{Width: 300, Height: 60}, 0,
		NewSizedItem(100, 40)), cfg)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	seen := map[EventType]bool{}
	for _, e := range order {
		seen[e] = true
	}
	if !seen[EventSkipped] {
		t.Errorf("expected skipped event, got %v", order)
	}
	if seen[EventStarted] || seen[EventClonesBuilt] {
		t.Errorf("static bind must not start or clone, got %v", order)
	}
}

func TestEventCarriesMeasuredValues(t *testing.T) {
	in, _ := newTestMarquee(t, DefaultConfig(), Rect{Width: 200, Height: 60}, 0, 150, 150)

	var got Event
	in.On(EventMeasured, func(e Event) { got = e })
	in.Refresh()

	if got.Instance != in {
		t.Error("event missing originating instance")
	}
	if got.Content != 300 || got.Viewport != 200 {
		t.Errorf("event content/viewport = %v/%v, want 300/200", got.Content, got.Viewport)
	}
}

func TestDestroyEventsBracketTeardown(t *testing.T) {
	in, _ := newTestMarquee(t, DefaultConfig(), Rect{Width: 200, Height: 60}, 0, 150, 150)

	var order []EventType
	in.On("marquee:destroy*", func(e Event) { order = append(order, e.Type) })
	in.Destroy()

	if len(order) != 2 || order[0] != EventDestroy || order[1] != EventDestroyComplete {
		t.Errorf("destroy events = %v, want [destroy destroy-complete]", order)
	}
}
