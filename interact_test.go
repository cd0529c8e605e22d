package marquee

import "testing"

func TestHoverPauseAndResume(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PauseOnHover = true
	in, input := newTestMarquee(t, cfg, Rect{X: 10, Y: 10, Width: 200, Height: 60}, 0, 150, 150)

	var events []EventType
	in.On("marquee:hover-*", func(e Event) { events = append(events, e.Type) })

	// Pointer enters the viewport.
	input.x, input.y = 50, 30
	in.Step(0.016)
	if !in.IsPaused() {
		t.Fatal("expected hover pause")
	}

	// Pointer leaves.
	input.x, input.y = 500, 500
	in.Step(0.016)
	if in.State() != Running {
		t.Fatalf("state = %v, want running after hover out", in.State())
	}

	if len(events) != 2 || events[0] != EventHoverPause || events[1] != EventHoverResume {
		t.Errorf("hover events = %v", events)
	}
}

func TestClickToggleAndOutsideClick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PauseOnClick = true
	in, input := newTestMarquee(t, cfg, Rect{Width: 200, Height: 60}, 0, 150, 150)

	// Click inside pauses.
	input.x, input.y = 100, 30
	input.pressed = true
	in.Step(0.016)
	if !in.IsPaused() {
		t.Fatal("expected click pause")
	}

	// Click outside ends the click pause.
	outside := 0
	in.On(EventOutsideResume, func(Event) { outside++ })
	input.x, input.y = 900, 900
	input.pressed = true
	in.Step(0.016)
	if in.State() != Running {
		t.Fatalf("state = %v, want running after outside click", in.State())
	}
	if outside != 1 {
		t.Errorf("outside-resume events = %d, want 1", outside)
	}

	// Click inside toggles: pause, then resume.
	input.x, input.y = 100, 30
	input.pressed = true
	in.Step(0.016)
	if !in.IsPaused() {
		t.Fatal("expected second click pause")
	}
	input.pressed = true
	in.Step(0.016)
	if in.State() != Running {
		t.Fatal("expected click toggle to resume")
	}
}

func TestAdaptiveBindingFollowsHostWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AdaptivePause = true
	in, input := newTestMarquee(t, cfg, Rect{Width: 200, Height: 60}, 0, 150, 150)

	// Wide host: hover mode.
	in.NotifyResize(1024, 768)
	if !in.hoverMode {
		t.Fatal("expected hover mode on a wide host")
	}
	input.x, input.y = 100, 30
	in.Step(0.016)
	if !in.IsPaused() {
		t.Fatal("hover did not pause in hover mode")
	}
	input.x, input.y = -1, -1
	in.Step(0.016)

	// Narrow host: click mode. Hovering no longer pauses, clicking does.
	stepFor(in, 1, 0.1) // let the pending debounced refresh settle
	in.NotifyResize(480, 800)
	if in.hoverMode {
		t.Fatal("expected click mode on a narrow host")
	}
	input.x, input.y = 100, 30
	in.Step(0.016)
	if in.IsPaused() {
		t.Error("hover paused in click mode")
	}
	input.pressed = true
	in.Step(0.016)
	if !in.IsPaused() {
		t.Error("click did not pause in click mode")
	}
}

func TestAdaptiveFlipReleasesStrandedHold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AdaptivePause = true
	in, input := newTestMarquee(t, cfg, Rect{Width: 200, Height: 60}, 0, 150, 150)

	// Hover-pause on a wide host.
	in.NotifyResize(1024, 768)
	input.x, input.y = 100, 30
	in.Step(0.016)
	if !in.IsPaused() {
		t.Fatal("hover did not pause in hover mode")
	}

	// Crossing below the breakpoint deactivates hover mode; the hover hold
	// goes with it, otherwise the instance could never leave Paused.
	stepFor(in, 1, 0.1) // settle the debounced refresh
	in.NotifyResize(480, 800)
	if in.State() != Running {
		t.Fatalf("state = %v, want running after flip to click mode", in.State())
	}

	// Symmetric: click-pause on the narrow host, then flip back to wide.
	input.pressed = true
	in.Step(0.016)
	if !in.IsPaused() {
		t.Fatal("click did not pause in click mode")
	}
	stepFor(in, 1, 0.1)
	in.NotifyResize(1024, 768)
	if in.State() != Running {
		t.Fatalf("state = %v, want running after flip to hover mode", in.State())
	}
}

func TestReducedMotionPreference(t *testing.T) {
	in, _ := newTestMarquee(t, DefaultConfig(), Rect{Width: 200, Height: 60}, 0, 150, 150)

	var events []EventType
	in.On("marquee:reduced-motion-*", func(e Event) { events = append(events, e.Type) })

	in.SetReducedMotion(true)
	if !in.IsPaused() {
		t.Fatal("reduced motion did not pause")
	}
	// Setting the same preference again is a no-op.
	in.SetReducedMotion(true)

	in.SetReducedMotion(false)
	if in.State() != Running {
		t.Fatalf("state = %v, want running after preference cleared", in.State())
	}

	if len(events) != 2 || events[0] != EventReducedMotionOn || events[1] != EventReducedMotionOff {
		t.Errorf("reduced motion events = %v", events)
	}
}

func TestWindowVisibilityPause(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PauseOnInvisible = true
	in, input := newTestMarquee(t, cfg, Rect{Width: 200, Height: 60}, 0, 150, 150)

	hidden, shown := 0, 0
	in.On(EventWindowHidden, func(Event) { hidden++ })
	in.On(EventWindowShown, func(Event) { shown++ })

	input.minimized = true
	in.Step(0.016)
	if !in.IsPaused() {
		t.Fatal("expected pause on hidden window")
	}

	input.minimized = false
	in.Step(0.016)
	if in.State() != Running {
		t.Fatalf("state = %v, want running after window shown", in.State())
	}
	if hidden != 1 || shown != 1 {
		t.Errorf("hidden/shown events = %d/%d, want 1/1", hidden, shown)
	}
}

func TestHiddenWindowWithoutPauseOption(t *testing.T) {
	in, input := newTestMarquee(t, DefaultConfig(), Rect{Width: 200, Height: 60}, 0, 150, 150)

	input.focused = false
	in.Step(0.016)
	if in.State() != Running {
		t.Errorf("state = %v, want running (pauseOnInvisible off)", in.State())
	}
}

func TestViewportOffscreenPause(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PauseOnInvisible = true
	in, _ := newTestMarquee(t, cfg, Rect{X: 0, Y: 100, Width: 200, Height: 60}, 0, 150, 150)

	invisible, visible := 0, 0
	in.On(EventInvisible, func(Event) { invisible++ })
	in.On(EventVisible, func(Event) { visible++ })

	// Host shrinks above the viewport's Y: the strip scrolls out of view.
	in.NotifyResize(800, 50)
	in.Step(0.016)
	if !in.IsPaused() {
		t.Fatal("expected pause when viewport left the visible area")
	}

	stepFor(in, 1, 0.1) // settle the debounced refresh
	in.NotifyResize(800, 600)
	in.Step(0.016)
	if in.State() != Running {
		t.Fatalf("state = %v, want running after viewport returned", in.State())
	}
	if invisible != 1 || visible != 1 {
		t.Errorf("invisible/visible events = %d/%d, want 1/1", invisible, visible)
	}
}
