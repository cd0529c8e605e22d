package marquee

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputReader supplies the interaction and visibility signals the controller
// polls each frame. The default implementation reads ebiten directly; tests
// substitute a synthetic reader via Instance.SetInputReader.
type InputReader interface {
	// Cursor returns the pointer position in screen coordinates.
	Cursor() (x, y float64)
	// JustPressed reports whether the primary button was pressed this frame.
	JustPressed() bool
	// Focused reports whether the host window has input focus.
	Focused() bool
	// Minimized reports whether the host window is minimized.
	Minimized() bool
}

// hostInput reads interaction state from ebiten.
type hostInput struct{}

func (hostInput) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (hostInput) JustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (hostInput) Focused() bool   { return ebiten.IsFocused() }
func (hostInput) Minimized() bool { return ebiten.IsWindowMinimized() }

// evalAdaptive picks the interaction mode for the current host width:
// hover-pause on wide hosts, click-pause (with click-outside ending the
// pause) on narrow ones. Re-run on every accepted size change. Flipping
// modes releases the hold of the mode being switched away from; its
// release sites are unreachable once the mode is inactive.
func (in *Instance) evalAdaptive() {
	if !in.cfg.AdaptivePause {
		in.hoverMode = in.cfg.PauseOnHover
		return
	}
	width := in.visibleW
	if width == 0 {
		width = in.viewport.Bounds.Width
	}
	hover := width >= in.cfg.AdaptiveBreakpoint
	if hover == in.hoverMode {
		return
	}
	in.hoverMode = hover
	if hover && in.pausedBy&pauseClick != 0 {
		in.emit(EventClickResume)
		in.releasePause(pauseClick)
	}
	if !hover && in.pausedBy&pauseHover != 0 {
		in.emit(EventHoverResume)
		in.releasePause(pauseHover)
	}
}

// pollInteraction samples visibility and pointer state once per frame and
// turns transitions into pause/resume calls. All signals go through the
// pause-source bookkeeping, so overlapping sources never fight each other.
func (in *Instance) pollInteraction() {
	in.pollVisibility()

	hoverEnabled := in.cfg.PauseOnHover || (in.cfg.AdaptivePause && in.hoverMode)
	clickEnabled := in.cfg.PauseOnClick || (in.cfg.AdaptivePause && !in.hoverMode)
	if !hoverEnabled && !clickEnabled {
		return
	}

	cx, cy := in.input.Cursor()
	inside := in.viewport.Bounds.Contains(cx, cy)

	if hoverEnabled {
		if inside && !in.wasInside {
			in.holdPause(pauseHover)
			in.emit(EventHoverPause)
		}
		if !inside && in.wasInside && in.pausedBy&pauseHover != 0 {
			in.emit(EventHoverResume)
			in.releasePause(pauseHover)
		}
	}

	if clickEnabled && in.input.JustPressed() {
		switch {
		case inside && in.pausedBy&pauseClick == 0:
			in.holdPause(pauseClick)
			in.emit(EventClickPause)
		case inside:
			in.emit(EventClickResume)
			in.releasePause(pauseClick)
		case in.pausedBy&pauseClick != 0:
			// Click outside ends a click-initiated pause.
			in.emit(EventOutsideResume)
			in.releasePause(pauseClick)
		}
	}

	in.wasInside = inside
}

// pollVisibility tracks window focus/minimize and viewport-on-screen
// transitions. Becoming hidden pauses only when PauseOnInvisible is set;
// becoming visible always attempts a resume.
func (in *Instance) pollVisibility() {
	shown := in.input.Focused() && !in.input.Minimized()
	if shown != in.windowShown {
		in.windowShown = shown
		if shown {
			in.emit(EventWindowShown)
			in.releasePause(pauseHidden)
		} else {
			in.emit(EventWindowHidden)
			if in.cfg.PauseOnInvisible {
				in.holdPause(pauseHidden)
			}
		}
	}

	onScreen := true
	if in.visibleW > 0 && in.visibleH > 0 {
		onScreen = in.viewport.Bounds.Intersects(Rect{Width: in.visibleW, Height: in.visibleH})
	}
	if onScreen != in.viewVisible {
		in.viewVisible = onScreen
		if onScreen {
			in.emit(EventVisible)
			in.releasePause(pauseOffscreen)
		} else {
			in.emit(EventInvisible)
			if in.cfg.PauseOnInvisible {
				in.holdPause(pauseOffscreen)
			}
		}
	}
}
