package marquee

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Speed != 50 {
		t.Errorf("speed = %v, want 50", cfg.Speed)
	}
	if cfg.Gap != GapAuthored {
		t.Errorf("gap = %v, want authored", cfg.Gap)
	}
	if cfg.RepeatCount != 3 {
		t.Errorf("repeat count = %d, want 3", cfg.RepeatCount)
	}
	if cfg.ForceAnimationWidth != 2 {
		t.Errorf("force animation width = %v, want 2", cfg.ForceAnimationWidth)
	}
	if cfg.AdaptiveBreakpoint != 768 {
		t.Errorf("adaptive breakpoint = %v, want 768", cfg.AdaptiveBreakpoint)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadConfigProfile(t *testing.T) {
	profile := `
speed = 120.0
gap = 24.0
reverse = true
shift = "viewport"
sync_pause = true
repeat_count = 5
vertical = true
height = 400.0
`
	cfg, err := LoadConfig(strings.NewReader(profile))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Speed != 120 || cfg.Gap != 24 || !cfg.Reverse || !cfg.SyncPause {
		t.Errorf("loaded values wrong: %+v", cfg)
	}
	if cfg.ShiftMode != ShiftViewport {
		t.Errorf("shift mode = %v, want viewport", cfg.ShiftMode)
	}
	if cfg.RepeatCount != 5 {
		t.Errorf("repeat count = %d, want 5", cfg.RepeatCount)
	}
	if cfg.axis() != Vertical || cfg.Height != 400 {
		t.Errorf("vertical/height = %v/%v", cfg.axis(), cfg.Height)
	}

	// Unspecified options keep their defaults.
	if cfg.ForceAnimationWidth != 2 {
		t.Errorf("unset option lost its default: %v", cfg.ForceAnimationWidth)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := []string{
		`speed = -1.0`,
		`repeat_count = 0`,
		`force_animation_width = 0.0`,
		`shift = "sideways"`,
		`speed = "fast"`,
	}
	for _, profile := range cases {
		if _, err := LoadConfig(strings.NewReader(profile)); err == nil {
			t.Errorf("profile %q loaded without error", profile)
		}
	}
}

func TestShiftModeRoundTrip(t *testing.T) {
	for _, mode := range []ShiftMode{ShiftNone, ShiftViewport, ShiftUnits} {
		text, err := mode.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", mode, err)
		}
		var back ShiftMode
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if back != mode {
			t.Errorf("round trip %v -> %q -> %v", mode, text, back)
		}
	}
}

func TestResolveGap(t *testing.T) {
	v := NewViewport(Rect{Width: 100, Height: 40}, 16)

	cfg := DefaultConfig()
	if got := cfg.resolveGap(v); got != 16 {
		t.Errorf("authored gap = %v, want 16", got)
	}
	cfg.Gap = 4
	if got := cfg.resolveGap(v); got != 4 {
		t.Errorf("override gap = %v, want 4", got)
	}
	cfg.Gap = 0
	if got := cfg.resolveGap(v); got != 0 {
		t.Errorf("zero gap = %v, want 0 (explicit, not authored)", got)
	}
}

func TestBindRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = -5
	_, err := Bind(NewGroup(), NewViewport(Rect{Width: 100, Height: 40}, 0), cfg)
	if err == nil {
		t.Error("Bind accepted an invalid configuration")
	}
}
