package marquee

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// GapAuthored, as Config.Gap, selects the viewport's authored inter-item
// spacing instead of overriding it.
const GapAuthored = -1

// ShiftMode selects how the initial translation offset is derived.
type ShiftMode uint8

const (
	// ShiftNone starts the strip flush with the viewport origin.
	ShiftNone ShiftMode = iota
	// ShiftViewport shifts by one full viewport extent.
	ShiftViewport
	// ShiftUnits shifts by Config.ShiftUnits.
	ShiftUnits
)

var shiftNames = map[ShiftMode]string{
	ShiftNone:     "none",
	ShiftViewport: "viewport",
	ShiftUnits:    "units",
}

// String returns the TOML spelling of the mode.
func (s ShiftMode) String() string { return shiftNames[s] }

// MarshalText implements encoding.TextMarshaler for TOML profiles.
func (s ShiftMode) MarshalText() ([]byte, error) {
	name, ok := shiftNames[s]
	if !ok {
		return nil, fmt.Errorf("marquee: unknown shift mode %d", s)
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML profiles.
func (s *ShiftMode) UnmarshalText(text []byte) error {
	for mode, name := range shiftNames {
		if name == string(text) {
			*s = mode
			return nil
		}
	}
	return fmt.Errorf("marquee: unknown shift mode %q", text)
}

// Config holds every recognized option. The zero value is not usable; start
// from DefaultConfig (or LoadConfig) and override fields.
type Config struct {
	// Speed is the scroll speed in units per second.
	Speed float64 `toml:"speed"`

	// Gap overrides the inter-item spacing. GapAuthored (-1) keeps the
	// viewport's authored gap.
	Gap float64 `toml:"gap"`

	// PauseOnHover pauses while the pointer is inside the viewport.
	PauseOnHover bool `toml:"pause_on_hover"`

	// PauseOnClick toggles pause on click inside the viewport; a click
	// outside ends a click-initiated pause.
	PauseOnClick bool `toml:"pause_on_click"`

	// AdaptivePause selects hover-pause on wide hosts and click-pause on
	// narrow ones, re-evaluated on every accepted size change.
	AdaptivePause bool `toml:"adaptive_pause"`

	// AdaptiveBreakpoint is the host width at or above which AdaptivePause
	// picks hover over click.
	AdaptiveBreakpoint float64 `toml:"adaptive_breakpoint"`

	// Reverse scrolls toward the start of the strip.
	Reverse bool `toml:"reverse"`

	// ShiftMode and ShiftUnits set the initial translation offset.
	ShiftMode  ShiftMode `toml:"shift"`
	ShiftUnits float64   `toml:"shift_units"`

	// PauseOnInvisible pauses when the viewport leaves the visible area or
	// the window is hidden. Becoming visible always attempts a resume.
	PauseOnInvisible bool `toml:"pause_on_invisible"`

	// SyncPause broadcasts pauses to every other instance in the group.
	SyncPause bool `toml:"sync_pause"`

	// RepeatCount is the minimum number of appended clone sets.
	RepeatCount int `toml:"repeat_count"`

	// ForceAnimation animates even when content fits the viewport, by
	// synthesizing enough repeats to cover ForceAnimationWidth times the
	// host's visible extent.
	ForceAnimation      bool    `toml:"force_animation"`
	ForceAnimationWidth float64 `toml:"force_animation_width"`

	// FadeEdges fades the strip out near the viewport edges. When
	// FadeBreakpoint is non-zero, fading only applies while the host width
	// is at or above it. FadeExtent is the fade band length.
	FadeEdges      bool    `toml:"fade_edges"`
	FadeBreakpoint float64 `toml:"fade_breakpoint"`
	FadeExtent     float64 `toml:"fade_extent"`

	// FullWidth and FullHeight stretch the viewport bounds to the host's
	// visible extent on each accepted size change.
	FullWidth  bool `toml:"full_width"`
	FullHeight bool `toml:"full_height"`

	// Vertical scrolls along Y. Height, when non-zero, overrides the
	// viewport's scroll extent in vertical mode: the bound viewport's
	// Bounds.Height is set to it at bind time.
	Vertical bool    `toml:"vertical"`
	Height   float64 `toml:"height"`

	// RampDuration, when non-zero, eases the speed from zero back to Speed
	// over this many seconds after each resume.
	RampDuration float64 `toml:"ramp_duration"`

	// Develop enables verbose diagnostic logging. Logger, when set, receives
	// it; otherwise a development logger is created.
	Develop bool        `toml:"develop"`
	Logger  *zap.Logger `toml:"-"`

	// OnEvent, when set, is attached as a wildcard listener before the
	// instance initializes, so lifecycle events from the bind itself are
	// observable.
	OnEvent func(Event) `toml:"-"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Speed:               50,
		Gap:                 GapAuthored,
		AdaptiveBreakpoint:  768,
		RepeatCount:         3,
		ForceAnimationWidth: 2,
		FadeExtent:          48,
	}
}

// LoadConfig reads a TOML profile over DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("marquee: load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Speed < 0:
		return fmt.Errorf("marquee: speed must be >= 0, got %v", c.Speed)
	case c.RepeatCount < 1:
		return fmt.Errorf("marquee: repeat count must be >= 1, got %d", c.RepeatCount)
	case c.ForceAnimationWidth <= 0:
		return fmt.Errorf("marquee: force animation width must be > 0, got %v", c.ForceAnimationWidth)
	case c.Gap < 0 && c.Gap != GapAuthored:
		return fmt.Errorf("marquee: gap must be >= 0 or GapAuthored, got %v", c.Gap)
	case c.RampDuration < 0:
		return fmt.Errorf("marquee: ramp duration must be >= 0, got %v", c.RampDuration)
	}
	return nil
}

// axis returns the configured scroll axis.
func (c *Config) axis() Axis {
	if c.Vertical {
		return Vertical
	}
	return Horizontal
}

// resolveGap returns the effective inter-item spacing for a viewport.
func (c *Config) resolveGap(v *Viewport) float64 {
	if c.Gap == GapAuthored {
		return v.Gap
	}
	return c.Gap
}
