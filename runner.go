package marquee

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a driver script.
type scriptStep struct {
	Action string  `json:"action"`
	Frames int     `json:"frames,omitempty"`
	DT     float64 `json:"dt,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type driverScript struct {
	Steps []scriptStep `json:"steps"`
}

// Driver sequences scripted operations against a group of instances with a
// fixed, deterministic timeline. It exists for automated tests and demos:
// the same script produces the same translations on every run.
//
// Supported actions: "frames" (step frames × dt, default dt 1/60), "pause",
// "resume", "stop", "start", "refresh", "resize" (width/height fed to
// NotifyResize).
type Driver struct {
	steps  []scriptStep
	cursor int
}

// LoadScript parses a JSON driver script.
func LoadScript(data []byte) (*Driver, error) {
	var script driverScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("marquee: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("marquee: parse script: no steps")
	}
	return &Driver{steps: script.Steps}, nil
}

// Run executes the whole script against the group.
func (d *Driver) Run(g *Group) error {
	for d.cursor < len(d.steps) {
		if err := d.step(g); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) step(g *Group) error {
	s := d.steps[d.cursor]
	d.cursor++

	switch s.Action {
	case "frames":
		frames := s.Frames
		if frames <= 0 {
			frames = 1
		}
		dt := s.DT
		if dt <= 0 {
			dt = 1.0 / 60.0
		}
		for i := 0; i < frames; i++ {
			g.Step(dt)
		}
	case "pause":
		for _, in := range g.Instances() {
			in.Pause()
		}
	case "resume":
		for _, in := range g.Instances() {
			in.Resume()
		}
	case "stop":
		for _, in := range g.Instances() {
			in.Stop()
		}
	case "start":
		for _, in := range g.Instances() {
			in.Start()
		}
	case "refresh":
		for _, in := range g.Instances() {
			in.Refresh()
		}
	case "resize":
		g.NotifyResize(s.Width, s.Height)
	default:
		return fmt.Errorf("marquee: unknown script action %q", s.Action)
	}
	return nil
}
