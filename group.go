package marquee

import "github.com/hajimehoshi/ebiten/v2"

// Group is an explicit synchronization group: the set of instances that
// coordinate pause broadcasts. Instances join on bind and leave on destroy;
// the group holds back-references only and never drives lifecycle itself.
//
// A Group is also a convenient stepping unit for hosts running several
// strips: Step, Draw, and NotifyResize fan out to every member.
type Group struct {
	instances []*Instance
}

// NewGroup creates an empty synchronization group.
func NewGroup() *Group {
	return &Group{}
}

// Instances returns the current members in join order.
func (g *Group) Instances() []*Instance {
	return g.instances
}

// Step advances every member by dt seconds.
func (g *Group) Step(dt float64) {
	for _, in := range g.instances {
		in.Step(dt)
	}
}

// Draw renders every member onto screen.
func (g *Group) Draw(screen *ebiten.Image) {
	for _, in := range g.instances {
		in.Draw(screen)
	}
}

// NotifyResize feeds a host size change to every member's guard.
func (g *Group) NotifyResize(visibleW, visibleH float64) {
	for _, in := range g.instances {
		in.NotifyResize(visibleW, visibleH)
	}
}

// SetReducedMotion applies the reduced-motion preference to every member.
func (g *Group) SetReducedMotion(on bool) {
	for _, in := range g.instances {
		in.SetReducedMotion(on)
	}
}

func (g *Group) join(in *Instance) {
	g.instances = append(g.instances, in)
}

func (g *Group) leave(in *Instance) {
	for i, member := range g.instances {
		if member == in {
			g.instances = append(g.instances[:i], g.instances[i+1:]...)
			return
		}
	}
}

// broadcastPause marks every member except from as paused. This is a
// broadcast, not a negotiated consensus: peers are flagged without running
// their measurement or resume logic.
func (g *Group) broadcastPause(from *Instance) {
	for _, in := range g.instances {
		if in != from {
			in.holdPause(pauseSync)
		}
	}
}

// resumePeers releases the synchronized pause on every paused member except
// from. Each peer re-measures independently and resumes only if its own
// measurement says it should animate; resume is never forced.
func (g *Group) resumePeers(from *Instance) {
	for _, in := range g.instances {
		if in != from && in.pausedBy&pauseSync != 0 {
			in.releasePause(pauseSync)
		}
	}
}
