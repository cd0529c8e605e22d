package marquee

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background, when non-nil, is called before the group draws. Use it to
	// clear or decorate the screen.
	Background func(screen *ebiten.Image)
}

// game adapts a Group to ebiten.Game. Layout changes are fed through each
// instance's resize guard, so window resizes debounce into rebuilds the same
// way container resizes do.
type game struct {
	group      *Group
	background func(screen *ebiten.Image)
	lastW      int
	lastH      int
}

func (g *game) Update() error {
	g.group.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.background != nil {
		g.background(screen)
	}
	g.group.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.lastW, g.lastH = outsideWidth, outsideHeight
		g.group.NotifyResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run creates a resizable window and drives the group until the window
// closes. For full control, implement ebiten.Game yourself and call
// Group.Step, Group.Draw, and Group.NotifyResize directly.
func Run(group *Group, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{group: group, background: cfg.Background})
}
