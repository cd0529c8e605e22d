package marquee

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the loop set at the current translation, clipped to the
// viewport bounds. The translation is applied as a single-axis offset; the
// cross-axis position is the viewport's cross origin. Imageless items are
// skipped, so headless instances draw nothing without error.
func (in *Instance) Draw(screen *ebiten.Image) {
	if in.destroyed || len(in.set.Elements) == 0 {
		return
	}

	b := in.viewport.Bounds
	clip := screen.SubImage(image.Rect(
		int(b.X), int(b.Y), int(b.X+b.Width), int(b.Y+b.Height),
	)).(*ebiten.Image)

	extent := in.viewportExtent()
	alongOrigin := in.axis.Extent(b.X, b.Y)
	crossOrigin := in.axis.Cross(b.X, b.Y)
	fade := in.fadeActive()

	for i := range in.set.Elements {
		el := &in.set.Elements[i]
		if el.Item.Image == nil {
			continue
		}
		size := el.Item.Extent(in.axis)
		along := in.translation + el.Offset
		if along+size < 0 || along > extent {
			continue
		}

		var op ebiten.DrawImageOptions
		x, y := in.axis.Point(alongOrigin+along, crossOrigin)
		op.GeoM.Translate(x, y)
		if fade {
			op.ColorScale.ScaleAlpha(float32(in.fadeAlpha(along+size/2, extent)))
		}
		clip.DrawImage(el.Item.Image, &op)
	}
}

// fadeActive reports whether edge fading applies at the current host width.
func (in *Instance) fadeActive() bool {
	if !in.cfg.FadeEdges || in.cfg.FadeExtent <= 0 {
		return false
	}
	if in.cfg.FadeBreakpoint > 0 {
		width := in.visibleW
		if width == 0 {
			width = in.viewport.Bounds.Width
		}
		return width >= in.cfg.FadeBreakpoint
	}
	return true
}

// fadeAlpha returns the alpha for an element whose center sits at the given
// position along the viewport, ramping linearly from 0 at either edge to 1
// past the fade band.
func (in *Instance) fadeAlpha(center, extent float64) float64 {
	band := in.cfg.FadeExtent
	a := center / band
	if tail := (extent - center) / band; tail < a {
		a = tail
	}
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
