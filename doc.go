// Package marquee is a continuous-loop scrolling engine for [Ebitengine].
//
// A marquee renders a strip of items that scrolls seamlessly inside a bounded
// viewport: the content is measured, cloned enough times to cover the
// viewport with no visible gap, and translated each frame, wrapping exactly
// one loop period at a time so the repeat is imperceptible.
//
// # Quick start
//
// Bind a viewport to a synchronization group and let [Run] drive it:
//
//	group := marquee.NewGroup()
//	vp := marquee.NewViewport(marquee.Rect{X: 0, Y: 40, Width: 800, Height: 80}, 16,
//		marquee.NewItem(logoA), marquee.NewItem(logoB), marquee.NewItem(logoC))
//	_, err := marquee.Bind(group, vp, marquee.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	marquee.Run(group, marquee.RunConfig{Title: "marquee", Width: 800, Height: 200})
//
// For full control, implement [ebiten.Game] yourself and call [Group.Step]
// from Update, [Group.Draw] from Draw, and [Group.NotifyResize] when the
// layout changes.
//
// # Measurement and cloning
//
// On every refresh the engine re-measures the original items, decides whether
// the content overflows the viewport, and rebuilds the loop set from scratch:
// clones are always discarded and recreated, never mutated in place. Content
// that fits stays static; [Config.ForceAnimation] synthesizes extra repeats
// to animate it anyway.
//
// # Resize feedback
//
// Host size notifications pass through a multi-layer guard (in-progress
// serialization, rate limiting, a hard-stop ceiling, a realness check, and
// debouncing) so the engine's own layout mutations can never re-trigger
// measurement in a tight cycle. Feed notifications to
// [Instance.NotifyResize]; the debounced rebuild fires from a later
// [Instance.Step].
//
// # Pausing and synchronization
//
// Pointer hover, clicks, window visibility, the reduced-motion preference,
// and explicit [Instance.Pause] calls all hold the instance paused
// independently; motion resumes when the last hold is released, and resuming
// always re-measures first. Instances bound to the same [Group] with
// [Config.SyncPause] pause together.
//
// [Ebitengine]: https://ebitengine.org
package marquee
