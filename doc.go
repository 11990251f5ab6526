// Package hoverlens renders a cursor-following image lens for [Ebitengine].
//
// A textured plane trails the pointer with inertia, bends and splits its red
// channel in the direction it is lagging, and fades in while the pointer is
// over a four-link menu. Entering a link swaps the lens texture; while the
// menu is hovered every link drops to 0.2 opacity.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := hoverlens.DefaultConfig()
//	if err := hoverlens.Run(ctx, cfg, hoverlens.Options{}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, build an [Effect] with [NewEffect] and pass it to
// ebiten.RunGame yourself; it implements [ebiten.Game].
//
// # Follow loop
//
// [Animator] owns the follow state. Pointer, hover and link notifications
// may be posted from any goroutine and are applied at the start of the next
// [Animator.Tick], which returns a [Frame]:
//
//	offset = Lerp(offset, target, k)
//	tilt   = ((target.X-offset.X)*c, -(target.Y-offset.Y)*c)
//	alpha  = Lerp(alpha, hovered ? 1 : 0, k)
//
// with k = [DefaultSmoothing] and c = [DefaultTiltScale]. Link opacity is
// not smoothed: it is [LinkOpacityHover] or [LinkOpacityIdle].
//
// # Configuration
//
// [LoadConfig] reads YAML over [DefaultConfig]. [WatchConfig] reloads the
// file on change; the effect applies smoothing, tilt, pulse, colors and menu
// spacing live.
//
// [Ebitengine]: https://ebitengine.org
package hoverlens
