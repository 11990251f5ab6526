package hoverlens

import "sync"

const (
	// DefaultSmoothing is the fraction of the remaining distance the lens
	// closes each tick. Smaller values give more lag.
	DefaultSmoothing = 0.1
	// DefaultTiltScale converts lag in pixels into the shader's tilt offset.
	DefaultTiltScale = 0.0005

	// LinkOpacityIdle and LinkOpacityHover are the two link opacities.
	// They switch instantly and are independent of the smoothed lens alpha.
	LinkOpacityIdle  = 1.0
	LinkOpacityHover = 0.2
)

// Frame is the render state produced by one Animator tick.
type Frame struct {
	// Offset is the smoothed cursor position in screen pixels.
	Offset Vec2
	// Position is the lens centre in viewport-centred world space (Y up).
	Position Vec2
	// Tilt is the remaining lag scaled by TiltScale, Y flipped to world space.
	Tilt Vec2
	// Alpha is the smoothed lens fade in [0, 1].
	Alpha float64
	// LinkOpacity is LinkOpacityHover while hovered, otherwise LinkOpacityIdle.
	LinkOpacity float64
	// Texture is the active lens texture.
	Texture Image
	// Hovered mirrors the hover flag this frame was computed with.
	Hovered bool
}

type animatorEvent struct {
	typ  EventType
	x, y float64
	img  Image
	jump bool // move offset with the target
}

// Animator owns the lens follow state. Notifications may be posted from any
// goroutine; they are queued and applied at the start of the next Tick, so
// offset and alpha are only ever touched by the goroutine calling Tick.
type Animator struct {
	// Smoothing is the lerp factor used for both offset and alpha.
	Smoothing float64
	// TiltScale multiplies the offset lag to form the tilt vector.
	TiltScale float64

	mu    sync.Mutex
	inbox []animatorEvent

	target  Vec2
	offset  Vec2
	alpha   float64
	hovered bool
	active  Image
	frames  uint64
}

// NewAnimator creates an animator at the origin with default tunables and
// ImageA active.
func NewAnimator() *Animator {
	return &Animator{
		Smoothing: DefaultSmoothing,
		TiltScale: DefaultTiltScale,
		inbox:     make([]animatorEvent, 0, 16),
	}
}

func (a *Animator) post(ev animatorEvent) {
	a.mu.Lock()
	a.inbox = append(a.inbox, ev)
	a.mu.Unlock()
}

// OnPointerMove records the latest raw pointer position as the follow target.
// Any value is accepted.
func (a *Animator) OnPointerMove(x, y float64) {
	a.post(animatorEvent{typ: EventPointerMove, x: x, y: y})
}

// OnHoverEnter sets the hover flag on the next tick.
func (a *Animator) OnHoverEnter() {
	a.post(animatorEvent{typ: EventHoverEnter})
}

// OnHoverLeave clears the hover flag on the next tick.
func (a *Animator) OnHoverLeave() {
	a.post(animatorEvent{typ: EventHoverLeave})
}

// OnLinkHoverEnter selects the texture for link index. It returns false and
// queues nothing when index is outside [0, 3].
func (a *Animator) OnLinkHoverEnter(index int) bool {
	img, ok := ImageFromIndex(index)
	if !ok {
		return false
	}
	a.Select(img)
	return true
}

// Select queues img as the active texture. Invalid values are ignored.
func (a *Animator) Select(img Image) {
	if !img.Valid() {
		return
	}
	a.post(animatorEvent{typ: EventLinkEnter, img: img})
}

// JumpTo moves both offset and target to (x, y) on the next tick, with no
// smoothing. It is queued in order with the other notifications.
func (a *Animator) JumpTo(x, y float64) {
	a.post(animatorEvent{typ: EventPointerMove, x: x, y: y, jump: true})
}

// drain applies queued notifications in arrival order.
func (a *Animator) drain() {
	a.mu.Lock()
	for _, ev := range a.inbox {
		switch ev.typ {
		case EventPointerMove:
			a.target = Vec2{ev.x, ev.y}
			if ev.jump {
				a.offset = a.target
			}
		case EventHoverEnter:
			a.hovered = true
		case EventHoverLeave:
			a.hovered = false
		case EventLinkEnter:
			a.active = ev.img
		}
	}
	a.inbox = a.inbox[:0]
	a.mu.Unlock()
}

// Tick advances the follow state by one frame for a viewport of the given
// size in pixels and returns the values to render.
func (a *Animator) Tick(viewportW, viewportH float64) Frame {
	a.drain()
	a.frames++

	k := a.Smoothing
	a.offset = LerpVec(a.offset, a.target, k)

	tilt := Vec2{
		X: (a.target.X - a.offset.X) * a.TiltScale,
		Y: -(a.target.Y - a.offset.Y) * a.TiltScale,
	}

	goal := 0.0
	if a.hovered {
		goal = 1.0
	}
	a.alpha = Lerp(a.alpha, goal, k)

	opacity := LinkOpacityIdle
	if a.hovered {
		opacity = LinkOpacityHover
	}

	return Frame{
		Offset: a.offset,
		Position: Vec2{
			X: a.offset.X - viewportW/2,
			Y: -a.offset.Y + viewportH/2,
		},
		Tilt:        tilt,
		Alpha:       a.alpha,
		LinkOpacity: opacity,
		Texture:     a.active,
		Hovered:     a.hovered,
	}
}

// Target returns the follow target as of the last tick.
func (a *Animator) Target() Vec2 { return a.target }

// Offset returns the smoothed position as of the last tick.
func (a *Animator) Offset() Vec2 { return a.offset }

// Alpha returns the lens fade as of the last tick.
func (a *Animator) Alpha() float64 { return a.alpha }

// Hovered reports the hover flag as of the last tick.
func (a *Animator) Hovered() bool { return a.hovered }

// Active returns the active texture as of the last tick.
func (a *Animator) Active() Image { return a.active }

// Frames returns the number of ticks run so far.
func (a *Animator) Frames() uint64 { return a.frames }
