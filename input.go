package hoverlens

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource reports the current pointer position in screen pixels.
type PointerSource interface {
	CursorPosition() (x, y float64)
}

// CursorSource reads the Ebitengine mouse cursor, falling back to the first
// active touch when one exists.
type CursorSource struct {
	touchBuf []ebiten.TouchID
}

// CursorPosition implements PointerSource.
func (c *CursorSource) CursorPosition() (float64, float64) {
	c.touchBuf = ebiten.AppendTouchIDs(c.touchBuf[:0])
	if len(c.touchBuf) > 0 {
		x, y := ebiten.TouchPosition(c.touchBuf[0])
		return float64(x), float64(y)
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// --- Per-pointer state ---

type pointerState struct {
	lastX, lastY float64
	inside       bool // pointer is within the menu container
	link         int  // link under the pointer, -1 for none
}

// Input samples the pointer once per frame, runs the hover state machine
// against the menu and forwards notifications to the animator:
// pointer move on any position change, hover enter/leave when the container
// boundary is crossed, and link enter once each time a new link is entered.
type Input struct {
	source PointerSource
	menu   *Menu
	anim   *Animator

	sink        EventSink
	state       pointerState
	injectQueue []syntheticPointerEvent
	// scripted ignores the real source so injected positions persist
	// between queued events.
	scripted bool
}

// NewInput wires a pointer source to the menu and animator. A nil source
// reads the Ebitengine cursor.
func NewInput(source PointerSource, menu *Menu, anim *Animator) *Input {
	if source == nil {
		source = &CursorSource{}
	}
	return &Input{
		source: source,
		menu:   menu,
		anim:   anim,
		state:  pointerState{link: -1},
	}
}

// SetEventSink mirrors every notification to sink. Nil disables it.
func (in *Input) SetEventSink(sink EventSink) { in.sink = sink }

// Update consumes one injected event if any are queued, otherwise samples
// the real pointer.
func (in *Input) Update() {
	if in.processInjectedInput() {
		return
	}
	if in.scripted {
		return
	}
	x, y := in.source.CursorPosition()
	in.processPointer(x, y)
}

// Hovered reports whether the pointer was inside the menu container at the
// last sample.
func (in *Input) Hovered() bool { return in.state.inside }

// HoveredLink returns the link under the pointer at the last sample, or -1.
func (in *Input) HoveredLink() int { return in.state.link }

// Position returns the last sampled pointer position.
func (in *Input) Position() (float64, float64) { return in.state.lastX, in.state.lastY }

// processPointer runs the state machine for one pointer sample.
func (in *Input) processPointer(x, y float64) {
	ps := &in.state

	if x != ps.lastX || y != ps.lastY {
		in.anim.OnPointerMove(x, y)
		ps.lastX = x
		ps.lastY = y
		in.emit(EventPointerMove, -1)
	}

	inside, link := in.menu.HitTest(x, y)

	if inside != ps.inside {
		if inside {
			in.anim.OnHoverEnter()
			in.emit(EventHoverEnter, -1)
		} else {
			in.anim.OnHoverLeave()
			in.emit(EventHoverLeave, -1)
		}
		ps.inside = inside
	}

	if link != ps.link {
		if link >= 0 && in.anim.OnLinkHoverEnter(link) {
			in.emit(EventLinkEnter, link)
		}
		ps.link = link
	}
}

func (in *Input) emit(typ EventType, link int) {
	if in.sink == nil {
		return
	}
	ev := HoverEvent{Type: typ, X: in.state.lastX, Y: in.state.lastY, Link: link}
	if img, ok := ImageFromIndex(link); ok {
		ev.Image = img
	}
	in.sink.EmitEvent(ev)
}

// resync re-runs hit testing at the last position without reporting
// movement, for use after the menu is laid out again.
func (in *Input) resync() {
	in.processPointer(in.state.lastX, in.state.lastY)
}
