package hoverlens

// syntheticPointerEvent is a single injected pointer position in screen
// coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
}

// InjectMove queues a pointer position. Each queued position is consumed by
// one Update call, in order.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectSweep queues a straight pointer path from (fromX, fromY) to
// (toX, toY) that takes the given number of frames, both endpoints included.
// Minimum frames is 2.
func (in *Input) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		in.InjectMove(Lerp(fromX, toX, t), Lerp(fromY, toY, t))
	}
}

// Pending returns the number of queued injected events.
func (in *Input) Pending() int { return len(in.injectQueue) }

// SetScripted makes the last injected position persist instead of falling
// back to the real pointer when the queue is empty.
func (in *Input) SetScripted(scripted bool) { in.scripted = scripted }

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(evt.screenX, evt.screenY)
	return true
}
