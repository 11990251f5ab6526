package hoverlens

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse briefly shrinks the lens and springs it back whenever the active
// texture changes. A zero Duration or Depth disables it; Scale then stays 1.
//
// There is no global animation manager; the effect calls Update each frame.
type Pulse struct {
	// Duration is the spring-back time in seconds.
	Duration float32
	// Depth is how far the scale dips, e.g. 0.06 starts at 0.94.
	Depth float64
	// Ease shapes the spring-back. Defaults to ease.OutBack.
	Ease ease.TweenFunc

	tween *gween.Tween
	scale float64
	last  Image
	init  bool
}

// NewPulse creates a pulse with the given duration and depth.
func NewPulse(duration float32, depth float64) *Pulse {
	return &Pulse{Duration: duration, Depth: depth, Ease: ease.OutBack, scale: 1}
}

// Update restarts the tween when img differs from the previous call's image,
// advances it by dt seconds and returns the current scale factor.
func (p *Pulse) Update(img Image, dt float32) float64 {
	if !p.init {
		p.init = true
		p.last = img
	}
	if img != p.last {
		p.last = img
		if p.Duration > 0 && p.Depth != 0 {
			fn := p.Ease
			if fn == nil {
				fn = ease.OutBack
			}
			p.tween = gween.New(float32(1-p.Depth), 1, p.Duration, fn)
		}
	}
	if p.tween == nil {
		p.scale = 1
		return p.scale
	}
	val, done := p.tween.Update(dt)
	p.scale = float64(val)
	if done {
		p.tween = nil
		p.scale = 1
	}
	return p.scale
}

// Active reports whether a pulse is in progress.
func (p *Pulse) Active() bool { return p.tween != nil }

// Scale returns the scale from the last Update.
func (p *Pulse) Scale() float64 {
	if !p.init {
		return 1
	}
	return p.scale
}
