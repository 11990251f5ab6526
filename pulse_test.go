package hoverlens

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestPulseIdle(t *testing.T) {
	p := NewPulse(0.35, 0.06)
	if p.Scale() != 1 {
		t.Errorf("Scale before Update = %v, want 1", p.Scale())
	}
	for i := 0; i < 10; i++ {
		if s := p.Update(ImageA, 1.0/60); s != 1 {
			t.Fatalf("frame %d: scale = %v, want 1 without a texture change", i, s)
		}
	}
	if p.Active() {
		t.Error("Active without a texture change")
	}
}

func TestPulseOnTextureChange(t *testing.T) {
	p := NewPulse(0.35, 0.06)
	p.Update(ImageA, 1.0/60)

	s := p.Update(ImageB, 0.01)
	if !p.Active() {
		t.Fatal("no pulse after texture change")
	}
	if s >= 1 || s < 0.94 {
		t.Errorf("scale right after change = %v, want in [0.94, 1)", s)
	}

	var total float32
	for p.Active() && total < 1 {
		p.Update(ImageB, 0.05)
		total += 0.05
	}
	if p.Active() {
		t.Fatal("pulse did not finish")
	}
	if p.Scale() != 1 {
		t.Errorf("Scale after pulse = %v, want 1", p.Scale())
	}
}

func TestPulseLinearEase(t *testing.T) {
	p := NewPulse(1, 0.5)
	p.Ease = ease.Linear
	p.Update(ImageA, 0)

	if s := p.Update(ImageC, 0.5); !approxEqual(s, 0.75, 1e-6) {
		t.Errorf("halfway scale = %v, want 0.75", s)
	}
}

func TestPulseDisabled(t *testing.T) {
	tests := []struct {
		name     string
		duration float32
		depth    float64
	}{
		{"zero duration", 0, 0.06},
		{"zero depth", 0.35, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPulse(tt.duration, tt.depth)
			p.Update(ImageA, 1.0/60)
			if s := p.Update(ImageD, 1.0/60); s != 1 {
				t.Errorf("scale = %v, want 1", s)
			}
			if p.Active() {
				t.Error("Active while disabled")
			}
		})
	}
}
