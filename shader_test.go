package hoverlens

import "testing"

func TestLensUniformsDefaults(t *testing.T) {
	u := NewLensUniforms()
	if u.Alpha() != 0 {
		t.Errorf("Alpha = %v, want 0", u.Alpha())
	}
	if u.Offset() != [2]float32{} {
		t.Errorf("Offset = %v, want zero", u.Offset())
	}
}

func TestLensUniformsSet(t *testing.T) {
	u := NewLensUniforms()
	u.Set(Frame{Alpha: 0.5, Tilt: Vec2{X: 0.01, Y: -0.02}})
	if u.Alpha() != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", u.Alpha())
	}
	if got := u.Offset(); got != [2]float32{0.01, -0.02} {
		t.Errorf("Offset = %v, want [0.01 -0.02]", got)
	}

	// The uniform map shares the offset array, so a later Set is visible
	// without rebuilding the map.
	u.Set(Frame{Alpha: 1, Tilt: Vec2{X: 0.03}})
	off, ok := u.uniforms["Offset"].([]float32)
	if !ok {
		t.Fatalf("Offset uniform is %T, want []float32", u.uniforms["Offset"])
	}
	if off[0] != 0.03 || off[1] != 0 {
		t.Errorf("Offset uniform = %v, want [0.03 0]", off)
	}
}

func TestLensUniformsDrawNilTexture(t *testing.T) {
	u := NewLensUniforms()
	// No texture means nothing to draw; this must not touch the GPU.
	u.Draw(nil, nil, nil, nil)
}
