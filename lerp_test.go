package hoverlens

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestLerpEndpoints(t *testing.T) {
	pairs := [][2]float64{
		{0, 0}, {0, 1}, {-5, 5}, {100, 0}, {1e9, -1e9}, {0.3, 0.7}, {-42.5, 17.25},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if got := Lerp(a, b, 0); got != a {
			t.Errorf("Lerp(%v, %v, 0) = %v, want %v", a, b, got, a)
		}
		if got := Lerp(a, b, 1); got != b {
			t.Errorf("Lerp(%v, %v, 1) = %v, want %v", a, b, got, b)
		}
	}
}

func TestLerpMidpoint(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"half", 0, 10, 0.5, 5},
		{"tenth", 100, 0, 0.1, 90},
		{"negative", -10, 10, 0.25, -5},
		{"same", 7, 7, 0.3, 7},
		{"extrapolate", 0, 10, 2, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); !approxEqual(got, tt.want, epsilon) {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestLerpVec(t *testing.T) {
	got := LerpVec(Vec2{0, 100}, Vec2{10, 0}, 0.5)
	if !approxEqual(got.X, 5, epsilon) || !approxEqual(got.Y, 50, epsilon) {
		t.Errorf("LerpVec = %v, want {5 50}", got)
	}
}
