package core

import (
	"math"
	"testing"
)

func TestVec2Len(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected float64
	}{
		{"zero vector", Vec2{}, 0},
		{"unit x", Vec2{X: 1}, 1},
		{"3-4-5 triangle", Vec2{X: 3, Y: 4}, 5},
		{"negative components", Vec2{X: -3, Y: -4}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Len(); math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("Len() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestVec2Norm(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Norm()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Errorf("Normalized vector should have length 1, got %f", v.Len())
	}

	zero := Vec2{}.Norm()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("Normalizing the zero vector should stay zero, got %+v", zero)
	}
}

func TestVec2AddScale(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -1}).Scale(2)
	if v.X != 8 || v.Y != 2 {
		t.Errorf("Add+Scale = %+v, expected {8 2}", v)
	}
}

func TestDist(t *testing.T) {
	if d := Dist(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}); math.Abs(d-5) > 1e-12 {
		t.Errorf("Dist = %f, expected 5", d)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name                    string
		val, min, max, expected float64
	}{
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"inside range", 5, 0, 10, 5},
		{"at lower edge", 0, 0, 10, 0},
		{"at upper edge", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%f) = %f, expected %f", tc.val, got, tc.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %f, expected 5", got)
	}
	if got := Lerp(-10, 10, 0); got != -10 {
		t.Errorf("Lerp at t=0 should return a, got %f", got)
	}
	if got := Lerp(-10, 10, 1); got != 10 {
		t.Errorf("Lerp at t=1 should return b, got %f", got)
	}
}

func TestIntHelpers(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp misbehaves")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Error("Max misbehaves")
	}
}
