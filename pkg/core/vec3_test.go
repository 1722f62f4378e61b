package core

import (
	"math"
	"testing"
)

func TestVec3_Operations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"divide vec", b.DivideVec(NewVec3(2, -5, 3)), NewVec3(2, 1, 2)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"min", a.Min(b), NewVec3(1, -5, 3)},
		{"max", a.Max(b), NewVec3(4, 2, 6)},
		{"normalize zero", Vec3{}.Normalize(), Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !v.ApproxEqual(NewVec3(0.6, 0.8, 0), 1e-12) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}
}

func TestVec3_Component(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if got := v.Component(axis); got != expected {
			t.Errorf("axis %d: expected %f, got %f", axis, expected, got)
		}
	}

	w := v.WithComponent(1, 7)
	if w != NewVec3(1, 7, 3) {
		t.Errorf("Expected (1, 7, 3), got %v", w)
	}
	if v != NewVec3(1, 2, 3) {
		t.Errorf("WithComponent modified the receiver: %v", v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 0, 0), NewVec3(0, 2, 0), 0.5)
	if p := ray.At(1.5); p != NewVec3(1, 3, 0) {
		t.Errorf("Expected (1, 3, 0), got %v", p)
	}

	moved := ray.WithOriginDirection(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	if moved.Time != 0.5 {
		t.Errorf("Expected time to be kept, got %f", moved.Time)
	}
}

func TestIDGenerator(t *testing.T) {
	ids := NewIDGenerator()

	first := ids.Next()
	second := ids.Next()
	if first != 1 || second != 2 {
		t.Errorf("Expected 1, 2, got %d, %d", first, second)
	}
	if first == NoID {
		t.Error("Generator handed out NoID")
	}
}
