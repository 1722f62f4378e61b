package texture

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

type recordingVisitor struct {
	visited []string
}

func (r *recordingVisitor) VisitConstantTexture(t *ConstantTexture) error {
	r.visited = append(r.visited, "ConstantTexture")
	return nil
}

func (r *recordingVisitor) VisitCheckerTexture(t *CheckerTexture) error {
	r.visited = append(r.visited, "CheckerTexture")
	return nil
}

func TestConstantTexture_Value(t *testing.T) {
	color := core.NewVec3(0.5, 0.1, 0.1)
	tex := NewConstantTexture(1, color)

	if got := tex.Value(core.NewVec2(0.3, 0.7), core.NewVec3(10, -4, 2)); got != color {
		t.Errorf("Expected %v, got %v", color, got)
	}
	if tex.ID() != 1 {
		t.Errorf("Expected id 1, got %d", tex.ID())
	}
}

func TestCheckerTexture_Value(t *testing.T) {
	odd := NewConstantTexture(1, core.NewVec3(0, 0, 0))
	even := NewConstantTexture(2, core.NewVec3(1, 1, 1))
	checker := NewCheckerTexture(3, odd, even, 1)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"all positive sines", core.NewVec3(1, 1, 1), even.Color},
		{"one negative sine", core.NewVec3(-1, 1, 1), odd.Color},
		{"two negative sines", core.NewVec3(-1, -1, 1), even.Color},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Value(core.Vec2{}, tt.point); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCheckerTexture_DefaultScale(t *testing.T) {
	checker := NewCheckerTexture(3, nil, nil, 0)
	if math.Abs(checker.Scale-DefaultCheckerScale) > 0 {
		t.Errorf("Expected default scale %f, got %f", DefaultCheckerScale, checker.Scale)
	}
}

func TestTexture_Accept(t *testing.T) {
	constant := NewConstantTexture(1, core.Vec3{})
	checker := NewCheckerTexture(2, constant, constant, 10)

	visitor := &recordingVisitor{}
	for _, tex := range []Texture{constant, checker} {
		if err := tex.Accept(visitor); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if len(visitor.visited) != 2 || visitor.visited[0] != "ConstantTexture" || visitor.visited[1] != "CheckerTexture" {
		t.Errorf("Unexpected dispatch order %v", visitor.visited)
	}
}
