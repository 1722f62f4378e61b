package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := texture.NewConstantTexture(1, core.NewVec3(0.8, 0.8, 0.8))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(2, albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := texture.NewConstantTexture(1, core.NewVec3(0.9, 0.9, 0.9))
	metal := NewMetal(2, albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRayAtTime(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize(), 0.25)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0)}
	hit.SetOutwardNormal(rayIn, core.NewVec3(0, 0, 1))

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Expected reflection above the surface")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	if !scatter.Scattered.Direction.ApproxEqual(expected, 1e-9) {
		t.Errorf("Expected direction %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Scattered.Time != 0.25 {
		t.Errorf("Expected scattered ray to keep time 0.25, got %f", scatter.Scattered.Time)
	}
	if !scatter.IsSpecular() {
		t.Error("Metal scattering should be specular")
	}
}
