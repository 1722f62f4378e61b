package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1, 1.5)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), T: 1.0, Material: glass}
	hit.SetOutwardNormal(ray, core.NewVec3(0, 1, 0))

	hasReflection := false
	hasRefraction := false
	for seed := int64(0); seed < 1000; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasReflection || !hasRefraction {
		t.Errorf("Expected both reflection and refraction, got reflection=%t refraction=%t", hasReflection, hasRefraction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1, 1.5)

	// Grazing ray leaving the glass: outward normal points up, ray travels up at a shallow angle
	ray := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(1, 0.2, 0).Normalize())
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0)}
	hit.SetOutwardNormal(ray, core.NewVec3(0, 1, 0))

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	result, _ := glass.Scatter(ray, hit, sampler)
	if result.Scattered.Direction.Y >= 0 {
		t.Errorf("Expected reflection back into the glass, got %v", result.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence on glass: ((1-1.5)/(1+1.5))^2 = 0.04
	if r := Reflectance(1.0, 1.5); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Expected 0.04, got %f", r)
	}
	if r := Reflectance(0.0, 1.5); math.Abs(r-1.0) > 1e-12 {
		t.Errorf("Expected 1.0 at grazing incidence, got %f", r)
	}
}
