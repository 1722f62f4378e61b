package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCone_StaysInsideCone(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	axis := NewVec3(1, 2, -1).Normalize()
	cosTotalWidth := math.Cos(math.Pi / 8)

	for i := 0; i < 1000; i++ {
		d := SampleCone(axis, cosTotalWidth, sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d not unit length: %f", i, d.Length())
		}
		if d.Dot(axis) < cosTotalWidth-1e-9 {
			t.Fatalf("Sample %d outside cone: cos=%f", i, d.Dot(axis))
		}
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))
	normal := NewVec3(0, 0, 1)

	for i := 0; i < 1000; i++ {
		d := SampleCosineHemisphere(normal, sampler.Get2D())
		if d.Dot(normal) < -1e-12 {
			t.Fatalf("Sample %d below hemisphere: %v", i, d)
		}
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))
	var mean Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d not unit length: %f", i, d.Length())
		}
		mean = mean.Add(d)
	}
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Expected mean near zero for uniform sphere samples, got %v", mean)
	}
}

func TestOrthonormalBasis(t *testing.T) {
	for _, w := range []Vec3{NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 1, 1).Normalize()} {
		u, v := OrthonormalBasis(w)
		if math.Abs(u.Dot(v)) > 1e-12 || math.Abs(u.Dot(w)) > 1e-12 || math.Abs(v.Dot(w)) > 1e-12 {
			t.Errorf("Basis for %v is not orthogonal: u=%v v=%v", w, u, v)
		}
		if math.Abs(u.Length()-1) > 1e-12 || math.Abs(v.Length()-1) > 1e-12 {
			t.Errorf("Basis for %v is not normalized: u=%v v=%v", w, u, v)
		}
	}
}
