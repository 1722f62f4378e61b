package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

var testMaterial = material.NewNoMaterial(core.NoID)

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// estimatePDFIntegral integrates h.PDFValue over the sphere of directions
// with uniform samples; a correct density integrates to one
func estimatePDFIntegral(h Hittable, origin core.Vec3, samples int, seed int64) float64 {
	sampler := newTestSampler(seed)
	sum := 0.0
	for i := 0; i < samples; i++ {
		sum += h.PDFValue(origin, core.SampleOnUnitSphere(sampler.Get2D()))
	}
	return 4 * math.Pi * sum / float64(samples)
}

// assertSamplingConsistent checks that the density integrates to one and that
// every direction drawn with Random has positive density
func assertSamplingConsistent(t *testing.T, h Hittable, origin core.Vec3) {
	t.Helper()

	integral := estimatePDFIntegral(h, origin, 200000, 11)
	if math.Abs(integral-1.0) > 0.06 {
		t.Errorf("Expected PDF to integrate to 1, got %f", integral)
	}

	sampler := newTestSampler(5)
	for i := 0; i < 200; i++ {
		direction := h.Random(origin, sampler)
		if pdf := h.PDFValue(origin, direction); pdf <= 0 {
			t.Fatalf("Sampled direction %v has density %f", direction, pdf)
		}
	}
}

func assertVec3Near(t *testing.T, name string, expected, got core.Vec3, tolerance float64) {
	t.Helper()
	if !got.ApproxEqual(expected, tolerance) {
		t.Errorf("%s: expected %v, got %v", name, expected, got)
	}
}

// unboundedNode is a node without a bounding box
type unboundedNode struct{}

func (unboundedNode) ID() core.ID { return core.NoID }

func (unboundedNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return nil, false
}

func (unboundedNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func (unboundedNode) PDFValue(origin, direction core.Vec3) float64 { return 0 }

func (unboundedNode) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return fallbackDirection
}

func (unboundedNode) Accept(v Visitor) error { return nil }

// countingNode counts the Hit queries that reach its child
type countingNode struct {
	Hittable
	hits int
}

func (c *countingNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	c.hits++
	return c.Hittable.Hit(ray, tMin, tMax)
}
