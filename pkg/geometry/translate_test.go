package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func TestTranslate_Hit(t *testing.T) {
	sphere := NewSphere(1, core.NewVec3(0, 0, 0), 0.5, testMaterial)
	moved := NewTranslate(2, core.NewVec3(0, 0, -3), sphere)

	hit, isHit := moved.Hit(core.NewRayAtTime(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0.5), 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("Expected t=2.5, got %f", hit.T)
	}
	assertVec3Near(t, "point", core.NewVec3(0, 0, -2.5), hit.Point, 1e-9)
	assertVec3Near(t, "normal", core.NewVec3(0, 0, 1), hit.Normal, 1e-9)

	if _, isHit := moved.Hit(core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1)), 0.001, 100); isHit {
		t.Error("Expected miss toward the old position")
	}
}

func TestTranslate_BoundingBox(t *testing.T) {
	moved := NewTranslate(2, core.NewVec3(1, 2, 3), unitCuboid())

	box, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected translated cuboid to be bounded")
	}
	expected := core.NewAABB(core.NewVec3(0, 1, 2), core.NewVec3(2, 3, 4))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}

	if _, ok := NewTranslate(3, core.NewVec3(1, 0, 0), unboundedNode{}).BoundingBox(0, 1); ok {
		t.Error("Expected translation of an unbounded node to be unbounded")
	}
}

func TestTranslate_Sampling(t *testing.T) {
	sphere := NewSphere(1, core.NewVec3(0, 0, 0), 1, testMaterial)
	moved := NewTranslate(2, core.NewVec3(0, 2, 0), sphere)
	assertSamplingConsistent(t, moved, core.NewVec3(0, 0, 0))
}

func TestFlipNormals(t *testing.T) {
	sphere := NewSphere(1, core.NewVec3(0, 0, -2), 0.5, testMaterial)
	flipped := NewFlipNormals(2, sphere)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	original, _ := sphere.Hit(ray, 0.001, 100)
	hit, isHit := flipped.Hit(ray, 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.T != original.T || hit.Point != original.Point {
		t.Errorf("Expected same intersection, got %v vs %v", hit, original)
	}
	assertVec3Near(t, "normal", original.Normal.Negate(), hit.Normal, 1e-12)
	if hit.FrontFace == original.FrontFace {
		t.Error("Expected front face to be toggled")
	}

	box, _ := flipped.BoundingBox(0, 1)
	childBox, _ := sphere.BoundingBox(0, 1)
	if box != childBox {
		t.Errorf("Expected child's box, got %v", box)
	}
}
