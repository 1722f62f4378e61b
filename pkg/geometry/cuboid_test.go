package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func TestCuboid_OutwardNormals(t *testing.T) {
	cuboid := NewCuboid(1, core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial)

	directions := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}

	for _, d := range directions {
		// From outside, travelling toward the center
		outside := core.NewRay(d.Multiply(5), d.Negate())
		hit, isHit := cuboid.Hit(outside, 0.001, 100)
		if !isHit {
			t.Fatalf("Expected hit from %v", outside.Origin)
		}
		if math.Abs(hit.T-4) > 1e-9 {
			t.Errorf("From %v: expected t=4, got %f", outside.Origin, hit.T)
		}
		assertVec3Near(t, "outside normal", d, hit.Normal, 1e-12)
		if !hit.FrontFace {
			t.Errorf("From %v: expected front face", outside.Origin)
		}

		// From the center, travelling out
		inside := core.NewRay(core.NewVec3(0, 0, 0), d)
		hit, isHit = cuboid.Hit(inside, 0.001, 100)
		if !isHit {
			t.Fatalf("Expected hit from inside toward %v", d)
		}
		assertVec3Near(t, "inside normal", d, hit.Normal, 1e-12)
		if hit.FrontFace {
			t.Errorf("Toward %v: expected back face from inside", d)
		}
	}
}

func TestCuboid_BoundingBox(t *testing.T) {
	cuboid := NewCuboid(1, core.NewVec3(0, 1, 2), core.NewVec3(3, 4, 5), testMaterial)

	box, ok := cuboid.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected cuboid to be bounded")
	}
	if box != core.NewAABB(core.NewVec3(0, 1, 2), core.NewVec3(3, 4, 5)) {
		t.Errorf("Unexpected box %v", box)
	}
}

func TestCuboid_Sampling(t *testing.T) {
	cuboid := NewCuboid(1, core.NewVec3(-1, 2, -1), core.NewVec3(1, 3, 1), testMaterial)

	sampler := newTestSampler(9)
	for i := 0; i < 200; i++ {
		direction := cuboid.Random(core.NewVec3(0, 0, 0), sampler)
		if pdf := cuboid.PDFValue(core.NewVec3(0, 0, 0), direction); pdf < 0 || math.IsNaN(pdf) {
			t.Fatalf("Invalid density %f for %v", pdf, direction)
		}
	}
}
