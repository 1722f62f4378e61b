package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracer-core/pkg/core"
)

func unitCuboid() *Cuboid {
	return NewCuboid(1, core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial)
}

func TestRotateX_BoundingBox(t *testing.T) {
	rotated := NewRotateX(2, 30*math.Pi/180, unitCuboid())

	box, ok := rotated.BoundingBox(0, 0)
	if !ok {
		t.Fatal("Expected rotated cuboid to be bounded")
	}
	assertVec3Near(t, "min", core.NewVec3(-1, -1.366, -1.366), box.Min, 0.01)
	assertVec3Near(t, "max", core.NewVec3(1, 1.366, 1.366), box.Max, 0.01)
}

func TestRotate_BoundingBoxContainsEveryRotatedCorner(t *testing.T) {
	child := NewCuboid(1, core.NewVec3(-1, 0.5, 2), core.NewVec3(3, 2, 2.5), testMaterial)
	childBox, _ := child.BoundingBox(ShutterOpen, ShutterClose)

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, angle := range []float64{0.3, 2.1, -1.2, math.Pi} {
			rotated := NewRotate(2, axis, angle, child)
			box, ok := rotated.BoundingBox(ShutterOpen, ShutterClose)
			if !ok {
				t.Fatalf("%s by %f: expected a box", axis, angle)
			}

			corners := childBox.Corners()
			for i := range corners {
				corners[i] = rotated.rotate(corners[i])
			}
			expected := core.NewAABBFromPoints(corners[:]...)
			assertVec3Near(t, axis.String()+" min", expected.Min, box.Min, 1e-12)
			assertVec3Near(t, axis.String()+" max", expected.Max, box.Max, 1e-12)
		}
	}
}

func TestRotateX_Hit(t *testing.T) {
	rotated := NewRotateX(2, 30*math.Pi/180, unitCuboid())

	upward := core.NewRay(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0))
	if _, isHit := rotated.Hit(upward, 0, 10); !isHit {
		t.Error("Expected hit in [0, 10]")
	}
	if hit, isHit := rotated.Hit(upward, 10, 20); isHit {
		t.Errorf("Expected miss in [10, 20], got hit at t=%f", hit.T)
	}

	beside := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))
	if hit, isHit := rotated.Hit(beside, 0, 10); isHit {
		t.Errorf("Expected miss beside the cuboid, got hit at t=%f", hit.T)
	}
}

func TestRotate_HitTransformsPointAndNormal(t *testing.T) {
	sphere := NewSphere(1, core.NewVec3(1, 0, 0), 0.5, testMaterial)
	rotated := NewRotateY(2, math.Pi/2, sphere)

	// A quarter turn around Y carries +X to +Z
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0.25)
	hit, isHit := rotated.Hit(ray, 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-3.5) > 1e-9 {
		t.Errorf("Expected t=3.5, got %f", hit.T)
	}
	assertVec3Near(t, "point", core.NewVec3(0, 0, 1.5), hit.Point, 1e-9)
	assertVec3Near(t, "normal", core.NewVec3(0, 0, 1), hit.Normal, 1e-9)
	if !hit.FrontFace {
		t.Error("Expected front face")
	}
}

func TestRotate_InverseUndoesForward(t *testing.T) {
	p := core.NewVec3(0.3, -1.2, 2.5)
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		r := NewRotate(1, axis, 0.7, unitCuboid())
		assertVec3Near(t, axis.String(), p, r.rotateInverse(r.rotate(p)), 1e-12)
		if math.Abs(r.rotate(p).Length()-p.Length()) > 1e-12 {
			t.Errorf("%s: rotation changed length", axis)
		}
		if r.rotate(p).Component(int(axis)) != p.Component(int(axis)) {
			t.Errorf("%s: rotation moved the axis component", axis)
		}
	}
}

func TestRotate_UnboundedChild(t *testing.T) {
	if _, ok := NewRotateZ(1, 1.0, unboundedNode{}).BoundingBox(0, 1); ok {
		t.Error("Expected rotation of an unbounded node to be unbounded")
	}
}

func TestRotate_Sampling(t *testing.T) {
	rect := NewXZRect(1, -1, 1, -1, 1, 2, testMaterial)
	rotated := NewRotateZ(2, 0.6, rect)
	assertSamplingConsistent(t, rotated, core.NewVec3(0.2, 0, 0.1))
}

func TestAxis_String(t *testing.T) {
	if AxisY.String() != "Y" {
		t.Errorf("Expected Y, got %s", AxisY)
	}
	if Axis(7).String() != "Axis(7)" {
		t.Errorf("Unexpected name %s", Axis(7))
	}
}
