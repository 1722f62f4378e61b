package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

const singularDeterminant = 1e-12

// Transform places its child with a general affine matrix (column-major, as
// in mgl64). The bottom row must be (0, 0, 0, 1). Matrix and Node are
// read-only after construction; the inverse and the box are derived from them.
type Transform struct {
	id     core.ID
	Matrix mgl64.Mat4
	Node   Hittable

	inverse      mgl64.Mat4
	linear       mgl64.Mat3
	invLinear    mgl64.Mat3
	normalMatrix mgl64.Mat3
	invLinearDet float64

	bbox    core.AABB
	hasBBox bool
}

// NewTransform wraps child in the affine transform m
func NewTransform(id core.ID, m mgl64.Mat4, child Hittable) (*Transform, error) {
	if m[3] != 0 || m[7] != 0 || m[11] != 0 || m[15] != 1 {
		return nil, fmt.Errorf("transform %v: %w", m, ErrNonAffineTransform)
	}

	linear := m.Mat3()
	det := linear.Det()
	if math.Abs(det) < singularDeterminant {
		return nil, fmt.Errorf("transform determinant %g: %w", det, ErrSingularTransform)
	}

	invLinear := linear.Inv()
	t := &Transform{
		id:           id,
		Matrix:       m,
		Node:         child,
		inverse:      m.Inv(),
		linear:       linear,
		invLinear:    invLinear,
		normalMatrix: invLinear.Transpose(),
		invLinearDet: math.Abs(1.0 / det),
	}

	if childBox, ok := child.BoundingBox(ShutterOpen, ShutterClose); ok {
		corners := childBox.Corners()
		for i := range corners {
			corners[i] = t.transformPoint(corners[i])
		}
		t.bbox = core.NewAABBFromPoints(corners[:]...)
		t.hasBBox = true
	}

	return t, nil
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func (t *Transform) transformPoint(p core.Vec3) core.Vec3 {
	return fromMgl(mgl64.TransformCoordinate(toMgl(p), t.Matrix))
}

func (t *Transform) inversePoint(p core.Vec3) core.Vec3 {
	return fromMgl(mgl64.TransformCoordinate(toMgl(p), t.inverse))
}

func (t *Transform) transformVector(v core.Vec3) core.Vec3 {
	return fromMgl(t.linear.Mul3x1(toMgl(v)))
}

func (t *Transform) inverseVector(v core.Vec3) core.Vec3 {
	return fromMgl(t.invLinear.Mul3x1(toMgl(v)))
}

func (t *Transform) ID() core.ID { return t.id }

func (t *Transform) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := ray.WithOriginDirection(t.inversePoint(ray.Origin), t.inverseVector(ray.Direction))

	hit, ok := t.Node.Hit(local, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = t.transformPoint(hit.Point)
	hit.Normal = fromMgl(t.normalMatrix.Mul3x1(toMgl(hit.Normal))).Normalize()
	return hit, true
}

// BoundingBox returns the box cached at construction; the time range is ignored
func (t *Transform) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return t.bbox, t.hasBBox
}

// PDFValue applies the same change of variables as Scale, using the linear part of the matrix
func (t *Transform) PDFValue(origin, direction core.Vec3) float64 {
	if direction.LengthSquared() == 0 {
		return 0.0
	}
	localDirection := t.inverseVector(direction.Normalize())
	length := localDirection.Length()

	pdf := t.Node.PDFValue(t.inversePoint(origin), localDirection.Multiply(1.0/length))
	if pdf == 0 {
		return 0.0
	}
	return pdf * t.invLinearDet / (length * length * length)
}

func (t *Transform) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.transformVector(t.Node.Random(t.inversePoint(origin), sampler))
}

func (t *Transform) Accept(v Visitor) error {
	return v.VisitTransform(t)
}
