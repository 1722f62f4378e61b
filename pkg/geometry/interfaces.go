package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Time range used when a wrapper caches its child's bounding box at construction
const (
	ShutterOpen  = 0.0
	ShutterClose = 1.0
)

// Hittable is anything answering ray-intersection, bounding-box and sampling queries.
// Implementations are immutable after construction, so every method may be
// called from any number of goroutines at once.
type Hittable interface {
	// ID returns the identifier of this node in its scene graph
	ID() core.ID

	// Hit returns the closest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the node over the time range [t0, t1].
	// The second result is false for unbounded geometry.
	BoundingBox(t0, t1 float64) (core.AABB, bool)

	// PDFValue returns the solid-angle density of sampling direction from origin
	// toward this node with Random
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a direction from origin toward this node
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3

	// Accept dispatches to the visitor method for the concrete node kind
	Accept(v Visitor) error
}

// Visitor has one method per concrete Hittable kind. Graph-wide operations
// (serialization, statistics) are written as visitors instead of as methods
// on every node.
type Visitor interface {
	VisitSphere(s *Sphere) error
	VisitMovingSphere(s *MovingSphere) error
	VisitXYRect(r *XYRect) error
	VisitXZRect(r *XZRect) error
	VisitYZRect(r *YZRect) error
	VisitCuboid(c *Cuboid) error
	VisitCollection(c *Collection) error
	VisitFlipNormals(f *FlipNormals) error
	VisitRotate(r *Rotate) error
	VisitTranslate(t *Translate) error
	VisitScale(s *Scale) error
	VisitTransform(t *Transform) error
}

// fallbackDirection is returned by Random for nodes that are not sampling targets
var fallbackDirection = core.NewVec3(1, 0, 0)
