package texture

import (
	"github.com/df07/go-raytracer-core/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// ID returns the identifier of this texture in its scene graph
	ID() core.ID

	// Value returns the color at the given UV coordinates and 3D point.
	// UV is used for image-like textures, point for procedural ones.
	Value(uv core.Vec2, point core.Vec3) core.Vec3

	// Accept dispatches to the visitor method for the concrete texture kind
	Accept(v Visitor) error
}

// Visitor has one method per concrete texture kind
type Visitor interface {
	VisitConstantTexture(t *ConstantTexture) error
	VisitCheckerTexture(t *CheckerTexture) error
}
