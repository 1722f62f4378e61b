package texture

import (
	"github.com/df07/go-raytracer-core/pkg/core"
)

// ConstantTexture provides a uniform color
type ConstantTexture struct {
	id    core.ID
	Color core.Vec3
}

// NewConstantTexture creates a new solid color texture
func NewConstantTexture(id core.ID, color core.Vec3) *ConstantTexture {
	return &ConstantTexture{id: id, Color: color}
}

func (c *ConstantTexture) ID() core.ID { return c.id }

// Value returns the solid color regardless of UV or position
func (c *ConstantTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return c.Color
}

func (c *ConstantTexture) Accept(v Visitor) error {
	return v.VisitConstantTexture(c)
}
