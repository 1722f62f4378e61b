package texture

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// DefaultCheckerScale is the spatial frequency used when a checker texture
// is created with a non-positive scale
const DefaultCheckerScale = 10.0

// CheckerTexture alternates between two textures in a 3D checkerboard pattern
type CheckerTexture struct {
	id    core.ID
	Odd   Texture
	Even  Texture
	Scale float64 // Spatial frequency of the pattern
}

// NewCheckerTexture creates a procedural 3D checker pattern of two textures
func NewCheckerTexture(id core.ID, odd, even Texture, scale float64) *CheckerTexture {
	if scale <= 0 {
		scale = DefaultCheckerScale
	}
	return &CheckerTexture{id: id, Odd: odd, Even: even, Scale: scale}
}

func (c *CheckerTexture) ID() core.ID { return c.id }

// Value picks the odd or even texture depending on the sign of the product of sines
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Value(uv, point)
	}
	return c.Even.Value(uv, point)
}

func (c *CheckerTexture) Accept(v Visitor) error {
	return v.VisitCheckerTexture(c)
}
