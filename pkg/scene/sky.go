package scene

import "github.com/df07/go-raytracer-core/pkg/core"

// Sky is the background seen by rays that leave the scene. It blends from
// NadirColor straight down to ZenithColor straight up.
type Sky struct {
	id          core.ID
	NadirColor  core.Vec3
	ZenithColor core.Vec3
}

// NewSky creates a vertical gradient background
func NewSky(id core.ID, nadir, zenith core.Vec3) *Sky {
	return &Sky{id: id, NadirColor: nadir, ZenithColor: zenith}
}

func (s *Sky) ID() core.ID { return s.id }

// Color returns the background color seen along direction
func (s *Sky) Color(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return s.NadirColor.Multiply(1.0 - t).Add(s.ZenithColor.Multiply(t))
}
