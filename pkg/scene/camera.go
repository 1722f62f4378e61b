package scene

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Camera generates rays through an image plane spanned by Horizontal and
// Vertical from LowerLeftCorner, with an optional thin lens and shutter interval
type Camera struct {
	id              core.ID
	LowerLeftCorner core.Vec3
	Horizontal      core.Vec3
	Vertical        core.Vec3
	Origin          core.Vec3
	LensRadius      float64
	TimeFrom        float64
	TimeTo          float64

	// lens basis
	u core.Vec3
	v core.Vec3
}

// CameraConfig describes a camera by position and aim
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter (0 for pinhole)
	FocusDistance float64   // Distance to the focus plane (0 for |LookAt - Center|)
	TimeFrom      float64   // Shutter open time
	TimeTo        float64   // Shutter close time
}

// NewCamera creates a camera from its image plane
func NewCamera(id core.ID, lowerLeftCorner, horizontal, vertical, origin core.Vec3, lensRadius, timeFrom, timeTo float64) *Camera {
	return &Camera{
		id:              id,
		LowerLeftCorner: lowerLeftCorner,
		Horizontal:      horizontal,
		Vertical:        vertical,
		Origin:          origin,
		LensRadius:      lensRadius,
		TimeFrom:        timeFrom,
		TimeTo:          timeTo,
		u:               horizontal.Normalize(),
		v:               vertical.Normalize(),
	}
}

// NewLookAtCamera creates a camera positioned and aimed by config
func NewLookAtCamera(id core.ID, config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(2 * halfWidth * focusDistance)
	vertical := v.Multiply(2 * halfHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return NewCamera(id, lowerLeftCorner, horizontal, vertical, config.Center,
		config.Aperture/2, config.TimeFrom, config.TimeTo)
}

func (c *Camera) ID() core.ID { return c.id }

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.Origin
	if c.LensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.LensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.LowerLeftCorner.
		Add(c.Horizontal.Multiply(s)).
		Add(c.Vertical.Multiply(t)).
		Subtract(origin)

	time := c.TimeFrom
	if c.TimeTo > c.TimeFrom {
		time += sampler.Get1D() * (c.TimeTo - c.TimeFrom)
	}

	return core.NewRayAtTime(origin, direction, time)
}
