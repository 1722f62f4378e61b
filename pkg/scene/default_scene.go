package scene

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

// NewDefaultScene creates a default scene with spheres on a checkered ground
func NewDefaultScene(ids *core.IDGenerator) *Scene {
	config := CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:      core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:          core.NewVec3(0, 1, 0),    // Standard up direction
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0, // Narrower field of view for focus effect
		Aperture:    0.05, // Strong depth of field blur
		TimeFrom:    0.0,
		TimeTo:      1.0,
	}

	// Create materials
	checker := texture.NewCheckerTexture(ids.Next(),
		texture.NewConstantTexture(ids.Next(), core.NewVec3(0.2, 0.3, 0.1)),
		texture.NewConstantTexture(ids.Next(), core.NewVec3(0.9, 0.9, 0.9)),
		10)
	ground := material.NewLambertian(ids.Next(), checker)
	lambertianBlue := material.NewLambertian(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.1, 0.2, 0.5)))
	lambertianRed := material.NewLambertian(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.65, 0.25, 0.2)))
	metalSilver := material.NewMetal(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.8, 0.8, 0.8)), 0.0)
	metalGold := material.NewMetal(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.8, 0.6, 0.2)), 0.3)
	materialGlass := material.NewDielectric(ids.Next(), 1.5)
	sun := material.NewDiffuseLight(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(15.0, 14.0, 13.0)))

	// Create spheres with different materials
	sphereCenter := geometry.NewSphere(ids.Next(), core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	sphereLeft := geometry.NewSphere(ids.Next(), core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(ids.Next(), core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphere(ids.Next(), core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass)

	// Large sphere as ground (finite for proper bounds)
	groundSphere := geometry.NewSphere(ids.Next(), core.NewVec3(0, -1000, 0), 1000, ground)

	// Create hollow glass sphere with blue sphere inside
	hollowGlassOuter := geometry.NewSphere(ids.Next(), core.NewVec3(-0.5, 0.25, -0.5), 0.25, materialGlass)
	hollowGlassInner := geometry.NewSphere(ids.Next(), core.NewVec3(-0.5, 0.25, -0.5), -0.24, materialGlass)
	hollowGlassCenter := geometry.NewSphere(ids.Next(), core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	// Small sphere bouncing during the shutter interval
	bouncing := geometry.NewMovingSphere(ids.Next(),
		core.NewVec3(1.2, 0.15, -0.3), core.NewVec3(1.2, 0.3, -0.3), 0, 1, 0.15, lambertianBlue)

	// Distant spherical light: pos [30, 30.5, 15], r: 10
	sunSphere := geometry.NewSphere(ids.Next(), core.NewVec3(30, 30.5, 15), 10, sun)

	root := geometry.NewCollection(ids.Next(),
		sphereCenter, sphereLeft, sphereRight, groundSphere, solidGlassSphere,
		hollowGlassOuter, hollowGlassInner, hollowGlassCenter, bouncing, sunSphere)

	return New(
		NewConfiguration(ids.Next(), DefaultMaximumDepth),
		NewLookAtCamera(ids.Next(), config),
		NewSky(ids.Next(),
			core.NewVec3(1.0, 1.0, 1.0), // white ground
			core.NewVec3(0.5, 0.7, 1.0), // blue sky
		),
		root,
	)
}

// NewSimpleScene creates two diffuse spheres, one of them acting as the ground,
// seen by an axis-aligned camera
func NewSimpleScene(ids *core.IDGenerator) *Scene {
	red := material.NewLambertian(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.5, 0.1, 0.1)))
	sphere := geometry.NewSphere(ids.Next(), core.NewVec3(0, 0, -1), 0.5, red)

	grey := material.NewLambertian(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.1, 0.1, 0.1)))
	ground := geometry.NewSphere(ids.Next(), core.NewVec3(0, -100.5, -1), 100, grey)

	root := geometry.NewCollection(ids.Next(), ground, sphere)

	camera := NewCamera(ids.Next(),
		core.NewVec3(-2, -1, -1), core.NewVec3(4, 0, 0), core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 0),
		0, 0, 0)

	return New(
		NewConfiguration(ids.Next(), DefaultMaximumDepth),
		camera,
		NewSky(ids.Next(), core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		root,
	)
}
