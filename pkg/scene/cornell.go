package scene

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/texture"
)

// NewCornellScene creates a classic Cornell box with rectangle walls, a
// ceiling light, a rotated block and a metal sphere
func NewCornellScene(ids *core.IDGenerator) *Scene {
	config := CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),        // Standard up direction
		AspectRatio: 1.0,                          // Square aspect ratio for Cornell box
		VFov:        40.0,                         // Field of view
		Aperture:    0.0,                          // No depth of field for Cornell box
	}

	// Create materials
	white := material.NewLambertian(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.73, 0.73, 0.73)))
	red := material.NewLambertian(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.65, 0.05, 0.05)))
	green := material.NewLambertian(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.12, 0.45, 0.15)))
	light := material.NewDiffuseLight(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(15.0, 15.0, 15.0)))
	metal := material.NewMetal(ids.Next(), texture.NewConstantTexture(ids.Next(), core.NewVec3(0.8, 0.8, 0.9)), 0.0)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	// Walls face into the box
	leftWall := geometry.NewYZRect(ids.Next(), 0, boxSize, 0, boxSize, 0, red)
	rightWall := geometry.NewFlipNormals(ids.Next(), geometry.NewYZRect(ids.Next(), 0, boxSize, 0, boxSize, boxSize, green))
	floor := geometry.NewXZRect(ids.Next(), 0, boxSize, 0, boxSize, 0, white)
	ceiling := geometry.NewFlipNormals(ids.Next(), geometry.NewXZRect(ids.Next(), 0, boxSize, 0, boxSize, boxSize, white))
	backWall := geometry.NewFlipNormals(ids.Next(), geometry.NewXYRect(ids.Next(), 0, boxSize, 0, boxSize, boxSize, white))

	// Ceiling light (smaller rect in the center of the ceiling, facing down)
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	ceilingLight := geometry.NewFlipNormals(ids.Next(), geometry.NewXZRect(ids.Next(),
		lightOffset, lightOffset+lightSize, lightOffset, lightOffset+lightSize, boxSize-1, light))

	// Tall block, turned and moved to the back right
	block := geometry.NewCuboid(ids.Next(), core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallBlock := geometry.NewTranslate(ids.Next(), core.NewVec3(265, 0, 295),
		geometry.NewRotateY(ids.Next(), 15*math.Pi/180, block))

	// Front left sphere (shiny metal)
	sphere := geometry.NewSphere(ids.Next(), core.NewVec3(185, 82.5, 169), 82.5, metal)

	root := geometry.NewCollection(ids.Next(),
		leftWall, rightWall, floor, ceiling, backWall, ceilingLight, tallBlock, sphere)

	return New(
		NewConfiguration(ids.Next(), 40),
		NewLookAtCamera(ids.Next(), config),
		NewSky(ids.Next(), core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0)), // Black background
		root,
	)
}
