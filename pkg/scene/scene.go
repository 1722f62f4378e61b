package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer-core/pkg/geometry"
)

// ErrIncompleteScene is returned when an entry point of a scene is missing
var ErrIncompleteScene = errors.New("scene: missing entry point")

// Scene is a renderable object graph reached from four entry points
type Scene struct {
	Configuration *Configuration
	Camera        *Camera
	Sky           *Sky
	Root          geometry.Hittable
}

// New assembles a scene from its entry points
func New(configuration *Configuration, camera *Camera, sky *Sky, root geometry.Hittable) *Scene {
	return &Scene{
		Configuration: configuration,
		Camera:        camera,
		Sky:           sky,
		Root:          root,
	}
}

// Validate reports whether every entry point is set
func (s *Scene) Validate() error {
	switch {
	case s.Configuration == nil:
		return fmt.Errorf("%w: configuration is nil", ErrIncompleteScene)
	case s.Camera == nil:
		return fmt.Errorf("%w: camera is nil", ErrIncompleteScene)
	case s.Sky == nil:
		return fmt.Errorf("%w: sky is nil", ErrIncompleteScene)
	case s.Root == nil:
		return fmt.Errorf("%w: root node is nil", ErrIncompleteScene)
	}
	return nil
}
