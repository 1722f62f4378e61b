package scene

import "github.com/df07/go-raytracer-core/pkg/core"

// DefaultMaximumDepth is the bounce limit used by the built-in scenes
const DefaultMaximumDepth = 50

// Configuration holds the render settings that travel with a scene
type Configuration struct {
	id           core.ID
	MaximumDepth int // Maximum ray bounce depth
}

// NewConfiguration creates a configuration node
func NewConfiguration(id core.ID, maximumDepth int) *Configuration {
	return &Configuration{id: id, MaximumDepth: maximumDepth}
}

func (c *Configuration) ID() core.ID { return c.id }
