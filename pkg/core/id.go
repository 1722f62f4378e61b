package core

// ID identifies a node of the scene graph (shape, wrapper, material,
// texture, camera, sky or configuration). IDs are the only handle that
// survives serialization.
type ID int

// NoID is never handed out by an IDGenerator. It marks a missing referrer.
const NoID ID = 0

// IDGenerator hands out monotonically increasing IDs for one scene build.
// It is not safe for concurrent use.
type IDGenerator struct {
	last ID
}

// NewIDGenerator creates a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh ID
func (g *IDGenerator) Next() ID {
	g.last++
	return g.last
}
