package component

import (
	"github.com/milk9111/boxcontroller/component"
	"github.com/milk9111/boxcontroller/physics"
)

// Collider links an entity to its box in the physics world. A zero Handle
// asks the body sync system to register one from the entity's Transform.
type Collider struct {
	Tag    physics.Tag
	Handle physics.Handle
	// Event is the body's contact event copied after the last resolve.
	Event physics.CollisionEvent
}

var ColliderComponent = component.New[Collider]("collider")
