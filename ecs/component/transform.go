package component

import (
	"github.com/milk9111/boxcontroller/common"
	"github.com/milk9111/boxcontroller/component"
)

// Transform is an entity's pose. For colliders Scale holds the half-extents.
type Transform struct {
	common.Transform
}

var TransformComponent = component.New[Transform]("transform")
