package component

import (
	"github.com/milk9111/boxcontroller/camera"
	"github.com/milk9111/boxcontroller/component"
)

// Camera carries the rig and the basis computed for the current tick.
type Camera struct {
	Rig   *camera.Rig
	Basis camera.Basis
}

var CameraComponent = component.New[Camera]("camera")
