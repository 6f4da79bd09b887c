package system

import (
	"github.com/milk9111/boxcontroller/clock"
	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/input"
)

// CameraSystem turns the camera rig with the mouse, follows the player and
// stores the horizontal basis the player controller reads.
type CameraSystem struct {
	in    input.Input
	clock clock.Clock
}

func NewCameraSystem(in input.Input, clk clock.Clock) *CameraSystem {
	return &CameraSystem{in: in, clock: clk}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	_, cam, ok := ecs.First(w, component.CameraComponent)
	if !ok || cam.Rig == nil {
		return
	}
	cam.Rig.ApplyMouse(cs.in.MouseDelta(), cs.clock.Delta())
	cam.Basis = cam.Rig.Basis()

	ecs.ForEach2(w, component.PlayerTagComponent, component.TransformComponent, func(_ ecs.Entity, _ *component.PlayerTag, tr *component.Transform) {
		cam.Rig.Follow(tr.Position)
	})
}
