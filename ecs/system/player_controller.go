package system

import (
	"github.com/milk9111/boxcontroller/camera"
	"github.com/milk9111/boxcontroller/clock"
	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/input"
)

// PlayerControllerSystem ticks every player controller and copies the
// resulting pose back onto the entity.
type PlayerControllerSystem struct {
	in    input.Input
	clock clock.Clock
}

func NewPlayerControllerSystem(in input.Input, clk clock.Clock) *PlayerControllerSystem {
	return &PlayerControllerSystem{in: in, clock: clk}
}

func (ps *PlayerControllerSystem) Update(w *ecs.World) {
	basis := camera.DefaultBasis()
	if _, cam, ok := ecs.First(w, component.CameraComponent); ok && cam.Rig != nil {
		basis = cam.Basis
	}

	ecs.ForEach2(w, component.PlayerComponent, component.TransformComponent, func(e ecs.Entity, p *component.Player, tr *component.Transform) {
		if p.Controller == nil {
			return
		}
		p.Controller.Tick(ps.clock.Delta(), ps.clock.Elapsed(), ps.in, basis)
		tr.Transform = p.Controller.Transform()
		if col, ok := ecs.Get(w, e, component.ColliderComponent); ok {
			col.Event = p.Controller.Event()
		}
	})
}
