package entity

import (
	"fmt"

	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/movement"
	"github.com/milk9111/boxcontroller/physics"
	"github.com/milk9111/boxcontroller/prefabs"
)

// NewPlayer creates the player entity and its controller in the world's
// physics world.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, fmt.Errorf("player: world has no physics world")
	}
	spawn := spec.Transform.Transform()
	ctrl, err := movement.New(pw, spawn, spec.Tuning)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	err = addAll(
		ecs.Add(w, e, component.NameComponent, &component.Name{Value: spec.Name}),
		ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}),
		ecs.Add(w, e, component.TransformComponent, &component.Transform{Transform: spawn}),
		ecs.Add(w, e, component.ColliderComponent, &component.Collider{Tag: physics.TagPlayer, Handle: ctrl.Handle()}),
		ecs.Add(w, e, component.PlayerComponent, &component.Player{Controller: ctrl}),
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		_ = pw.Unregister(ctrl.Handle())
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

// ApplyPlayerSpec pushes reloaded tuning into a live player. Pose and
// velocity are kept.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
	p, ok := ecs.Get(w, e, component.PlayerComponent)
	if !ok {
		return fmt.Errorf("player: entity %s has no player component", e)
	}
	if err := p.Controller.SetTuning(spec.Tuning); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if _, cam, ok := ecs.First(w, component.CameraComponent); ok && cam.Rig != nil {
		cam.Rig.Sensitivity = spec.Camera.Sensitivity
		cam.Rig.Offset = spec.Camera.Offset.Vec()
	}
	return nil
}

func addAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
