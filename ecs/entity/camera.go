package entity

import (
	"github.com/milk9111/boxcontroller/camera"
	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	rig := camera.NewRig(spec.Sensitivity, spec.Offset.Vec())
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent, &component.Camera{Rig: rig, Basis: rig.Basis()}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
