package entity

import (
	"fmt"

	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/physics"
	"github.com/milk9111/boxcontroller/prefabs"
)

// LoadLevelToWorld creates one collider entity per platform. Bodies are
// registered by the body sync system on its next update. A platform with a
// degenerate scale fails the whole level before any entity is created.
func LoadLevelToWorld(w *ecs.World, lvl *prefabs.LevelSpec) ([]ecs.Entity, error) {
	for i, p := range lvl.Platforms {
		if err := physics.CheckScale(p.Transform.Scale.Vec()); err != nil {
			return nil, fmt.Errorf("level %s: platform %s: %w", lvl.Name, platformName(i, p), err)
		}
	}

	entities := make([]ecs.Entity, 0, len(lvl.Platforms))
	for i, p := range lvl.Platforms {
		name := platformName(i, p)
		e := ecs.CreateEntity(w)
		err := addAll(
			ecs.Add(w, e, component.NameComponent, &component.Name{Value: name}),
			ecs.Add(w, e, component.TransformComponent, &component.Transform{Transform: p.Transform.Transform()}),
			ecs.Add(w, e, component.ColliderComponent, &component.Collider{Tag: physics.TagPlatform}),
		)
		if err != nil {
			UnloadLevel(w, entities)
			ecs.DestroyEntity(w, e)
			return nil, fmt.Errorf("level %s: platform %s: %w", lvl.Name, name, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// UnloadLevel destroys platform entities. Their bodies leave the physics world
// on the next body sync.
func UnloadLevel(w *ecs.World, entities []ecs.Entity) {
	for _, e := range entities {
		ecs.DestroyEntity(w, e)
	}
}

func platformName(i int, p prefabs.PlatformSpec) string {
	if p.Name == "" {
		return fmt.Sprintf("platform_%d", i)
	}
	return p.Name
}
