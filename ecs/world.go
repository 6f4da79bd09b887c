package ecs

import (
	"github.com/milk9111/boxcontroller/component"
	"github.com/milk9111/boxcontroller/physics"
)

// World owns entities and their component storages.
type World struct {
	entities entityStore
	stores   map[component.ID]store
	events   EventQueue

	physics *physics.World
}

func NewWorld() *World {
	return &World{stores: map[component.ID]store{}}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities lists live entities in id order.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if w.entities.alive[i] {
			out = append(out, w.entities.entity(entityID(i+1)))
		}
	}
	return out
}

func (w *World) Events() *EventQueue {
	return &w.events
}

// SetPhysicsWorld attaches the collision world the systems share.
func (w *World) SetPhysicsWorld(pw *physics.World) {
	w.physics = pw
}

func (w *World) PhysicsWorld() *physics.World {
	return w.physics
}
