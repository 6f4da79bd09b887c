package system

import (
	"log"

	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/physics"
)

// BodySyncSystem keeps the physics world in step with collider entities:
// it registers new colliders, syncs moved ones, unregisters bodies of
// destroyed entities and resolves contacts. It queues no events; see
// ContactSystem.
type BodySyncSystem struct {
	owners map[physics.Handle]ecs.Entity
}

func NewBodySyncSystem() *BodySyncSystem {
	return &BodySyncSystem{owners: map[physics.Handle]ecs.Entity{}}
}

// Owner returns the entity that owns a body handle.
func (s *BodySyncSystem) Owner(h physics.Handle) (ecs.Entity, bool) {
	e, ok := s.owners[h]
	return e, ok
}

func (s *BodySyncSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	for h, e := range s.owners {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.ColliderComponent) {
			continue
		}
		if pw.Alive(h) {
			if err := pw.Unregister(h); err != nil {
				log.Printf("body sync: unregister %s: %v", h, err)
			}
		}
		delete(s.owners, h)
	}

	ecs.ForEach2(w, component.ColliderComponent, component.TransformComponent, func(e ecs.Entity, col *component.Collider, tr *component.Transform) {
		if !col.Handle.Valid() {
			h, err := pw.Register(tr.Transform, col.Tag)
			if err != nil {
				log.Printf("body sync: entity %s: %v", e, err)
				ecs.Remove(w, e, component.ColliderComponent)
				return
			}
			col.Handle = h
			s.owners[h] = e
			return
		}
		if !pw.Alive(col.Handle) {
			return
		}
		s.owners[col.Handle] = e
		if current, ok := pw.Transform(col.Handle); ok && current != tr.Transform {
			if err := pw.SyncPosition(col.Handle, tr.Transform); err != nil {
				log.Printf("body sync: entity %s: %v", e, err)
			}
		}
	})

	pw.ResolveContacts()
	s.collect(w)
}

// collect copies each body's event onto its collider.
func (s *BodySyncSystem) collect(w *ecs.World) {
	pw := w.PhysicsWorld()
	ecs.ForEach(w, component.ColliderComponent, func(_ ecs.Entity, col *component.Collider) {
		if !pw.Alive(col.Handle) {
			return
		}
		if ev, ok := pw.Event(col.Handle); ok {
			col.Event = ev
		}
	})
}
