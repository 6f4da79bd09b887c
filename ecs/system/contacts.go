package system

import (
	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/physics"
)

// ContactSystem queues each player's ground contact once the controllers
// have ticked, plus the mirrored event for the platform underneath. A landing
// is queued as Enter, every following grounded tick as Stay and the first
// airborne tick as a single Leave.
//
// The world's own end-of-tick events are not used: a resting player sits a
// skin above the platform after its vertical move, so the world reports
// Leave for it every tick.
type ContactSystem struct {
	sync *BodySyncSystem
}

// NewContactSystem resolves platform entities through sync's body owners.
func NewContactSystem(sync *BodySyncSystem) *ContactSystem {
	return &ContactSystem{sync: sync}
}

func (cs *ContactSystem) Update(w *ecs.World) {
	q := w.Events()
	ecs.ForEach(w, component.PlayerComponent, func(e ecs.Entity, p *component.Player) {
		if p.Controller == nil {
			return
		}
		g := p.Controller.GroundContact()
		if g.Status == physics.StatusNone {
			return
		}
		var other ecs.Entity
		if cs.sync != nil {
			other, _ = cs.sync.Owner(g.Other)
		}
		q.PushContact(ecs.ContactEvent{Entity: e, Other: other, Status: g.Status, Depth: g.Depth})
		if other.Valid() {
			q.PushContact(ecs.ContactEvent{Entity: other, Other: e, Status: g.Status, Depth: g.Depth})
		}
	})
}
