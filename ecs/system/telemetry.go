package system

import (
	"log"

	"github.com/milk9111/boxcontroller/clock"
	"github.com/milk9111/boxcontroller/ecs"
	"github.com/milk9111/boxcontroller/ecs/component"
	"github.com/milk9111/boxcontroller/movement"
	"github.com/milk9111/boxcontroller/telemetry"
)

// Publisher receives one snapshot per tick.
type Publisher interface {
	Publish(telemetry.Snapshot) error
}

// TelemetrySystem captures the world and the tick's queued contacts at the
// end of a tick and hands the snapshot to a publisher.
type TelemetrySystem struct {
	pub   Publisher
	clock clock.Clock
	tick  uint64
	last  telemetry.Snapshot
}

func NewTelemetrySystem(pub Publisher, clk clock.Clock) *TelemetrySystem {
	return &TelemetrySystem{pub: pub, clock: clk}
}

// Last returns the most recent snapshot.
func (ts *TelemetrySystem) Last() telemetry.Snapshot {
	return ts.last
}

func (ts *TelemetrySystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	ts.tick++

	var ctrl *movement.Controller
	if _, p, ok := ecs.First(w, component.PlayerComponent); ok {
		ctrl = p.Controller
	}
	ts.last = telemetry.Capture(ts.tick, ts.clock.Elapsed(), pw, ctrl)
	for _, c := range w.Events().Contacts() {
		ts.last.Contacts = append(ts.last.Contacts, telemetry.Contact{
			Entity: c.Entity.String(),
			Other:  c.Other.String(),
			Status: c.Status.String(),
			Depth:  c.Depth,
		})
	}
	if ts.pub == nil {
		return
	}
	if err := ts.pub.Publish(ts.last); err != nil {
		log.Printf("telemetry: publish tick %d: %v", ts.tick, err)
	}
}
