package telemetry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/movement"
	"github.com/milk9111/boxcontroller/physics"
)

// Snapshot is the exported state of one tick. It is immutable once built.
type Snapshot struct {
	Tick   uint64  `json:"tick"`
	Time   float32 `json:"time"`
	Bodies []Body  `json:"bodies"`
	Player *Player `json:"player,omitempty"`
	// Contacts are the contact transitions queued during the tick.
	Contacts []Contact `json:"contacts,omitempty"`
}

type Contact struct {
	Entity string  `json:"entity"`
	Other  string  `json:"other"`
	Status string  `json:"status"`
	Depth  float32 `json:"depth"`
}

type Body struct {
	Handle   string     `json:"handle"`
	Tag      string     `json:"tag"`
	Position mgl32.Vec3 `json:"position"`
	Rotation mgl32.Vec3 `json:"rotation"`
	Scale    mgl32.Vec3 `json:"scale"`
	Contact  string     `json:"contact"`
}

type Player struct {
	Position              mgl32.Vec3 `json:"position"`
	Velocity              mgl32.Vec3 `json:"velocity"`
	Speed                 float32    `json:"speed"`
	State                 string     `json:"state"`
	Grounded              bool       `json:"grounded"`
	Contact               string     `json:"contact"`
	Respawns              int        `json:"respawns"`
	DepenetrationFailures int        `json:"depenetration_failures"`
}

// Capture copies every body of w and, when c is non-nil, the player's state.
func Capture(tick uint64, now float32, w *physics.World, c *movement.Controller) Snapshot {
	s := Snapshot{Tick: tick, Time: now, Bodies: make([]Body, 0, w.Len())}
	w.Each(func(b physics.Body) {
		s.Bodies = append(s.Bodies, Body{
			Handle:   b.Handle.String(),
			Tag:      b.Tag.String(),
			Position: b.Transform.Position,
			Rotation: b.Transform.Rotation,
			Scale:    b.Transform.Scale,
			Contact:  b.Event.Status.String(),
		})
	})
	if c != nil {
		tel := c.Telemetry()
		diag := c.Diagnostics()
		s.Player = &Player{
			Position:              tel.Position,
			Velocity:              tel.Velocity,
			Speed:                 tel.Speed,
			State:                 tel.State,
			Grounded:              tel.Grounded,
			Contact:               tel.Contact.String(),
			Respawns:              diag.Respawns,
			DepenetrationFailures: diag.DepenetrationFailures,
		}
	}
	return s
}
