package movement

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/camera"
	"github.com/milk9111/boxcontroller/common"
	"github.com/milk9111/boxcontroller/input"
	"github.com/milk9111/boxcontroller/physics"
)

// Diagnostics counts recoverable events observed by the controller.
type Diagnostics struct {
	Ticks uint64
	// DepenetrationNudges is the total number of upward nudges applied.
	DepenetrationNudges int
	// DepenetrationFailures counts ticks whose nudge budget ran out and whose
	// position was restored to the pre-move pose.
	DepenetrationFailures int
	Respawns              int
}

// Telemetry is the per tick debug view of the player.
type Telemetry struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Speed    float32
	State    string
	Grounded bool
	Contact  physics.ContactStatus
}

// Controller moves one player body through a physics world with move and
// slide and runs the gameplay movement state machine.
type Controller struct {
	world  *physics.World
	handle physics.Handle
	tuning Tuning

	transform common.Transform
	spawn     common.Transform

	velocity mgl32.Vec3
	speed    float32
	// direction and inputDir are horizontal (x, z) directions.
	direction mgl32.Vec2
	inputDir  mgl32.Vec2
	state     MovementState
	grounded  bool
	jump      bool
	crouch    bool

	ground physics.CollisionEvent
	diag   Diagnostics
}

// New registers a player body at spawn. spawn.Scale holds the half-extents.
func New(world *physics.World, spawn common.Transform, tuning Tuning) (*Controller, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	h, err := world.Register(spawn, physics.TagPlayer)
	if err != nil {
		return nil, fmt.Errorf("movement: register player: %w", err)
	}
	return &Controller{
		world:     world,
		handle:    h,
		tuning:    tuning,
		transform: spawn,
		spawn:     spawn,
		state:     Static{},
	}, nil
}

// Tick advances the player by dt seconds. now is the clock's elapsed time and
// times the movement states.
func (c *Controller) Tick(dt, now float32, in input.Input, basis camera.Basis) {
	c.diag.Ticks++
	if !common.Finite(dt) || dt < 0 {
		dt = 0
	}

	if c.transform.Position.Y() < c.tuning.KillPlaneY {
		c.Respawn()
		return
	}

	lastGood := c.transform.Position
	c.moveHorizontal(dt)
	c.depenetrate(lastGood)
	c.moveVertical(dt)

	c.readInput(in, basis)
	c.updateVelocity(now)
}

// Respawn puts the player back at the spawn pose with no motion.
func (c *Controller) Respawn() {
	c.transform = c.spawn
	c.velocity = mgl32.Vec3{}
	c.speed = 0
	c.direction = mgl32.Vec2{}
	c.inputDir = mgl32.Vec2{}
	c.state = Static{}
	c.grounded = false
	c.ground = physics.CollisionEvent{}
	c.diag.Respawns++
	c.syncAndResolve()
}

func (c *Controller) moveHorizontal(dt float32) {
	step := mgl32.Vec3{c.velocity.X() * dt, 0, c.velocity.Z() * dt}
	c.transform.Position = c.transform.Position.Add(step)
	c.syncAndResolve()

	ev := c.Event()
	if ev.Status != physics.StatusEnter || step.LenSqr() == 0 {
		return
	}

	c.transform.Position = c.transform.Position.Sub(step)
	toi := c.world.TimeOfImpact(c.handle, c.transform, step, ev.Other, c.tuning.Skin)
	c.transform.Position = c.transform.Position.Add(step.Mul(toi))
	c.transform.Position = c.transform.Position.Add(c.slide(step, toi, ev.Normal))
}

// slide redirects the part of step left after the time of impact along the
// contact plane.
func (c *Controller) slide(step mgl32.Vec3, toi float32, normal mgl32.Vec3) mgl32.Vec3 {
	if c.tuning.PreserveSlideSpeed {
		dir := step.Normalize()
		tangent := dir.Sub(normal.Mul(normal.Dot(dir)))
		if tangent.LenSqr() < common.Epsilon*common.Epsilon {
			return mgl32.Vec3{}
		}
		return tangent.Normalize().Mul(step.Len() * (1 - toi))
	}
	rest := step.Mul(1 - toi)
	return rest.Sub(normal.Mul(normal.Dot(rest)))
}

// depenetrate nudges the body upward while it is still inside a body it was
// already touching. When the budget runs out the body goes back to lastGood.
func (c *Controller) depenetrate(lastGood mgl32.Vec3) {
	c.syncAndResolve()
	for nudges := 0; c.Event().Status == physics.StatusStay; nudges++ {
		if nudges == c.tuning.MaxDepenetrationSteps {
			log.Printf("movement: depenetration gave up after %d nudges at %v; restoring %v",
				nudges, c.transform.Position, lastGood)
			c.diag.DepenetrationFailures++
			c.transform.Position = lastGood
			c.syncAndResolve()
			return
		}
		c.transform.Position[1] += c.tuning.DepenetrationStep
		c.diag.DepenetrationNudges++
		c.syncAndResolve()
	}
}

func (c *Controller) moveVertical(dt float32) {
	step := mgl32.Vec3{0, c.velocity.Y() * dt, 0}
	c.transform.Position = c.transform.Position.Add(step)
	c.syncAndResolve()

	ev := c.Event()
	if ev.Status == physics.StatusEnter {
		c.transform.Position = c.transform.Position.Sub(step)
		toi := c.world.TimeOfImpact(c.handle, c.transform, step, ev.Other, c.tuning.Skin)
		c.transform.Position = c.transform.Position.Add(step.Mul(toi))
		if step.Y() <= 0 {
			c.velocity[1] = c.tuning.GroundSeatVelocity
			c.setGrounded(true, ev)
		} else {
			// Head hit: stop rising and let gravity take over next tick.
			c.velocity[1] = 0
			c.setGrounded(false, ev)
		}
	} else {
		c.velocity[1] -= c.tuning.Gravity * dt
		c.setGrounded(false, ev)
	}

	c.syncAndResolve()
}

// setGrounded records this tick's grounded flag and advances the ground
// contact the same way the world advances body events.
func (c *Controller) setGrounded(grounded bool, ev physics.CollisionEvent) {
	c.grounded = grounded
	prev := c.ground.Status
	switch {
	case grounded:
		c.ground = ev
		if prev.Touching() {
			c.ground.Status = physics.StatusStay
		} else {
			c.ground.Status = physics.StatusEnter
		}
	case prev.Touching():
		c.ground.Status = physics.StatusLeave
	default:
		c.ground = physics.CollisionEvent{}
	}
}

func (c *Controller) syncAndResolve() {
	if err := c.world.SyncPosition(c.handle, c.transform); err != nil {
		log.Printf("movement: sync player: %v", err)
		return
	}
	c.world.ResolveContacts()
}

// SetTuning swaps the tuning after validating it.
func (c *Controller) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tuning = t
	return nil
}

func (c *Controller) Tuning() Tuning { return c.tuning }

func (c *Controller) Handle() physics.Handle { return c.handle }

func (c *Controller) Transform() common.Transform { return c.transform }

func (c *Controller) Position() mgl32.Vec3 { return c.transform.Position }

func (c *Controller) Velocity() mgl32.Vec3 { return c.velocity }

func (c *Controller) Speed() float32 { return c.speed }

func (c *Controller) State() MovementState { return c.state }

func (c *Controller) Grounded() bool { return c.grounded }

func (c *Controller) Diagnostics() Diagnostics { return c.diag }

// Event is the player body's last computed contact event in the world. A
// player at rest reads Leave here after every tick, because the vertical move
// leaves it a skin above the platform; the landing pass in the next tick
// reports Enter again. Use GroundContact for a steady Enter, Stay, Leave
// sequence while grounded.
func (c *Controller) Event() physics.CollisionEvent {
	ev, _ := c.world.Event(c.handle)
	return ev
}

// GroundContact is the contact that last grounded the player. Its status runs
// Enter on landing, Stay while the player keeps landing on consecutive ticks
// and Leave on the first airborne tick.
func (c *Controller) GroundContact() physics.CollisionEvent { return c.ground }

func (c *Controller) Telemetry() Telemetry {
	return Telemetry{
		Position: c.transform.Position,
		Velocity: c.velocity,
		Speed:    c.speed,
		State:    c.state.Name(),
		Grounded: c.grounded,
		Contact:  c.ground.Status,
	}
}
