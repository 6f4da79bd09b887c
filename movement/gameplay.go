package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/camera"
	"github.com/milk9111/boxcontroller/input"
)

// axisSnap zeroes direction components left over from float error in the
// camera basis.
const axisSnap = 1e-6

func (c *Controller) readInput(in input.Input, basis camera.Basis) {
	if c.tuning.JumpOnPress {
		c.jump = in.KeyPressed(input.KeyJump)
	} else {
		c.jump = in.KeyHeld(input.KeyJump)
	}
	c.crouch = in.KeyPressed(input.KeyCrouch)

	var forward, right float32
	if in.KeyHeld(input.KeyForward) {
		forward = 1
	} else if in.KeyHeld(input.KeyBack) {
		forward = -1
	}
	if in.KeyHeld(input.KeyLeft) {
		right = -1
	} else if in.KeyHeld(input.KeyRight) {
		right = 1
	}

	c.inputDir = mgl32.Vec2{}
	if forward == 0 && right == 0 {
		return
	}
	d := basis.Forward.Mul(forward).Add(basis.Right.Mul(right))
	flat := mgl32.Vec2{d.X(), d.Z()}
	if flat.LenSqr() == 0 {
		return
	}
	flat = flat.Normalize()
	for i := range flat {
		if math32.Abs(flat[i]) < axisSnap {
			flat[i] = 0
		}
	}
	c.inputDir = flat
}

func (c *Controller) updateVelocity(now float32) {
	t := c.tuning

	if !c.jump {
		c.applyFriction()
	}
	if c.grounded {
		if c.jump {
			c.applyJump()
		}
		c.applyCrouch(now)
	}

	if c.speed <= t.SprintSpeed && !isZero(c.inputDir) {
		c.direction = c.inputDir
		c.applyCappedMovement(now)
	}
	if !isZero(c.direction) {
		c.direction = c.direction.Normalize()
	}

	if c.speed > t.SprintSpeed && !c.grounded {
		c.applyAirControl()
	}

	if c.speed == 0 {
		c.direction = mgl32.Vec2{}
	}

	var vel mgl32.Vec2
	if !isZero(c.direction) {
		vel = c.direction.Normalize().Mul(c.speed)
	}
	c.velocity = mgl32.Vec3{vel.X(), c.velocity.Y(), vel.Y()}
}

// applyCappedMovement sets the speed for states capped at sprint speed while
// there is movement input.
func (c *Controller) applyCappedMovement(now float32) {
	t := c.tuning
	switch s := c.state.(type) {
	case Static:
		c.speed = t.WalkSpeed
		c.state = Walking{StartedAt: now}
	case Crouching:
		c.speed = t.CrouchWalkSpeed
		c.state = CrouchWalking{}
	case CrouchWalking:
		c.speed = t.CrouchWalkSpeed
	case Walking:
		c.speed = t.WalkSpeed
		if now-s.StartedAt >= t.RequiredWalkTime {
			c.speed = t.SprintSpeed
			c.state = Sprinting{}
		}
	case Sliding:
		c.speed = t.SprintSpeed
		if now-s.StartedAt > t.SlideTime {
			c.state = Sprinting{}
		}
	case Sprinting:
		c.speed = t.SprintSpeed
	case Uncapped, SpeedSliding:
		// Speed fell to the cap without friction catching it first.
		c.speed = t.SprintSpeed
		c.state = Sprinting{}
	}
}

func (c *Controller) applyJump() {
	t := c.tuning
	switch c.state.(type) {
	case Static, Walking:
		c.velocity[1] = t.NormalJump
	case Crouching, CrouchWalking:
		c.velocity[1] = t.CrouchJump
	case Sliding:
		c.velocity[1] = t.CrouchJump
		c.state = Sprinting{}
	case SpeedSliding:
		c.velocity[1] = t.CrouchJump
		c.state = Uncapped{}
	case Sprinting:
		c.velocity[1] = t.SprintJump
		c.speed += t.SprintJumpBoost
		c.state = Uncapped{}
	case Uncapped:
		c.velocity[1] = t.SprintJump
		c.speed += t.SprintJumpBoost
	}
}

func (c *Controller) applyCrouch(now float32) {
	t := c.tuning
	if c.crouch {
		switch c.state.(type) {
		case Static:
			c.state = Crouching{}
		case Crouching:
			c.state = Static{}
		case Walking:
			c.state = Sliding{StartedAt: now}
		case CrouchWalking:
			c.state = Walking{StartedAt: now}
		case Sprinting, Uncapped:
			c.speed *= t.SlideBoost
			c.state = SpeedSliding{StartedAt: now}
		case Sliding, SpeedSliding:
			c.state = Sprinting{}
		}
		return
	}

	switch s := c.state.(type) {
	case Sliding:
		c.speed = t.SprintSpeed
		if now-s.StartedAt > t.SlideTime {
			c.state = Sprinting{}
		}
	case SpeedSliding:
		if now-s.StartedAt > t.SlideTime {
			c.state = Uncapped{}
		}
	case Crouching:
		c.speed = t.CrouchWalkSpeed
		c.state = CrouchWalking{}
	}
}

func (c *Controller) applyFriction() {
	t := c.tuning
	if c.grounded {
		switch {
		case c.speed > t.SprintSpeed:
			if !sliding(c.state) {
				c.speed *= 1 - t.FastFriction
			}
		case isZero(c.inputDir):
			switch {
			case c.speed > t.WalkSpeed:
				c.speed *= 1 - t.Friction
			case c.speed > t.StopSpeed:
				if _, ok := c.state.(Sprinting); ok {
					c.state = Static{}
				}
				c.speed *= 1 - t.Friction
			default:
				c.speed = 0
				c.state = Static{}
			}
		}
	}

	if _, ok := c.state.(Uncapped); ok && c.speed <= t.SprintSpeed {
		c.state = Sprinting{}
	}
}

// applyAirControl steers an airborne player above sprint speed toward the
// input direction and bleeds speed the more the input opposes travel.
func (c *Controller) applyAirControl() {
	t := c.tuning
	if isZero(c.direction) || isZero(c.inputDir) || c.direction == c.inputDir {
		return
	}
	alignment := c.direction.Dot(c.inputDir)
	perpendicular := c.inputDir.Sub(c.direction.Mul(alignment))
	c.direction = c.direction.Add(perpendicular.Mul(t.AirSteer))

	divisor := 2 / (1 - t.MinOpposingMultiplier)
	if a := (alignment + 1) / divisor; a <= 1 {
		c.speed *= t.MinOpposingMultiplier + a
	}
	if c.speed < t.SprintSpeed {
		c.state = Sprinting{}
	}
}

func isZero(v mgl32.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}
