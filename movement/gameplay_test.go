package movement

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCrouchTransitions(t *testing.T) {
	tuning := DefaultTuning()
	tests := []struct {
		name      string
		from      MovementState
		speed     float32
		crouch    bool
		now       float32
		want      MovementState
		wantSpeed float32
	}{
		{name: "static crouches", from: Static{}, crouch: true, want: Crouching{}},
		{name: "crouching stands", from: Crouching{}, crouch: true, want: Static{}},
		{name: "walking slides", from: Walking{StartedAt: 1}, speed: 8, crouch: true, now: 2, want: Sliding{StartedAt: 2}, wantSpeed: 8},
		{name: "crouch walking stands up", from: CrouchWalking{}, speed: 4, crouch: true, now: 3, want: Walking{StartedAt: 3}, wantSpeed: 4},
		{name: "sprinting speed slides", from: Sprinting{}, speed: 15, crouch: true, now: 1, want: SpeedSliding{StartedAt: 1}, wantSpeed: 18},
		{name: "uncapped speed slides", from: Uncapped{}, speed: 20, crouch: true, now: 1, want: SpeedSliding{StartedAt: 1}, wantSpeed: 24},
		{name: "slide cancelled", from: Sliding{StartedAt: 0}, speed: 15, crouch: true, want: Sprinting{}, wantSpeed: 15},
		{name: "slide holds sprint speed", from: Sliding{StartedAt: 0}, speed: 12, now: 0.5, want: Sliding{StartedAt: 0}, wantSpeed: 15},
		{name: "slide expires", from: Sliding{StartedAt: 0}, speed: 15, now: 1.5, want: Sprinting{}, wantSpeed: 15},
		{name: "speed slide expires", from: SpeedSliding{StartedAt: 0}, speed: 18, now: 1.5, want: Uncapped{}, wantSpeed: 18},
		{name: "crouch walk from crouch", from: Crouching{}, want: CrouchWalking{}, wantSpeed: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Controller{tuning: tuning, state: tt.from, speed: tt.speed, crouch: tt.crouch}
			c.applyCrouch(tt.now)
			if c.state != tt.want {
				t.Fatalf("state = %#v, want %#v", c.state, tt.want)
			}
			if !approx(c.speed, tt.wantSpeed) {
				t.Fatalf("speed = %v, want %v", c.speed, tt.wantSpeed)
			}
		})
	}
}

func TestJumpImpulses(t *testing.T) {
	tuning := DefaultTuning()
	tests := []struct {
		from      MovementState
		speed     float32
		wantVY    float32
		want      MovementState
		wantSpeed float32
	}{
		{from: Static{}, wantVY: 30, want: Static{}},
		{from: Walking{StartedAt: 1}, speed: 8, wantVY: 30, want: Walking{StartedAt: 1}, wantSpeed: 8},
		{from: Crouching{}, wantVY: 20, want: Crouching{}},
		{from: Sliding{StartedAt: 1}, speed: 15, wantVY: 20, want: Sprinting{}, wantSpeed: 15},
		{from: SpeedSliding{StartedAt: 1}, speed: 18, wantVY: 20, want: Uncapped{}, wantSpeed: 18},
		{from: Sprinting{}, speed: 15, wantVY: 25, want: Uncapped{}, wantSpeed: 17},
		{from: Uncapped{}, speed: 17, wantVY: 25, want: Uncapped{}, wantSpeed: 19},
	}
	for _, tt := range tests {
		t.Run(tt.from.Name(), func(t *testing.T) {
			c := &Controller{tuning: tuning, state: tt.from, speed: tt.speed}
			c.applyJump()
			if c.velocity.Y() != tt.wantVY {
				t.Fatalf("vy = %v, want %v", c.velocity.Y(), tt.wantVY)
			}
			if c.state != tt.want || !approx(c.speed, tt.wantSpeed) {
				t.Fatalf("state/speed = %#v/%v, want %#v/%v", c.state, c.speed, tt.want, tt.wantSpeed)
			}
		})
	}
}

func TestAirControlBleedsOpposingSpeed(t *testing.T) {
	tests := []struct {
		name      string
		input     mgl32.Vec2
		wantSpeed float32
	}{
		{name: "aligned", input: mgl32.Vec2{1, 0}, wantSpeed: 20},
		{name: "perpendicular", input: mgl32.Vec2{0, 1}, wantSpeed: 20 * 0.975},
		{name: "opposing", input: mgl32.Vec2{-1, 0}, wantSpeed: 20 * 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Controller{
				tuning:    DefaultTuning(),
				state:     Uncapped{},
				speed:     20,
				direction: mgl32.Vec2{1, 0},
				inputDir:  tt.input,
			}
			c.applyAirControl()
			if !approx(c.speed, tt.wantSpeed) {
				t.Fatalf("speed = %v, want %v", c.speed, tt.wantSpeed)
			}
		})
	}
}

func TestAirControlDropsToSprinting(t *testing.T) {
	c := &Controller{
		tuning:    DefaultTuning(),
		state:     Uncapped{},
		speed:     15.5,
		direction: mgl32.Vec2{1, 0},
		inputDir:  mgl32.Vec2{-1, 0},
	}
	c.applyAirControl()
	if _, ok := c.state.(Sprinting); !ok {
		t.Fatalf("state = %s, want sprinting", c.state.Name())
	}
}

func TestUncappedSettlesToSprinting(t *testing.T) {
	c := &Controller{tuning: DefaultTuning(), state: Uncapped{}, speed: 16, grounded: true, inputDir: mgl32.Vec2{1, 0}}
	for i := 0; i < 10; i++ {
		c.applyFriction()
	}
	if c.speed > 15 {
		t.Fatalf("speed = %v, want decayed to sprint speed", c.speed)
	}
	if _, ok := c.state.(Sprinting); !ok {
		t.Fatalf("state = %s, want sprinting", c.state.Name())
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		ok     bool
	}{
		{name: "default", mutate: func(*Tuning) {}, ok: true},
		{name: "zero skin", mutate: func(t *Tuning) { t.Skin = 0 }},
		{name: "sprint below walk", mutate: func(t *Tuning) { t.SprintSpeed = 4 }},
		{name: "full friction", mutate: func(t *Tuning) { t.Friction = 1 }},
		{name: "no depenetration budget", mutate: func(t *Tuning) { t.MaxDepenetrationSteps = 0 }},
		{name: "opposing multiplier one", mutate: func(t *Tuning) { t.MinOpposingMultiplier = 1 }},
		{name: "nan opposing multiplier", mutate: func(t *Tuning) { t.MinOpposingMultiplier = math32.NaN() }},
		{name: "nan friction", mutate: func(t *Tuning) { t.Friction = math32.NaN() }},
		{name: "nan stop speed", mutate: func(t *Tuning) { t.StopSpeed = math32.NaN() }},
		{name: "negative stop speed", mutate: func(t *Tuning) { t.StopSpeed = -1 }},
		{name: "nan air steer", mutate: func(t *Tuning) { t.AirSteer = math32.NaN() }},
		{name: "air steer above one", mutate: func(t *Tuning) { t.AirSteer = 1.5 }},
		{name: "upward ground seat", mutate: func(t *Tuning) { t.GroundSeatVelocity = 1 }},
		{name: "infinite kill plane", mutate: func(t *Tuning) { t.KillPlaneY = math32.Inf(-1) }},
		{name: "nan jump", mutate: func(t *Tuning) { t.NormalJump = math32.NaN() }},
		{name: "no air steer", mutate: func(t *Tuning) { t.AirSteer = 0 }, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			err := tuning.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("err = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}
