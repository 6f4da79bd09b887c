package movement

import (
	"errors"
	"fmt"

	"github.com/milk9111/boxcontroller/common"
)

var ErrInvalidTuning = errors.New("movement: invalid tuning")

// Tuning holds every movement constant. Speeds are world units per second.
// Friction factors are applied once per tick.
type Tuning struct {
	Gravity      float32 `yaml:"gravity"`
	Friction     float32 `yaml:"friction"`
	FastFriction float32 `yaml:"fast_friction"`
	// StopSpeed is the speed below which friction stops the player.
	StopSpeed float32 `yaml:"stop_speed"`

	CrouchWalkSpeed float32 `yaml:"crouch_walk_speed"`
	WalkSpeed       float32 `yaml:"walk_speed"`
	SprintSpeed     float32 `yaml:"sprint_speed"`

	SprintJumpBoost float32 `yaml:"sprint_jump_boost"`
	SlideBoost      float32 `yaml:"slide_boost"`

	CrouchJump float32 `yaml:"crouch_jump"`
	NormalJump float32 `yaml:"normal_jump"`
	SprintJump float32 `yaml:"sprint_jump"`

	RequiredWalkTime float32 `yaml:"required_walk_time"`
	SlideTime        float32 `yaml:"slide_time"`

	MinOpposingMultiplier float32 `yaml:"min_opposing_multiplier"`
	// AirSteer is the share of the perpendicular input blended into the travel
	// direction each airborne tick above sprint speed.
	AirSteer float32 `yaml:"air_steer"`

	Skin                  float32 `yaml:"skin"`
	GroundSeatVelocity    float32 `yaml:"ground_seat_velocity"`
	DepenetrationStep     float32 `yaml:"depenetration_step"`
	MaxDepenetrationSteps int     `yaml:"max_depenetration_steps"`
	KillPlaneY            float32 `yaml:"kill_plane_y"`

	// PreserveSlideSpeed slides the full blocked distance along the unit
	// tangent instead of projecting the remainder onto the contact plane.
	PreserveSlideSpeed bool `yaml:"preserve_slide_speed"`
	// JumpOnPress requires a fresh press of the jump key for each jump.
	JumpOnPress bool `yaml:"jump_on_press"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      60,
		Friction:     0.1,
		FastFriction: 0.015,
		StopSpeed:    1,

		CrouchWalkSpeed: 4,
		WalkSpeed:       8,
		SprintSpeed:     15,

		SprintJumpBoost: 2,
		SlideBoost:      1.2,

		CrouchJump: 20,
		NormalJump: 30,
		SprintJump: 25,

		RequiredWalkTime: 0.5,
		SlideTime:        1,

		MinOpposingMultiplier: 0.95,
		AirSteer:              0.03,

		Skin:                  0.02,
		GroundSeatVelocity:    -5,
		DepenetrationStep:     0.02,
		MaxDepenetrationSteps: 16,
		KillPlaneY:            -50,
	}
}

// Validate rejects tunings that would stall or destabilise the controller.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float32
	}{
		{"gravity", t.Gravity},
		{"walk_speed", t.WalkSpeed},
		{"sprint_speed", t.SprintSpeed},
		{"crouch_walk_speed", t.CrouchWalkSpeed},
		{"skin", t.Skin},
		{"depenetration_step", t.DepenetrationStep},
		{"slide_boost", t.SlideBoost},
	}
	for _, p := range positive {
		if !common.Finite(p.v) || p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}
	finite := []struct {
		name string
		v    float32
	}{
		{"sprint_jump_boost", t.SprintJumpBoost},
		{"crouch_jump", t.CrouchJump},
		{"normal_jump", t.NormalJump},
		{"sprint_jump", t.SprintJump},
		{"required_walk_time", t.RequiredWalkTime},
		{"slide_time", t.SlideTime},
		{"stop_speed", t.StopSpeed},
		{"air_steer", t.AirSteer},
		{"ground_seat_velocity", t.GroundSeatVelocity},
		{"kill_plane_y", t.KillPlaneY},
	}
	for _, f := range finite {
		if !common.Finite(f.v) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidTuning, f.name, f.v)
		}
	}
	if t.StopSpeed < 0 {
		return fmt.Errorf("%w: stop_speed must not be negative, got %v", ErrInvalidTuning, t.StopSpeed)
	}
	if t.AirSteer < 0 || t.AirSteer > 1 {
		return fmt.Errorf("%w: air_steer must be in [0,1], got %v", ErrInvalidTuning, t.AirSteer)
	}
	if t.GroundSeatVelocity >= 0 {
		return fmt.Errorf("%w: ground_seat_velocity must be negative, got %v", ErrInvalidTuning, t.GroundSeatVelocity)
	}
	if t.SprintSpeed < t.WalkSpeed {
		return fmt.Errorf("%w: sprint_speed %v below walk_speed %v", ErrInvalidTuning, t.SprintSpeed, t.WalkSpeed)
	}
	for name, f := range map[string]float32{"friction": t.Friction, "fast_friction": t.FastFriction} {
		if !common.Finite(f) || f < 0 || f >= 1 {
			return fmt.Errorf("%w: %s must be in [0,1), got %v", ErrInvalidTuning, name, f)
		}
	}
	if !common.Finite(t.MinOpposingMultiplier) || t.MinOpposingMultiplier <= 0 || t.MinOpposingMultiplier >= 1 {
		return fmt.Errorf("%w: min_opposing_multiplier must be in (0,1), got %v", ErrInvalidTuning, t.MinOpposingMultiplier)
	}
	if t.MaxDepenetrationSteps < 1 {
		return fmt.Errorf("%w: max_depenetration_steps must be at least 1", ErrInvalidTuning)
	}
	if t.RequiredWalkTime < 0 || t.SlideTime < 0 {
		return fmt.Errorf("%w: timers must not be negative", ErrInvalidTuning)
	}
	return nil
}
