package movement

// MovementState is the gameplay movement state. The set of variants is
// closed; only the time gated ones carry the time they were entered.
type MovementState interface {
	Name() string
	movementState()
}

type Static struct{}

type Crouching struct{}

type CrouchWalking struct{}

type Walking struct{ StartedAt float32 }

type Sprinting struct{}

type Sliding struct{ StartedAt float32 }

type SpeedSliding struct{ StartedAt float32 }

// Uncapped is travel above sprint speed, reached by boosted jumps and slides.
type Uncapped struct{}

func (Static) Name() string        { return "static" }
func (Crouching) Name() string     { return "crouching" }
func (CrouchWalking) Name() string { return "crouch_walking" }
func (Walking) Name() string       { return "walking" }
func (Sprinting) Name() string     { return "sprinting" }
func (Sliding) Name() string       { return "sliding" }
func (SpeedSliding) Name() string  { return "speed_sliding" }
func (Uncapped) Name() string      { return "uncapped" }

func (Static) movementState()        {}
func (Crouching) movementState()     {}
func (CrouchWalking) movementState() {}
func (Walking) movementState()       {}
func (Sprinting) movementState()     {}
func (Sliding) movementState()       {}
func (SpeedSliding) movementState()  {}
func (Uncapped) movementState()      {}

// sliding reports whether s is either slide variant.
func sliding(s MovementState) bool {
	switch s.(type) {
	case Sliding, SpeedSliding:
		return true
	}
	return false
}
