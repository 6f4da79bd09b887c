package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/common"
)

// maxPitch keeps the look direction just short of straight up or down.
const maxPitch = math32.Pi/2 - 1e-4

// Basis holds the camera's horizontal unit forward and right vectors.
type Basis struct {
	Forward mgl32.Vec3
	Right   mgl32.Vec3
}

// DefaultBasis looks down +X with +Z to the right, matching a zero yaw.
func DefaultBasis() Basis {
	return Basis{Forward: mgl32.Vec3{1, 0, 0}, Right: mgl32.Vec3{0, 0, 1}}
}

// Rig is a first person camera that follows a target. Angles are radians.
type Rig struct {
	Yaw         float32
	Pitch       float32
	Sensitivity float32
	// Offset is added to the followed position to get the eye.
	Offset mgl32.Vec3

	target mgl32.Vec3
}

func NewRig(sensitivity float32, offset mgl32.Vec3) *Rig {
	return &Rig{Sensitivity: sensitivity, Offset: offset}
}

// ApplyMouse turns the rig by a mouse delta scaled by sensitivity and dt.
// Moving the mouse up looks up.
func (r *Rig) ApplyMouse(delta mgl32.Vec2, dt float32) {
	r.Yaw += delta.X() * r.Sensitivity * dt
	r.Pitch = common.Clamp(r.Pitch-delta.Y()*r.Sensitivity*dt, -maxPitch, maxPitch)
}

func (r *Rig) Follow(position mgl32.Vec3) {
	r.target = position
}

// Basis returns the horizontal forward and right vectors for the current yaw.
// Pitch never tilts the basis.
func (r *Rig) Basis() Basis {
	sin, cos := math32.Sincos(r.Yaw)
	return Basis{
		Forward: mgl32.Vec3{cos, 0, sin},
		Right:   mgl32.Vec3{-sin, 0, cos},
	}
}

// Look is the full view direction including pitch.
func (r *Rig) Look() mgl32.Vec3 {
	ys, yc := math32.Sincos(r.Yaw)
	ps, pc := math32.Sincos(r.Pitch)
	return mgl32.Vec3{yc * pc, ps, ys * pc}
}

func (r *Rig) Eye() mgl32.Vec3 {
	return r.target.Add(r.Offset)
}
