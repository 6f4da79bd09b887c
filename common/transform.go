package common

import "github.com/go-gl/mathgl/mgl32"

// Transform is the pose of a game object.
//
// Rotation holds Euler angles in degrees (see EulerToQuat). For box colliders
// Scale is the half-extents multiplier, so Scale{0.5, 1, 0.5} is a box one
// unit wide and two units tall.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// NewTransform returns an unrotated transform.
func NewTransform(position, scale mgl32.Vec3) Transform {
	return Transform{Position: position, Scale: scale}
}

// Translated returns a copy of t moved by delta.
func (t Transform) Translated(delta mgl32.Vec3) Transform {
	t.Position = t.Position.Add(delta)
	return t
}
