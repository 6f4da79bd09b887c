package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	Up    = mgl32.Vec3{0, 1, 0}
	Zero3 = mgl32.Vec3{}
)

// SafeNormalize returns v scaled to unit length, or the zero vector when v is
// shorter than Epsilon.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon || !Finite(l) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Horizontal drops the Y component.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// FiniteVec3 reports whether every component of v is finite.
func FiniteVec3(v mgl32.Vec3) bool {
	return Finite(v[0]) && Finite(v[1]) && Finite(v[2])
}

// ApproxVec3 compares two vectors component-wise.
func ApproxVec3(a, b mgl32.Vec3, eps float32) bool {
	return Approx(a[0], b[0], eps) && Approx(a[1], b[1], eps) && Approx(a[2], b[2], eps)
}

// EulerToQuat builds an orientation from Euler angles in degrees. The angles
// are applied as successive quaternion multiplications in X, Y, Z order.
// The order is not commutative; changing it rotates colliders differently.
func EulerToQuat(degrees mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(degrees.X()), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(degrees.Y()), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(degrees.Z()), mgl32.Vec3{0, 0, 1})
	return qx.Mul(qy).Mul(qz).Normalize()
}

// AbsVec3 returns the component-wise absolute value.
func AbsVec3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}
