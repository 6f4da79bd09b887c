package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name                   string
		current, target, delta float32
		want                   float32
	}{
		{"step_up", 0, 10, 3, 3},
		{"step_down", 10, 0, 3, 7},
		{"no_overshoot", 9, 10, 3, 10},
		{"at_target", 5, 5, 1, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MoveToward(c.current, c.target, c.delta); got != c.want {
				t.Fatalf("MoveToward(%v, %v, %v) = %v, want %v", c.current, c.target, c.delta, got, c.want)
			}
		})
	}
}

func TestSafeNormalizeZero(t *testing.T) {
	if got := SafeNormalize(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
	got := SafeNormalize(mgl32.Vec3{3, 0, 4})
	if !ApproxVec3(got, mgl32.Vec3{0.6, 0, 0.8}, 1e-6) {
		t.Fatalf("unexpected unit vector %v", got)
	}
}

func TestEulerToQuatOrder(t *testing.T) {
	// X 90 then Y 90: with successive multiplication qx*qy the local +Z axis
	// ends up on world +X; the reversed order lands it on world -Y.
	q := EulerToQuat(mgl32.Vec3{90, 90, 0})
	got := q.Rotate(mgl32.Vec3{0, 0, 1})
	want := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})).
		Rotate(mgl32.Vec3{0, 0, 1})
	if !ApproxVec3(got, want, 1e-5) {
		t.Fatalf("rotation order mismatch: got %v want %v", got, want)
	}
	reversed := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})).
		Rotate(mgl32.Vec3{0, 0, 1})
	if ApproxVec3(got, reversed, 1e-3) {
		t.Fatalf("X-then-Y composition should differ from Y-then-X, both gave %v", got)
	}
}

func TestTranslated(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 1, 1})
	moved := tr.Translated(mgl32.Vec3{1, -2, 0})
	if moved.Position != (mgl32.Vec3{2, 0, 3}) {
		t.Fatalf("unexpected position %v", moved.Position)
	}
	if tr.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("Translated must not mutate the receiver")
	}
}
