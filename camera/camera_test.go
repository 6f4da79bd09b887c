package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/common"
)

func TestBasisIsHorizontalAndOrthonormal(t *testing.T) {
	for _, yaw := range []float32{0, 0.3, math32.Pi / 2, -2.1, 5} {
		r := &Rig{Yaw: yaw, Pitch: 1.2}
		b := r.Basis()
		if b.Forward.Y() != 0 || b.Right.Y() != 0 {
			t.Fatalf("yaw %v: basis not horizontal: %+v", yaw, b)
		}
		if !common.Approx(b.Forward.Len(), 1, 1e-5) || !common.Approx(b.Right.Len(), 1, 1e-5) {
			t.Fatalf("yaw %v: basis not unit: %+v", yaw, b)
		}
		if !common.Approx(b.Forward.Dot(b.Right), 0, 1e-5) {
			t.Fatalf("yaw %v: basis not orthogonal: %+v", yaw, b)
		}
	}
}

func TestZeroYawMatchesDefault(t *testing.T) {
	got := (&Rig{}).Basis()
	want := DefaultBasis()
	if !common.ApproxVec3(got.Forward, want.Forward, 1e-6) || !common.ApproxVec3(got.Right, want.Right, 1e-6) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPitchClamped(t *testing.T) {
	r := NewRig(1, mgl32.Vec3{})
	r.ApplyMouse(mgl32.Vec2{0, -1000}, 1)
	if r.Pitch > maxPitch || r.Pitch < maxPitch-1e-3 {
		t.Fatalf("pitch = %v, want clamped to %v", r.Pitch, maxPitch)
	}
	r.ApplyMouse(mgl32.Vec2{0, 5000}, 1)
	if r.Pitch != -maxPitch {
		t.Fatalf("pitch = %v, want %v", r.Pitch, -maxPitch)
	}
}

func TestEyeFollowsTarget(t *testing.T) {
	r := NewRig(1, mgl32.Vec3{0, 0.8, 0})
	r.Follow(mgl32.Vec3{1, 2, 3})
	if got := r.Eye(); got != (mgl32.Vec3{1, 2.8, 3}) {
		t.Fatalf("Eye = %v", got)
	}
}
