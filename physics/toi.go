package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// sweep returns the fraction of velocity a can travel before coming within
// skin of b. It intersects, over every separating axis, the time window in
// which the projections overlap once b is inflated by skin. A value of 1
// means no impact within the step.
func sweep(a box, velocity mgl32.Vec3, b box, skin float32) float32 {
	axes, n, _ := separatingAxes(a, b)
	delta := a.center.Sub(b.center)

	enter := math32.Inf(-1)
	exit := math32.Inf(1)
	for i := 0; i < n; i++ {
		axis := axes[i]
		d := delta.Dot(axis)
		s := velocity.Dot(axis)
		reach := a.radius(axis) + b.radius(axis) + skin

		if math32.Abs(s) < 1e-9 {
			if math32.Abs(d) >= reach {
				return 1
			}
			continue
		}
		t0 := (-reach - d) / s
		t1 := (reach - d) / s
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		enter = math32.Max(enter, t0)
		exit = math32.Min(exit, t1)
		if enter > exit {
			return 1
		}
	}

	if math32.IsNaN(enter) || math32.IsNaN(exit) {
		return 1
	}
	if exit < 0 || enter > 1 {
		return 1
	}
	if enter <= 0 {
		return 0
	}
	return enter
}
