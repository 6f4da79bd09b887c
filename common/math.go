package common

import "github.com/chewxy/math32"

// Epsilon is the default tolerance for float32 comparisons in world units.
const Epsilon float32 = 1e-5

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approx reports whether a and b differ by at most eps.
func Approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// MoveToward steps current toward target by at most maxDelta without overshooting.
func MoveToward(current, target, maxDelta float32) float32 {
	if math32.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
