package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// edgeBias keeps face axes preferred over nearly equal edge axes, which
// would otherwise flip the normal between passes on resting contacts.
const edgeBias = 1e-4

type contact struct {
	depth  float32
	normal mgl32.Vec3 // from b toward a
	point  mgl32.Vec3 // deepest point of a inside b
}

// intersect runs the separating axis test. Boxes that only touch are not
// overlapping.
func intersect(a, b box) (contact, bool) {
	axes, n, faces := separatingAxes(a, b)
	delta := a.center.Sub(b.center)

	best := math32.Inf(1)
	var normal mgl32.Vec3
	for i := 0; i < n; i++ {
		axis := axes[i]
		d := delta.Dot(axis)
		overlap := a.radius(axis) + b.radius(axis) - math32.Abs(d)
		if overlap <= 0 {
			return contact{}, false
		}
		if i >= faces && overlap >= best-edgeBias {
			continue
		}
		if overlap < best {
			best = overlap
			if d < 0 {
				normal = axis.Mul(-1)
			} else {
				normal = axis
			}
		}
	}

	return contact{
		depth:  best,
		normal: normal,
		point:  a.deepest(normal.Mul(-1)),
	}, true
}
