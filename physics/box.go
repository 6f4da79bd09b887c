package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/common"
)

// box is an oriented box: axes are the rotated local X, Y and Z unit vectors
// and half holds the half-extents along each of them.
type box struct {
	center mgl32.Vec3
	axes   [3]mgl32.Vec3
	half   mgl32.Vec3
}

func newBox(t common.Transform) box {
	q := common.EulerToQuat(t.Rotation)
	return box{
		center: t.Position,
		axes: [3]mgl32.Vec3{
			q.Rotate(mgl32.Vec3{1, 0, 0}),
			q.Rotate(mgl32.Vec3{0, 1, 0}),
			q.Rotate(mgl32.Vec3{0, 0, 1}),
		},
		half: t.Scale,
	}
}

// radius is the half-length of the box projected onto a unit axis.
func (b box) radius(axis mgl32.Vec3) float32 {
	return math32.Abs(b.axes[0].Dot(axis))*b.half[0] +
		math32.Abs(b.axes[1].Dot(axis))*b.half[1] +
		math32.Abs(b.axes[2].Dot(axis))*b.half[2]
}

// extents returns the half-size of the world-aligned bounding box.
func (b box) extents() mgl32.Vec3 {
	return mgl32.Vec3{
		b.radius(mgl32.Vec3{1, 0, 0}),
		b.radius(mgl32.Vec3{0, 1, 0}),
		b.radius(mgl32.Vec3{0, 0, 1}),
	}
}

func (b box) vertices() [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := 0; i < 8; i++ {
		v := b.center
		for k := 0; k < 3; k++ {
			s := b.half[k]
			if i&(1<<k) != 0 {
				s = -s
			}
			v = v.Add(b.axes[k].Mul(s))
		}
		out[i] = v
	}
	return out
}

// deepest averages the vertices that reach furthest along dir. Face and edge
// contacts yield the center of the touching feature instead of an arbitrary
// corner.
func (b box) deepest(dir mgl32.Vec3) mgl32.Vec3 {
	const featureTolerance = 1e-4
	verts := b.vertices()
	best := math32.Inf(-1)
	for _, v := range verts {
		if d := v.Dot(dir); d > best {
			best = d
		}
	}
	var sum mgl32.Vec3
	n := 0
	for _, v := range verts {
		if v.Dot(dir) >= best-featureTolerance {
			sum = sum.Add(v)
			n++
		}
	}
	return sum.Mul(1 / float32(n))
}

// separatingAxes lists the 15 candidate axes of the separating axis test:
// the face normals of both boxes and the non-degenerate pairwise edge cross
// products. faces reports how many leading entries are face normals.
func separatingAxes(a, b box) (axes [15]mgl32.Vec3, n int, faces int) {
	for i := 0; i < 3; i++ {
		axes[n] = a.axes[i]
		n++
	}
	for i := 0; i < 3; i++ {
		axes[n] = b.axes[i]
		n++
	}
	faces = n
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c := a.axes[i].Cross(b.axes[j])
			if c.LenSqr() < 1e-6 {
				continue
			}
			axes[n] = c.Normalize()
			n++
		}
	}
	return axes, n, faces
}
