package physics

import "github.com/jakecoffman/cp"

// bounds is the broad phase volume of a body: its world-aligned footprint on
// the XZ plane plus its vertical interval.
type bounds struct {
	footprint  cp.BB
	minY, maxY float32
}

func boundsOf(b box) bounds {
	ext := b.extents()
	return bounds{
		footprint: cp.NewBBForExtents(
			cp.Vector{X: float64(b.center.X()), Y: float64(b.center.Z())},
			float64(ext.X()),
			float64(ext.Z()),
		),
		minY: b.center.Y() - ext.Y(),
		maxY: b.center.Y() + ext.Y(),
	}
}

func (a bounds) overlaps(b bounds) bool {
	if a.maxY < b.minY || b.maxY < a.minY {
		return false
	}
	return a.footprint.Intersects(b.footprint)
}
