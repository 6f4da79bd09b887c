package physics

import "github.com/go-gl/mathgl/mgl32"

// ContactStatus is the per-body contact transition computed by ResolveContacts.
type ContactStatus uint8

const (
	StatusNone ContactStatus = iota
	StatusEnter
	StatusStay
	StatusLeave
)

func (s ContactStatus) String() string {
	switch s {
	case StatusEnter:
		return "enter"
	case StatusStay:
		return "stay"
	case StatusLeave:
		return "leave"
	default:
		return "none"
	}
}

// Touching reports whether the status describes an active contact.
func (s ContactStatus) Touching() bool {
	return s == StatusEnter || s == StatusStay
}

// CollisionEvent is the last computed contact state of a body. A body keeps a
// single event per pass even when it overlaps several others.
type CollisionEvent struct {
	Status ContactStatus
	// Depth is the non-negative penetration depth.
	Depth float32
	// Normal points from the other body toward this one.
	Normal mgl32.Vec3
	// Point is the deepest point of this body inside the other.
	Point    mgl32.Vec3
	Other    Handle
	OtherTag Tag
}

type pairContact struct {
	depth  float32
	normal mgl32.Vec3
	point  mgl32.Vec3
	other  Handle
	tag    Tag
}

// advance computes the event that follows prev given this pass's contact.
// A Leave followed by a fresh touch re-enters rather than staying, so a
// contact that drops out for one pass is reported as a new one.
func advance(prev CollisionEvent, c *pairContact) CollisionEvent {
	if c == nil {
		if prev.Status.Touching() {
			next := prev
			next.Status = StatusLeave
			return next
		}
		return CollisionEvent{}
	}

	next := CollisionEvent{
		Depth:    c.depth,
		Normal:   c.normal,
		Point:    c.point,
		Other:    c.other,
		OtherTag: c.tag,
	}
	switch prev.Status {
	case StatusEnter, StatusStay:
		next.Status = StatusStay
	default:
		next.Status = StatusEnter
	}
	return next
}
