package physics

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/boxcontroller/common"
)

// World owns every registered box collider and answers overlap and time of
// impact queries. It is not safe for concurrent use; a tick's sync, resolve
// and query calls are expected to run back to back on one goroutine.
type World struct {
	slots  slotStore
	bodies []body // indexed by slot-1; dead slots keep their last body

	// dirty is set by any pose change and cleared by ResolveContacts, which
	// makes repeated resolves without an intervening sync a no-op.
	dirty bool

	bounds   []bounds
	contacts []*pairContact
	scratch  []pairContact
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// Register adds a box collider built from t, using t.Scale as half-extents.
func (w *World) Register(t common.Transform, tag Tag) (Handle, error) {
	if err := CheckScale(t.Scale); err != nil {
		return 0, err
	}
	h := w.slots.create()
	b := body{
		handle:    h,
		tag:       tag,
		groups:    tag.Groups(),
		transform: t,
		box:       newBox(t),
	}
	idx := int(h.slot() - 1)
	if idx < len(w.bodies) {
		w.bodies[idx] = b
	} else {
		w.bodies = append(w.bodies, b)
	}
	w.dirty = true
	return h, nil
}

// Unregister removes a body. Handles to it become stale.
func (w *World) Unregister(h Handle) error {
	if _, err := w.lookup(h); err != nil {
		return err
	}
	w.slots.destroy(h)
	w.bodies[h.slot()-1] = body{}
	w.dirty = true
	return nil
}

// SyncPosition writes the body's pose ahead of the next ResolveContacts.
func (w *World) SyncPosition(h Handle, t common.Transform) error {
	b, err := w.lookup(h)
	if err != nil {
		return err
	}
	if err := CheckScale(t.Scale); err != nil {
		return err
	}
	b.transform = t
	b.box = newBox(t)
	w.dirty = true
	return nil
}

// ResolveContacts recomputes every overlapping pair for the current poses and
// advances each body's CollisionEvent. A body touching several others keeps
// the first pair found in ascending slot order.
func (w *World) ResolveContacts() {
	if !w.dirty {
		return
	}
	w.dirty = false

	n := len(w.bodies)
	w.bounds = w.bounds[:0]
	w.contacts = w.contacts[:0]
	if cap(w.scratch) < n {
		w.scratch = make([]pairContact, n)
	}
	w.scratch = w.scratch[:n]
	for i := 0; i < n; i++ {
		w.contacts = append(w.contacts, nil)
		w.bounds = append(w.bounds, boundsOf(w.bodies[i].box))
	}

	for i := 0; i < n; i++ {
		a := &w.bodies[i]
		if !w.slots.alive(a.handle) {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := &w.bodies[j]
			if !w.slots.alive(b.handle) || !a.groups.Test(b.groups) {
				continue
			}
			if w.contacts[i] != nil && w.contacts[j] != nil {
				continue
			}
			if !w.bounds[i].overlaps(w.bounds[j]) {
				continue
			}
			c, ok := intersect(a.box, b.box)
			if !ok {
				continue
			}
			if w.contacts[i] == nil {
				w.scratch[i] = pairContact{depth: c.depth, normal: c.normal, point: c.point, other: b.handle, tag: b.tag}
				w.contacts[i] = &w.scratch[i]
			}
			if w.contacts[j] == nil {
				reversed := c.normal.Mul(-1)
				w.scratch[j] = pairContact{depth: c.depth, normal: reversed, point: b.box.deepest(c.normal), other: a.handle, tag: a.tag}
				w.contacts[j] = &w.scratch[j]
			}
		}
	}

	for i := 0; i < n; i++ {
		b := &w.bodies[i]
		if !w.slots.alive(b.handle) {
			continue
		}
		b.event = advance(b.event, w.contacts[i])
	}
}

// TimeOfImpact returns the largest fraction t in [0,1] such that moving the
// body, posed at t, by velocity*t leaves it within skin of other. It returns
// 1 when no impact happens during the step; that is not an error.
func (w *World) TimeOfImpact(h Handle, t common.Transform, velocity mgl32.Vec3, other Handle, skin float32) float32 {
	self, err := w.lookup(h)
	if err != nil {
		return 1
	}
	o, err := w.lookup(other)
	if err != nil {
		return 1
	}
	shape := newBox(common.Transform{Position: t.Position, Rotation: t.Rotation, Scale: self.transform.Scale})
	return sweep(shape, velocity, o.box, skin)
}

// Event returns the body's last computed CollisionEvent.
func (w *World) Event(h Handle) (CollisionEvent, bool) {
	b, err := w.lookup(h)
	if err != nil {
		return CollisionEvent{}, false
	}
	return b.event, true
}

// Tag returns the body's role.
func (w *World) Tag(h Handle) (Tag, bool) {
	b, err := w.lookup(h)
	if err != nil {
		return 0, false
	}
	return b.tag, true
}

// Transform returns the pose last written by Register or SyncPosition.
func (w *World) Transform(h Handle) (common.Transform, bool) {
	b, err := w.lookup(h)
	if err != nil {
		return common.Transform{}, false
	}
	return b.transform, true
}

// Alive reports whether h refers to a registered body.
func (w *World) Alive(h Handle) bool {
	return w.slots.alive(h)
}

// Len returns the number of registered bodies.
func (w *World) Len() int {
	count := 0
	for i := range w.bodies {
		if w.slots.alive(w.bodies[i].handle) {
			count++
		}
	}
	return count
}

// Each calls fn for every registered body in ascending slot order.
func (w *World) Each(fn func(Body)) {
	for i := range w.bodies {
		b := &w.bodies[i]
		if !w.slots.alive(b.handle) {
			continue
		}
		fn(Body{Handle: b.handle, Tag: b.tag, Transform: b.transform, Event: b.event})
	}
}

func (w *World) lookup(h Handle) (*body, error) {
	if !w.slots.alive(h) {
		if strictHandles {
			panic(fmt.Errorf("%w: %s", ErrStaleHandle, h))
		}
		log.Printf("physics: ignoring stale handle %s", h)
		return nil, fmt.Errorf("%w: %s", ErrStaleHandle, h)
	}
	return &w.bodies[h.slot()-1], nil
}
