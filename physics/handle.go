package physics

import "strconv"

// Handle identifies a body registered in a World. The low 32 bits hold the
// slot index (1-based) and the high 32 bits the slot generation, so a handle
// kept after its body was unregistered never aliases a newer body.
type Handle uint64

const slotBits = 32

func makeHandle(slot, gen uint32) Handle {
	return Handle(uint64(gen)<<slotBits | uint64(slot))
}

func (h Handle) slot() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(uint64(h) >> slotBits)
}

// Valid reports whether h is non-null. It does not check liveness.
func (h Handle) Valid() bool {
	return h.slot() > 0
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h.slot()), 10) + "v" + strconv.FormatUint(uint64(h.generation()), 10)
}

// slotStore tracks slot generations and free slots.
type slotStore struct {
	gen  []uint32
	live []bool
	free []uint32
}

func (s *slotStore) create() Handle {
	var slot uint32
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.live = append(s.live, false)
		slot = uint32(len(s.gen))
	}
	s.live[slot-1] = true
	return makeHandle(slot, s.gen[slot-1])
}

func (s *slotStore) destroy(h Handle) bool {
	if !s.alive(h) {
		return false
	}
	idx := h.slot() - 1
	s.gen[idx]++
	s.live[idx] = false
	s.free = append(s.free, h.slot())
	return true
}

func (s *slotStore) alive(h Handle) bool {
	slot := h.slot()
	if slot == 0 || int(slot) > len(s.gen) {
		return false
	}
	return s.live[slot-1] && s.gen[slot-1] == h.generation()
}
