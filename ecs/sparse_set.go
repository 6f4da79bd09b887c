package ecs

// store is the type-erased view of a sparseSet the world needs to clean up
// destroyed entities.
type store interface {
	remove(id entityID) bool
	has(id entityID) bool
}

// sparseSet keeps components densely packed for iteration, with a sparse
// index from entity id to dense slot.
type sparseSet[T any] struct {
	dense  []entityID
	values []*T
	sparse []int32
}

func (s *sparseSet[T]) has(id entityID) bool {
	if id == 0 || int(id) > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && int(idx) < len(s.dense) && s.dense[idx] == id
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.values[s.sparse[id-1]], true
}

func (s *sparseSet[T]) set(id entityID, v *T) {
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.values[s.sparse[id-1]] = v
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id-1] = int32(len(s.dense) - 1)
}

func (s *sparseSet[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := int32(len(s.dense) - 1)
	lastID := s.dense[last]

	s.dense[idx] = lastID
	s.values[idx] = s.values[last]
	s.sparse[lastID-1] = idx

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id-1] = -1
	return true
}

// ids returns a copy of the dense id list so callers may mutate the set while
// iterating.
func (s *sparseSet[T]) ids() []entityID {
	return append([]entityID(nil), s.dense...)
}

func (s *sparseSet[T]) len() int {
	return len(s.dense)
}
