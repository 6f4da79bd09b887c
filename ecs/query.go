package ecs

import "github.com/milk9111/boxcontroller/component"

// ForEach calls fn for every entity carrying a. Components may be added or
// removed from inside fn.
func ForEach[A any](w *World, a component.Kind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil {
		return
	}
	for _, id := range sa.ids() {
		va, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(w.entities.entity(id), va)
	}
}

func ForEach2[A, B any](w *World, a component.Kind[A], b component.Kind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, a, false), storeFor(w, b, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range sa.ids() {
		va, ok := sa.get(id)
		if !ok {
			continue
		}
		vb, ok := sb.get(id)
		if !ok {
			continue
		}
		fn(w.entities.entity(id), va, vb)
	}
}

func ForEach3[A, B, C any](w *World, a component.Kind[A], b component.Kind[B], c component.Kind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeFor(w, c, false)
	if sc == nil {
		return
	}
	ForEach2(w, a, b, func(e Entity, va *A, vb *B) {
		if vc, ok := sc.get(e.id()); ok {
			fn(e, va, vb, vc)
		}
	})
}

// First returns the first entity carrying a, if any.
func First[A any](w *World, a component.Kind[A]) (Entity, *A, bool) {
	sa := storeFor(w, a, false)
	if sa == nil || sa.len() == 0 {
		return 0, nil, false
	}
	id := sa.dense[0]
	return w.entities.entity(id), sa.values[0], true
}
