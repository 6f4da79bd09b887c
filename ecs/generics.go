package ecs

import (
	"fmt"

	"github.com/milk9111/boxcontroller/component"
)

func storeFor[T any](w *World, kind component.Kind[T], create bool) *sparseSet[T] {
	if s, ok := w.stores[kind.ID()]; ok {
		return s.(*sparseSet[T])
	}
	if !create {
		return nil
	}
	s := &sparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.Kind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind.Name())
	}
	if !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	storeFor(w, kind, true).set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.Kind[T]) (*T, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

func Has[T any](w *World, e Entity, kind component.Kind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.Kind[T]) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	s := storeFor(w, kind, false)
	return s != nil && s.remove(e.id())
}

// Count returns how many entities carry the kind.
func Count[T any](w *World, kind component.Kind[T]) int {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0
	}
	return s.len()
}
