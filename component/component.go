package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID identifies a component kind within the process.
type ID uint32

var nextID atomic.Uint32

// Kind is a typed key for one component storage. Declare kinds once at
// package level.
type Kind[T any] struct {
	id   ID
	name string
}

func New[T any](name string) Kind[T] {
	return Kind[T]{id: ID(nextID.Add(1)), name: name}
}

func (k Kind[T]) ID() ID { return k.id }

func (k Kind[T]) Name() string { return k.name }

func (k Kind[T]) Valid() bool { return k.id != 0 }
