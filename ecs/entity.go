package ecs

import "strconv"

// Entity packs an id in the low 32 bits and its generation in the high 32.
type Entity uint64

type entityID uint32

const entityIDBits = 32

func makeEntity(id entityID, gen uint32) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() uint32 {
	return uint32(uint64(e) >> entityIDBits)
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + ":" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}
