package ecs

import "github.com/milk9111/boxcontroller/physics"

// ContactEvent reports an entity's contact transition for the tick.
type ContactEvent struct {
	Entity Entity
	Other  Entity
	Status physics.ContactStatus
	Depth  float32
}

// EventQueue collects events for the duration of one tick.
type EventQueue struct {
	contacts []ContactEvent
}

func (q *EventQueue) PushContact(evt ContactEvent) {
	q.contacts = append(q.contacts, evt)
}

// Contacts returns the contact events pushed so far this tick.
func (q *EventQueue) Contacts() []ContactEvent {
	return q.contacts
}

func (q *EventQueue) flush() {
	q.contacts = q.contacts[:0]
}
