package engine

import (
	"github.com/lixenwraith/fetch/core"
)

// EventType identifies a simulation event emitted during a tick
type EventType uint8

const (
	EventThrowCharge EventType = iota
	EventThrowRelease
	EventBallLanded
	EventDogPickup
	EventDogDeliver
)

// Event is a simulation occurrence consumed by shell collaborators
// (audio cues, logging); the queue is drained after each tick
type Event struct {
	Type   EventType
	Entity core.Entity
	Frame  int64
}

// EventQueue collects events within a tick
// Single-writer like the rest of the world state, no locking
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns the queued events and resets the queue
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events
func (q *EventQueue) Len() int {
	return len(q.events)
}
