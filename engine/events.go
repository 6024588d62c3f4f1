// Package engine holds the control core of geometry-fighter: game phases,
// spawn timing, collision outcomes and scene eviction.
//
// # Event Queue
//
// Input reaches the core through a bounded EventQueue. Producers (the terminal
// poll goroutine, signal handlers) push events from any goroutine; the game
// loop is the single consumer and drains the queue at the start of each tick,
// so taps are always applied on the same goroutine that owns the scene.
//
// When the queue is full the oldest event is dropped.
package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/geometry-fighter/constants"
)

// EventType identifies a queued input event
type EventType int

const (
	// EventTap is a pointer press at screen cell (X, Y)
	EventTap EventType = iota

	// EventPause freezes spawn and GameOver timing
	EventPause

	// EventResume undoes EventPause
	EventResume

	// EventSuspend persists best state and completes a pending GameOver transition
	EventSuspend
)

func (e EventType) String() string {
	switch e {
	case EventTap:
		return "Tap"
	case EventPause:
		return "Pause"
	case EventResume:
		return "Resume"
	case EventSuspend:
		return "Suspend"
	default:
		return "Unknown"
	}
}

// GameEvent is one queued input
type GameEvent struct {
	Type      EventType
	X, Y      int       // Screen cell for EventTap
	Timestamp time.Time // Creation time, for debugging
}

// EventQueue is a fixed-capacity FIFO ring buffer
type EventQueue struct {
	mu     sync.Mutex
	events [constants.EventQueueCapacity]GameEvent
	head   uint64 // Next position to read
	tail   uint64 // Next position to write
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest one when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail%constants.EventQueueCapacity] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueCapacity {
		eq.head = eq.tail - constants.EventQueueCapacity
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	available := eq.tail - eq.head
	if available == 0 {
		return nil
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(eq.head+i)%constants.EventQueueCapacity]
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}
