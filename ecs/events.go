package ecs

// EventKind identifies scene events.
type EventKind string

const (
	// EventSelection is pushed after the animator picks a new active set.
	EventSelection EventKind = "selection"
	// EventPointLightMoved is pushed when the slider panel moves the point light.
	EventPointLightMoved EventKind = "point_light_moved"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind EventKind
	Data any
}

// EventQueue is a simple FIFO queue, drained at the end of every scheduler pass.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns the queued events without removing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}
