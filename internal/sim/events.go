// Package sim owns the deterministic world the game plays in: the entity
// table for spawned items and death pieces, the player body, and the
// frame-local event queue that carries what happened during a step.
package sim

// EventKind identifies what happened.
type EventKind int

const (
	// EventScored carries the score delta from a crossed scoring region.
	EventScored EventKind = iota
	// EventGravityShift carries the sign a triggered region applies.
	EventGravityShift
	// EventBarrierHit means the player struck a barrier.
	EventBarrierHit
	// EventOutOfBounds means the player left the world rect.
	EventOutOfBounds
	// EventLevelChanged means the spawner consumed a queued tier.
	EventLevelChanged
	// EventResetRequested asks the game to start a fresh run.
	EventResetRequested
)

// String returns the event name for logs and test output.
func (k EventKind) String() string {
	switch k {
	case EventScored:
		return "scored"
	case EventGravityShift:
		return "gravity-shift"
	case EventBarrierHit:
		return "barrier-hit"
	case EventOutOfBounds:
		return "out-of-bounds"
	case EventLevelChanged:
		return "level-changed"
	case EventResetRequested:
		return "reset-requested"
	default:
		return "unknown"
	}
}

// Event is a tagged variant; only the field matching Kind is meaningful.
type Event struct {
	Kind  EventKind
	Delta int     // EventScored
	Sign  float64 // EventGravityShift
}

// EventQueue is a FIFO queue drained once per frame. Events pushed while
// draining land in the next drain.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns all queued events in push order and clears the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
