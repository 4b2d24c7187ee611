package events

// Queue is a FIFO buffer for game events. The simulation runs on a single
// cooperative timeline (scheduler callbacks and input handlers never overlap),
// so a plain slice with no synchronization is sufficient: producers push
// during a callback, the host consumes between callbacks.
type Queue struct {
	pending []GameEvent
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(ev GameEvent) {
	q.pending = append(q.pending, ev)
}

// Emit is shorthand for pushing a typed event with a payload.
func (q *Queue) Emit(t EventType, payload any) {
	q.Push(GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and empties the queue.
// Returns nil when no events are pending.
func (q *Queue) Consume() []GameEvent {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.pending)
}
