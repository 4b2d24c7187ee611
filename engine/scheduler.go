package engine

import (
	"container/heap"
	"time"
)

// Token identifies a scheduled callback so it can be canceled.
// Zero is never a valid token.
type Token uint64

// Scheduler manages delayed callbacks on a single cooperative timeline.
// The host loop calls RunDue between input events; every callback runs to
// completion before the next fires, so callbacks never need locking on the
// state they share. Canceling outstanding tokens before a session reset is
// what prevents stale callbacks from mutating a fresh session.
type Scheduler struct {
	clock Clock

	queue   timerQueue
	entries map[Token]*timerEntry

	nextToken Token
	nextSeq   uint64
}

type timerEntry struct {
	deadline time.Time
	seq      uint64 // Insertion order tiebreak for equal deadlines
	token    Token
	fn       func()
	canceled bool
	index    int
}

// NewScheduler creates a scheduler driven by the given clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock:     clock,
		entries:   make(map[Token]*timerEntry),
		nextToken: 1,
	}
}

// After schedules fn to run once the delay has elapsed and returns a
// cancelable token.
func (s *Scheduler) After(delay time.Duration, fn func()) Token {
	e := &timerEntry{
		deadline: s.clock.Now().Add(delay),
		seq:      s.nextSeq,
		token:    s.nextToken,
		fn:       fn,
	}
	s.nextSeq++
	s.nextToken++

	s.entries[e.token] = e
	heap.Push(&s.queue, e)
	return e.token
}

// Cancel prevents a scheduled callback from firing. Canceling an unknown or
// already-fired token is a no-op.
func (s *Scheduler) Cancel(tok Token) {
	if e, ok := s.entries[tok]; ok {
		e.canceled = true
		delete(s.entries, tok)
	}
}

// CancelAll drops every outstanding callback.
func (s *Scheduler) CancelAll() {
	for tok, e := range s.entries {
		e.canceled = true
		delete(s.entries, tok)
	}
}

// Pending returns the number of outstanding (not canceled, not fired)
// callbacks.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// RunDue fires every callback whose deadline has passed, in deadline then
// insertion order. The current time is captured once on entry, so a callback
// rescheduling itself with a positive delay is picked up on a later pass,
// never within the same one.
func (s *Scheduler) RunDue() {
	now := s.clock.Now()
	for s.queue.Len() > 0 {
		e := s.queue[0]
		if e.canceled {
			heap.Pop(&s.queue)
			continue
		}
		if e.deadline.After(now) {
			return
		}
		heap.Pop(&s.queue)
		delete(s.entries, e.token)
		e.fn()
	}
}

// timerQueue is a min-heap ordered by (deadline, seq).
type timerQueue []*timerEntry

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
