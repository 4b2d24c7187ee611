package engine

import (
	"testing"
	"time"
)

func newTestScheduler() (*Scheduler, *MockClock) {
	clock := NewMockClock(time.Unix(0, 0))
	return NewScheduler(clock), clock
}

func TestSchedulerFiresAfterDelay(t *testing.T) {
	sched, clock := newTestScheduler()

	fired := 0
	sched.After(100*time.Millisecond, func() { fired++ })

	clock.Advance(99 * time.Millisecond)
	sched.RunDue()
	if fired != 0 {
		t.Fatal("callback fired before its deadline")
	}

	clock.Advance(1 * time.Millisecond)
	sched.RunDue()
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	// One-shot: pumping again must not refire
	clock.Advance(time.Second)
	sched.RunDue()
	if fired != 1 {
		t.Fatalf("callback refired, count = %d", fired)
	}
}

func TestSchedulerDeadlineThenInsertionOrder(t *testing.T) {
	sched, clock := newTestScheduler()

	var order []int
	sched.After(50*time.Millisecond, func() { order = append(order, 1) })
	sched.After(10*time.Millisecond, func() { order = append(order, 2) })
	sched.After(50*time.Millisecond, func() { order = append(order, 3) })

	clock.Advance(time.Second)
	sched.RunDue()

	want := []int{2, 1, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	sched, clock := newTestScheduler()

	fired := false
	tok := sched.After(10*time.Millisecond, func() { fired = true })
	if sched.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", sched.Pending())
	}

	sched.Cancel(tok)
	if sched.Pending() != 0 {
		t.Fatalf("pending after cancel = %d, want 0", sched.Pending())
	}

	clock.Advance(time.Second)
	sched.RunDue()
	if fired {
		t.Fatal("canceled callback fired")
	}

	// Canceling again, or canceling garbage, is a no-op
	sched.Cancel(tok)
	sched.Cancel(Token(9999))
}

func TestSchedulerSelfReschedule(t *testing.T) {
	sched, clock := newTestScheduler()

	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		sched.After(10*time.Millisecond, tick)
	}
	sched.After(10*time.Millisecond, tick)

	// Rescheduling with a positive delay must not fire within the same pass
	clock.Advance(10 * time.Millisecond)
	sched.RunDue()
	if ticks != 1 {
		t.Fatalf("ticks = %d after one pump, want 1", ticks)
	}

	for i := 0; i < 5; i++ {
		clock.Advance(10 * time.Millisecond)
		sched.RunDue()
	}
	if ticks != 6 {
		t.Fatalf("ticks = %d, want 6", ticks)
	}
	if sched.Pending() != 1 {
		t.Fatalf("pending = %d, want exactly the next tick", sched.Pending())
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	sched, clock := newTestScheduler()

	fired := 0
	for i := 0; i < 4; i++ {
		sched.After(time.Duration(i)*time.Millisecond, func() { fired++ })
	}
	sched.CancelAll()

	clock.Advance(time.Second)
	sched.RunDue()
	if fired != 0 {
		t.Fatalf("fired = %d after CancelAll, want 0", fired)
	}
	if sched.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", sched.Pending())
	}
}

func TestSchedulerCatchUpFiresAllDue(t *testing.T) {
	sched, clock := newTestScheduler()

	fired := 0
	sched.After(10*time.Millisecond, func() { fired++ })
	sched.After(20*time.Millisecond, func() { fired++ })
	sched.After(30*time.Millisecond, func() { fired++ })

	// A single late pump catches up on everything due
	clock.Advance(25 * time.Millisecond)
	sched.RunDue()
	if fired != 2 {
		t.Fatalf("fired = %d, want 2", fired)
	}
	if sched.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", sched.Pending())
	}
}
