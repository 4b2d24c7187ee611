package events

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue()
	q.Emit(EventLevelStarted, &LevelStartedPayload{Level: 1})
	q.Emit(EventLivesChanged, &LivesChangedPayload{Lives: 4})
	q.Emit(EventGameOver, nil)

	evs := q.Consume()
	want := []EventType{EventLevelStarted, EventLivesChanged, EventGameOver}
	if len(evs) != len(want) {
		t.Fatalf("consumed %d events, want %d", len(evs), len(want))
	}
	for i, ev := range evs {
		if ev.Type != want[i] {
			t.Fatalf("event %d = %v, want %v", i, ev.Type, want[i])
		}
	}
}

func TestQueueConsumeEmpties(t *testing.T) {
	q := NewQueue()
	q.Emit(EventEnemyDestroyed, nil)

	if got := q.Consume(); len(got) != 1 {
		t.Fatalf("first consume = %d events, want 1", len(got))
	}
	if got := q.Consume(); got != nil {
		t.Fatalf("second consume = %v, want nil", got)
	}
	if q.Len() != 0 {
		t.Fatalf("len = %d after consume, want 0", q.Len())
	}
}

func TestQueuePushDuringDrainIsKept(t *testing.T) {
	q := NewQueue()
	q.Emit(EventLevelStarted, nil)

	evs := q.Consume()
	// A callback reacting to a consumed event may emit again; the new
	// event belongs to the next drain
	q.Emit(EventLivesChanged, nil)

	if len(evs) != 1 {
		t.Fatalf("drained %d, want 1", len(evs))
	}
	if q.Len() != 1 {
		t.Fatalf("pending = %d, want the event emitted mid-drain", q.Len())
	}
}
