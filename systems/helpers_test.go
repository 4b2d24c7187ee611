package systems

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/the-ray/canvas"
	"github.com/lixenwraith/the-ray/engine"
	"github.com/lixenwraith/the-ray/events"
)

// rig bundles the shared pieces every system test needs: a session, a
// scheduler on a mock clock, a recording canvas and a seeded RNG.
type rig struct {
	session *engine.Session
	sched   *engine.Scheduler
	clock   *engine.MockClock
	surface *canvas.Recorder
	queue   *events.Queue
	rng     *rand.Rand
}

func newRig() *rig {
	clock := engine.NewMockClock(time.Unix(0, 0))
	return &rig{
		session: engine.NewSession(),
		sched:   engine.NewScheduler(clock),
		clock:   clock,
		surface: canvas.NewRecorder(),
		queue:   events.NewQueue(),
		rng:     rand.New(rand.NewSource(1)),
	}
}

// pump advances the mock clock in fixed steps, firing due callbacks after
// each step, the way the host loop does.
func (r *rig) pump(total, step time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		r.clock.Advance(step)
		r.sched.RunDue()
	}
}

// eventsOfType filters consumed events by type.
func eventsOfType(evs []events.GameEvent, t events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range evs {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
