package systems

import (
	"time"

	"github.com/lixenwraith/the-ray/constants"
	"github.com/lixenwraith/the-ray/engine"
	"github.com/lixenwraith/the-ray/events"
)

// MovementSystem advances every enemy on a fixed tick and resolves bottom
// breaches. It reschedules itself through the shared scheduler; on game over
// it stops rescheduling and hands control to the onGameOver hook.
type MovementSystem struct {
	session *engine.Session
	sched   *engine.Scheduler
	queue   *events.Queue

	interval time.Duration
	token    engine.Token

	// onGameOver runs synchronously from the tick that drops lives to zero,
	// after the live set has been settled for that tick.
	onGameOver func()
}

// NewMovementSystem creates a movement system ticking at the given interval.
func NewMovementSystem(session *engine.Session, sched *engine.Scheduler, queue *events.Queue, interval time.Duration) *MovementSystem {
	if interval <= 0 {
		interval = constants.MovementTickInterval
	}
	return &MovementSystem{
		session:  session,
		sched:    sched,
		queue:    queue,
		interval: interval,
	}
}

// SetGameOverHook installs the callback invoked when lives reach zero.
func (s *MovementSystem) SetGameOverHook(fn func()) {
	s.onGameOver = fn
}

// Start runs the first tick immediately; subsequent ticks self-schedule.
func (s *MovementSystem) Start() {
	s.tick()
}

// Stop cancels the pending tick.
func (s *MovementSystem) Stop() {
	s.sched.Cancel(s.token)
	s.token = 0
}

// tick moves all enemies, then rebuilds the live set from the survivors.
// Iterating a snapshot and filtering into a fresh slice avoids the classic
// skip-on-removal hazard of mutating the set mid-iteration.
func (s *MovementSystem) tick() {
	if !s.session.Running {
		return
	}

	snapshot := s.session.Enemies
	for _, e := range snapshot {
		e.Move()
	}

	kept := snapshot[:0]
	breached := 0
	for _, e := range snapshot {
		if !e.IsAlive() {
			// Killed since the last tick; handle already released
			continue
		}
		if _, y := e.Position(); y >= constants.BottomBoundary {
			e.Release()
			s.session.LoseLife()
			breached++
			continue
		}
		kept = append(kept, e)
	}
	s.session.Enemies = kept

	if breached > 0 {
		s.queue.Emit(events.EventLivesChanged, &events.LivesChangedPayload{Lives: s.session.Lives})
	}

	if s.session.Lives <= 0 {
		s.session.ClearEnemies()
		s.queue.Emit(events.EventGameOver, nil)
		if s.onGameOver != nil {
			s.onGameOver()
		}
		return
	}

	generation := s.session.Generation
	s.token = s.sched.After(s.interval, func() {
		if generation != s.session.Generation {
			return
		}
		s.tick()
	})
}
