// Package game wires the simulation core together and drives it through a
// title / playing / game-over state machine.
package game

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/the-ray/canvas"
	"github.com/lixenwraith/the-ray/engine"
	"github.com/lixenwraith/the-ray/events"
	"github.com/lixenwraith/the-ray/systems"
)

// Game owns the session, the scheduler and the three gameplay systems.
// The host feeds it pointer input and pumps the scheduler; everything else
// happens through scheduled callbacks on that single timeline.
type Game struct {
	Session   *engine.Session
	Scheduler *engine.Scheduler
	Queue     *events.Queue

	surface  canvas.Canvas
	waves    *systems.WaveSystem
	movement *systems.MovementSystem
	combat   *systems.CombatSystem

	machine *Machine
}

// New builds a game rendering onto the given canvas. The tick interval
// controls movement speed; rng drives spawn placement.
func New(surface canvas.Canvas, clock engine.Clock, rng *rand.Rand, tickInterval time.Duration) *Game {
	session := engine.NewSession()
	sched := engine.NewScheduler(clock)
	queue := events.NewQueue()

	g := &Game{
		Session:   session,
		Scheduler: sched,
		Queue:     queue,
		surface:   surface,
		machine:   NewMachine(),
	}
	g.waves = systems.NewWaveSystem(session, sched, surface, queue, rng)
	g.movement = systems.NewMovementSystem(session, sched, queue, tickInterval)
	g.combat = systems.NewCombatSystem(session, surface, queue)

	g.movement.SetGameOverHook(func() {
		g.machine.SetState(newGameOverState(g))
	})

	g.machine.SetState(newTitleState(g, promptStart))
	return g
}

// Click handles a pointer press in logical coordinates.
func (g *Game) Click(x, y int) {
	g.machine.Click(x, y)
}

// Drag handles a pointer drag motion in logical coordinates.
func (g *Game) Drag(x, y int) {
	g.machine.Drag(x, y)
}

// Release handles the pointer being let go.
func (g *Game) Release() {
	g.machine.Release()
}
