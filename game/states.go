package game

import (
	"github.com/lixenwraith/the-ray/canvas"
	"github.com/lixenwraith/the-ray/constants"
	"github.com/lixenwraith/the-ray/events"
)

const (
	promptStart   = "Click to start"
	promptRestart = "Click to restart"
)

const (
	centerX = constants.PlayfieldSize / 2
	centerY = constants.PlayfieldSize / 2
)

// titleState shows the layered title and waits for a click.
type titleState struct {
	g      *Game
	prompt string
}

func newTitleState(g *Game, prompt string) *titleState {
	return &titleState{g: g, prompt: prompt}
}

func (s *titleState) Enter() {
	s.g.surface.Clear()
	// White copy offset under the red one, the original's drop-shadow look
	s.g.surface.CreateText(centerX+2, centerY+2, "THE RAY", canvas.ColorWhite)
	s.g.surface.CreateText(centerX, centerY, "THE RAY", canvas.ColorRed)
	s.g.surface.CreateText(centerX, centerY+50, s.prompt, canvas.ColorWhite)
}

func (s *titleState) Exit() {}

func (s *titleState) Click(x, y int) {
	s.g.machine.SetState(newPlayingState(s.g))
}

func (s *titleState) Drag(x, y int) {}

func (s *titleState) Release() {}

// playingState runs the live session: spawning waves, ticking movement and
// resolving beam input.
type playingState struct {
	g *Game
}

func newPlayingState(g *Game) *playingState {
	return &playingState{g: g}
}

func (s *playingState) Enter() {
	g := s.g

	// Cancel anything a previous session left behind before touching state
	g.waves.Stop()
	g.movement.Stop()

	g.surface.Clear()
	g.Session.Reset()
	g.Queue.Emit(events.EventLivesChanged, &events.LivesChangedPayload{Lives: g.Session.Lives})

	g.waves.Start()
	g.movement.Start()
}

func (s *playingState) Exit() {}

func (s *playingState) Click(x, y int) {}

func (s *playingState) Drag(x, y int) {
	s.g.combat.Beam(x, y)
}

func (s *playingState) Release() {
	s.g.combat.Release()
}

// gameOverState shows the lose banner, then returns to the title.
type gameOverState struct {
	g *Game
}

func newGameOverState(g *Game) *gameOverState {
	return &gameOverState{g: g}
}

func (s *gameOverState) Enter() {
	g := s.g
	g.Session.Running = false
	g.Session.ClearEnemies()
	g.combat.Release()

	g.surface.CreateText(centerX+2, centerY+2, "YOU LOSE", canvas.ColorWhite)
	g.surface.CreateText(centerX, centerY, "YOU LOSE", canvas.ColorRed)

	g.Scheduler.After(constants.GameOverDelay, func() {
		g.machine.SetState(newTitleState(g, promptRestart))
	})
}

func (s *gameOverState) Exit() {}

func (s *gameOverState) Click(x, y int) {}

func (s *gameOverState) Drag(x, y int) {}

func (s *gameOverState) Release() {}
