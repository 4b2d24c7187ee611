package engine

import (
	"github.com/lixenwraith/the-ray/components"
	"github.com/lixenwraith/the-ray/constants"
)

// Session is the mutable state of one game run. The game state machine owns
// it exclusively; systems mutate it by reference and never copy it.
type Session struct {
	Lives int
	Level int

	// Enemies is the live set. An enemy leaves the set when it dies or
	// breaches the bottom boundary.
	Enemies []*components.Enemy

	// SpawnedThisWave counts spawns toward the wave cap.
	SpawnedThisWave int

	// Running is false on the title and lose screens.
	Running bool

	// Generation increments on every reset. Callbacks capture the value at
	// schedule time and no-op if the session has since been reset; this
	// backs up explicit token cancellation.
	Generation uint64
}

// NewSession creates an idle session with no lives and no enemies.
func NewSession() *Session {
	return &Session{}
}

// Reset re-arms the session for a fresh run. Any enemies left from the
// previous run release their handles first.
func (s *Session) Reset() {
	s.ClearEnemies()
	s.Lives = constants.StartingLives
	s.Level = 0
	s.SpawnedThisWave = 0
	s.Running = true
	s.Generation++
}

// ClearEnemies releases every enemy handle and empties the live set.
func (s *Session) ClearEnemies() {
	for _, e := range s.Enemies {
		e.Release()
	}
	s.Enemies = s.Enemies[:0]
}

// LoseLife decrements the life count, clamped at zero.
func (s *Session) LoseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
}

// AliveEnemies reports whether any live enemy remains.
func (s *Session) AliveEnemies() bool {
	return len(s.Enemies) > 0
}
