package events

// EventType represents the type of game event
type EventType int

const (
	// EventLevelStarted signals a new level beginning
	// Trigger: WaveSystem advancing after a cleared wave
	// Consumer: HUD | Payload: *LevelStartedPayload
	EventLevelStarted EventType = iota

	// EventLivesChanged signals a life count change
	// Trigger: MovementSystem on breach, session reset
	// Consumer: HUD | Payload: *LivesChangedPayload
	EventLivesChanged

	// EventEnemyDestroyed signals an enemy killed by the beam
	// Trigger: CombatSystem via Enemy.Damage
	// Consumer: HUD (kill counter) | Payload: nil
	EventEnemyDestroyed

	// EventGameOver signals the session ending at zero lives
	// Trigger: MovementSystem
	// Consumer: game machine | Payload: nil
	EventGameOver
)

// GameEvent pairs an event type with its optional payload
type GameEvent struct {
	Type    EventType
	Payload any
}

// LevelStartedPayload carries the level number that just began
type LevelStartedPayload struct {
	Level int
}

// LivesChangedPayload carries the remaining life count
type LivesChangedPayload struct {
	Lives int
}
