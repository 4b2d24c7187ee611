package constants

import "time"

// Playfield Geometry (logical coordinates)
const (
	// PlayfieldSize is the square logical playfield dimension
	PlayfieldSize = 500

	// BottomBoundary is the y coordinate at which an enemy breaches
	BottomBoundary = 500

	// BeamOriginX is the fixed x origin of the beam (bottom center)
	BeamOriginX = PlayfieldSize / 2

	// BeamOriginY is the fixed y origin of the beam
	BeamOriginY = PlayfieldSize

	// BeamShadowOffset is the offset of the beam's shadow line
	BeamShadowOffset = 2

	// EnemyHalfSize is half the enemy square's edge length
	EnemyHalfSize = 5
)

// Game Loop & Scheduling
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MovementTickInterval is the default enemy movement tick period
	MovementTickInterval = 10 * time.Millisecond

	// WaveClearPollDelay is how often a finished wave is re-checked for clear
	WaveClearPollDelay = 2000 * time.Millisecond

	// LevelBannerDuration is how long the level banner stays on screen
	LevelBannerDuration = 1500 * time.Millisecond

	// GameOverDelay is the pause on the lose screen before the title returns
	GameOverDelay = 3000 * time.Millisecond
)

// Gameplay Policy
const (
	// StartingLives is the life count granted on every session start
	StartingLives = 5

	// WaveSize is the fixed number of enemies spawned per wave
	WaveSize = 10

	// SpawnMinX and SpawnMaxX bound the uniform random spawn column
	SpawnMinX = 10
	SpawnMaxX = 490

	// HitRadius is the half-width of the square hit window scanned
	// around every beam path point
	HitRadius = 2

	// EnemyHealth is the starting health of a spawned enemy
	EnemyHealth = 1
)
