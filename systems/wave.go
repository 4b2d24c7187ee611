package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/the-ray/canvas"
	"github.com/lixenwraith/the-ray/components"
	"github.com/lixenwraith/the-ray/constants"
	"github.com/lixenwraith/the-ray/engine"
	"github.com/lixenwraith/the-ray/events"
)

// WavePhase is the wave scheduler's current state.
type WavePhase uint8

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveWaitingForClear
)

// WaveSystem spawns enemy waves and advances the level once a wave is
// cleared. Spawn timing runs through the shared scheduler; every pending
// token is canceled by Stop so restarts never leave a stale spawn behind.
type WaveSystem struct {
	session *engine.Session
	sched   *engine.Scheduler
	surface canvas.Canvas
	queue   *events.Queue
	rng     *rand.Rand

	phase WavePhase

	stepToken   engine.Token
	bannerToken engine.Token
	banner      canvas.Handle
}

// NewWaveSystem creates a wave system operating on the shared session.
func NewWaveSystem(session *engine.Session, sched *engine.Scheduler, surface canvas.Canvas, queue *events.Queue, rng *rand.Rand) *WaveSystem {
	return &WaveSystem{
		session: session,
		sched:   sched,
		surface: surface,
		queue:   queue,
		rng:     rng,
	}
}

// LevelProfile returns the fall speed and spawn interval for a level.
// Fixed difficulty policy, reproduced exactly for compatibility with the
// original game.
func LevelProfile(level int) (speed int, interval time.Duration) {
	switch {
	case level <= 1:
		return 1, 1000 * time.Millisecond
	case level <= 3:
		return 2, 800 * time.Millisecond
	case level <= 5:
		return 3, 800 * time.Millisecond
	default:
		return level/2 + 1, 700 * time.Millisecond
	}
}

// Phase returns the scheduler's current state.
func (s *WaveSystem) Phase() WavePhase {
	return s.phase
}

// Start begins wave scheduling on a freshly reset session, advancing it
// straight to level 1.
func (s *WaveSystem) Start() {
	s.advanceLevel()
}

// Stop cancels every pending spawn, poll and banner callback.
func (s *WaveSystem) Stop() {
	s.sched.Cancel(s.stepToken)
	s.sched.Cancel(s.bannerToken)
	s.stepToken = 0
	s.bannerToken = 0
	s.phase = WaveIdle
}

// advanceLevel bumps the level, shows its banner and restarts spawning.
func (s *WaveSystem) advanceLevel() {
	s.session.Level++
	s.queue.Emit(events.EventLevelStarted, &events.LevelStartedPayload{Level: s.session.Level})

	s.banner = s.surface.CreateText(
		constants.PlayfieldSize/2, constants.PlayfieldSize/2,
		fmt.Sprintf("LEVEL %d", s.session.Level),
		canvas.ColorRed,
	)
	banner := s.banner
	s.bannerToken = s.sched.After(constants.LevelBannerDuration, func() {
		s.surface.Delete(banner)
	})

	s.session.SpawnedThisWave = 0
	s.phase = WaveSpawning
	s.step()
}

// step is the scheduler callback driving one wave: it spawns until the wave
// cap, then polls for wave clear. The generation captured at schedule time
// guards against a callback outliving a session reset.
func (s *WaveSystem) step() {
	if !s.session.Running {
		return
	}

	speed, interval := LevelProfile(s.session.Level)

	if s.session.SpawnedThisWave < constants.WaveSize {
		spawnX := constants.SpawnMinX + s.rng.Intn(constants.SpawnMaxX-constants.SpawnMinX+1)
		enemy := components.SpawnEnemy(s.surface, speed, spawnX)
		s.session.Enemies = append(s.session.Enemies, enemy)
		s.session.SpawnedThisWave++

		s.reschedule(interval)
		return
	}

	s.phase = WaveWaitingForClear
	if s.session.Lives <= 0 {
		// Session is over; freeze instead of polling a dead game
		return
	}

	s.pruneDead()
	if !s.session.AliveEnemies() {
		s.advanceLevel()
		return
	}
	s.reschedule(constants.WaveClearPollDelay)
}

func (s *WaveSystem) reschedule(delay time.Duration) {
	generation := s.session.Generation
	s.stepToken = s.sched.After(delay, func() {
		if generation != s.session.Generation {
			return
		}
		s.step()
	})
}

// pruneDead drops dead enemies from the live set. The movement tick already
// filters them each tick; this covers kills landing between the final tick
// and the wave-clear poll.
func (s *WaveSystem) pruneDead() {
	survivors := s.session.Enemies[:0]
	for _, e := range s.session.Enemies {
		if e.IsAlive() {
			survivors = append(survivors, e)
		}
	}
	s.session.Enemies = survivors
}
