package systems

import (
	"github.com/lixenwraith/the-ray/canvas"
	"github.com/lixenwraith/the-ray/components"
	"github.com/lixenwraith/the-ray/constants"
	"github.com/lixenwraith/the-ray/engine"
	"github.com/lixenwraith/the-ray/events"
	"github.com/lixenwraith/the-ray/vmath"
)

// CombatSystem resolves beam damage and owns the two beam shapes (the red
// line plus its offset shadow). Damage fires only on drag motion: a beam
// held stationary deals nothing, matching the original game's behavior.
type CombatSystem struct {
	session *engine.Session
	surface canvas.Canvas
	queue   *events.Queue

	beam   canvas.Handle
	shadow canvas.Handle
}

// NewCombatSystem creates a combat system drawing onto the given canvas.
func NewCombatSystem(session *engine.Session, surface canvas.Canvas, queue *events.Queue) *CombatSystem {
	return &CombatSystem{
		session: session,
		surface: surface,
		queue:   queue,
	}
}

// Beam redraws the beam toward (x, y) and resolves damage along its path.
func (s *CombatSystem) Beam(x, y int) {
	s.surface.Delete(s.beam)
	s.surface.Delete(s.shadow)

	path := vmath.LinePoints(constants.BeamOriginX, constants.BeamOriginY, x, y)
	s.Attack(path)

	off := constants.BeamShadowOffset
	s.shadow = s.surface.CreateLine(
		constants.BeamOriginX+off, constants.BeamOriginY+off,
		x+off, y+off,
		canvas.ColorShadow,
	)
	s.beam = s.surface.CreateLine(
		constants.BeamOriginX, constants.BeamOriginY,
		x, y,
		canvas.ColorRed,
	)
}

// Release removes the beam shapes when the pointer is let go.
func (s *CombatSystem) Release() {
	s.surface.Delete(s.beam)
	s.surface.Delete(s.shadow)
	s.beam = 0
	s.shadow = 0
}

// Attack applies one damage for every exact position match within the
// square hit window around each path point. A longer path can hit the same
// enemy several times in one call; that is the intended reward for a longer
// beam sweep.
func (s *CombatSystem) Attack(path []vmath.Point) {
	if len(s.session.Enemies) == 0 {
		return
	}

	byPosition := make(map[vmath.Point]*components.Enemy, len(s.session.Enemies))
	for _, e := range s.session.Enemies {
		x, y := e.Position()
		byPosition[vmath.Point{X: x, Y: y}] = e
	}

	r := constants.HitRadius
	for _, p := range path {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				target, ok := byPosition[vmath.Point{X: p.X + dx, Y: p.Y + dy}]
				if !ok {
					continue
				}
				wasAlive := target.IsAlive()
				target.Damage(1)
				if wasAlive && !target.IsAlive() {
					s.queue.Emit(events.EventEnemyDestroyed, nil)
				}
			}
		}
	}
}
