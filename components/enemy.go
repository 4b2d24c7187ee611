package components

import (
	"github.com/lixenwraith/the-ray/canvas"
	"github.com/lixenwraith/the-ray/constants"
)

// Enemy is a falling entity the beam has to destroy. It owns exactly one
// canvas shape, released exactly once when the enemy dies, breaches, or is
// swept away by a session reset.
type Enemy struct {
	surface canvas.Canvas
	handle  canvas.Handle

	health int
	speed  int
	x, y   int

	released bool
}

// SpawnEnemy creates an enemy centered at (spawnX, 0) falling at the given
// speed, and draws its square on the canvas.
func SpawnEnemy(surface canvas.Canvas, speed, spawnX int) *Enemy {
	size := 2 * constants.EnemyHalfSize
	return &Enemy{
		surface: surface,
		handle: surface.CreateRect(
			spawnX-constants.EnemyHalfSize,
			-constants.EnemyHalfSize,
			size, size,
			canvas.ColorRed,
		),
		health: constants.EnemyHealth,
		speed:  speed,
		x:      spawnX,
	}
}

// IsAlive reports whether the enemy still has health.
func (e *Enemy) IsAlive() bool {
	return e.health > 0
}

// Position returns the enemy's logical center coordinate.
func (e *Enemy) Position() (int, int) {
	return e.x, e.y
}

// Speed returns the per-tick fall distance.
func (e *Enemy) Speed() int {
	return e.speed
}

// Damage reduces health by amount, clamped at zero. Dropping to zero
// releases the canvas shape; further Damage calls change nothing.
func (e *Enemy) Damage(amount int) {
	if e.health <= 0 {
		return
	}
	e.health -= amount
	if e.health <= 0 {
		e.health = 0
		e.Release()
	}
}

// Move advances the enemy down by its speed, shifting the shape by the same
// relative delta.
func (e *Enemy) Move() {
	e.y += e.speed
	e.surface.Move(e.handle, 0, e.speed)
}

// Release deletes the enemy's canvas shape. Idempotent.
func (e *Enemy) Release() {
	if e.released {
		return
	}
	e.released = true
	e.surface.Delete(e.handle)
}
