package components

import (
	"testing"

	"github.com/lixenwraith/the-ray/canvas"
)

func TestSpawnEnemyDrawsCenteredSquare(t *testing.T) {
	rec := canvas.NewRecorder()
	e := SpawnEnemy(rec, 2, 100)

	if !e.IsAlive() {
		t.Fatal("freshly spawned enemy is not alive")
	}
	if x, y := e.Position(); x != 100 || y != 0 {
		t.Fatalf("spawn position = (%d,%d), want (100,0)", x, y)
	}
	if e.Speed() != 2 {
		t.Fatalf("speed = %d, want 2", e.Speed())
	}

	if rec.Live() != 1 {
		t.Fatalf("shapes on canvas = %d, want 1", rec.Live())
	}
	for _, s := range rec.Shapes {
		if s.Kind != canvas.KindRect {
			t.Fatalf("shape kind = %v, want rect", s.Kind)
		}
		if s.X != 95 || s.Y != -5 || s.W != 10 || s.H != 10 {
			t.Fatalf("rect = (%d,%d %dx%d), want (95,-5 10x10)", s.X, s.Y, s.W, s.H)
		}
	}
}

func TestEnemyDiesAfterOneDamage(t *testing.T) {
	rec := canvas.NewRecorder()
	e := SpawnEnemy(rec, 1, 50)

	e.Damage(1)
	if e.IsAlive() {
		t.Fatal("enemy alive after lethal damage")
	}
	if rec.Live() != 0 {
		t.Fatal("shape not released on death")
	}
}

func TestEnemyHandleReleasedExactlyOnce(t *testing.T) {
	rec := canvas.NewRecorder()
	e := SpawnEnemy(rec, 1, 50)

	e.Damage(1)
	e.Damage(1)
	e.Release()

	total := 0
	for _, n := range rec.Deletes {
		total += n
	}
	if total != 1 {
		t.Fatalf("handle deleted %d times, want exactly 1", total)
	}
}

func TestEnemyHealthClampsAtZero(t *testing.T) {
	rec := canvas.NewRecorder()
	e := SpawnEnemy(rec, 1, 50)

	e.Damage(3)
	if e.health != 0 {
		t.Fatalf("health = %d, want clamped 0", e.health)
	}
	e.Damage(1)
	if e.health != 0 {
		t.Fatalf("health after extra damage = %d, want 0", e.health)
	}
}

func TestEnemyMoveIsRelative(t *testing.T) {
	rec := canvas.NewRecorder()
	e := SpawnEnemy(rec, 3, 50)

	e.Move()
	e.Move()

	if _, y := e.Position(); y != 6 {
		t.Fatalf("y = %d after two moves at speed 3, want 6", y)
	}
	for _, s := range rec.Shapes {
		if s.MovedX != 0 || s.MovedY != 6 {
			t.Fatalf("shape moved by (%d,%d), want (0,6)", s.MovedX, s.MovedY)
		}
	}
}
