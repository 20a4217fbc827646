package model

import (
	"testing"
	"time"
)

// newStraightPath builds a straight path of the given length along the X axis.
func newStraightPath(t *testing.T, length float64) *MovementPath {
	t.Helper()
	path, err := NewMovementPath([]Point{{X: 0, Y: 0}, {X: length, Y: 0}})
	if err != nil {
		t.Fatalf("NewMovementPath() error = %v", err)
	}
	return path
}

func newTestTemplate(speed float64) *EnemyTemplate {
	return NewEnemyTemplate(EnemyRaider, "Raider", 100, 10, speed, 10)
}

func TestNewEnemy(t *testing.T) {
	path := newStraightPath(t, 100)
	enemy := NewEnemy("wave-1-enemy-0", newTestTemplate(50), path)

	if enemy.ID() != "wave-1-enemy-0" {
		t.Errorf("ID() = %q, want %q", enemy.ID(), "wave-1-enemy-0")
	}
	if enemy.Type() != EnemyRaider {
		t.Errorf("Type() = %q, want %q", enemy.Type(), EnemyRaider)
	}
	if enemy.CurrentHealth() != 100 {
		t.Errorf("CurrentHealth() = %d, want 100", enemy.CurrentHealth())
	}
	if enemy.MaxHealth() != 100 {
		t.Errorf("MaxHealth() = %d, want 100", enemy.MaxHealth())
	}
	if !pointsEqual(enemy.Position(), path.SpawnPoint()) {
		t.Errorf("Position() = %+v, want spawn point %+v", enemy.Position(), path.SpawnPoint())
	}
	if enemy.Progress() != 0 {
		t.Errorf("Progress() = %f, want 0", enemy.Progress())
	}
	if !enemy.IsAlive() {
		t.Error("IsAlive() = false, want true")
	}
	if enemy.IsAtBase() {
		t.Error("IsAtBase() = true, want false")
	}
}

func TestEnemy_TakeDamage(t *testing.T) {
	enemy := NewEnemy("e1", newTestTemplate(50), newStraightPath(t, 100))

	enemy.TakeDamage(30)
	if enemy.CurrentHealth() != 70 {
		t.Errorf("after TakeDamage(30) CurrentHealth() = %d, want 70", enemy.CurrentHealth())
	}
	if !enemy.IsAlive() {
		t.Error("enemy died from non-lethal damage")
	}

	enemy.TakeDamage(70)
	if enemy.CurrentHealth() != 0 {
		t.Errorf("after lethal damage CurrentHealth() = %d, want 0", enemy.CurrentHealth())
	}
	if enemy.IsAlive() {
		t.Error("IsAlive() = true after health reached 0")
	}
}

// Overkill never underflows health below zero.
func TestEnemy_TakeDamage_Overkill(t *testing.T) {
	enemy := NewEnemy("e1", newTestTemplate(50), newStraightPath(t, 100))

	enemy.TakeDamage(150)
	if enemy.CurrentHealth() != 0 {
		t.Errorf("after TakeDamage(150) CurrentHealth() = %d, want 0", enemy.CurrentHealth())
	}
	if enemy.IsAlive() {
		t.Error("IsAlive() = true after overkill")
	}
}

func TestEnemy_TakeDamage_Ignored(t *testing.T) {
	enemy := NewEnemy("e1", newTestTemplate(50), newStraightPath(t, 100))

	enemy.TakeDamage(0)
	enemy.TakeDamage(-10)
	if enemy.CurrentHealth() != 100 {
		t.Errorf("non-positive damage changed health to %d, want 100", enemy.CurrentHealth())
	}

	enemy.Destroy()
	enemy.TakeDamage(50)
	if enemy.CurrentHealth() != 0 {
		t.Errorf("damage after destroy changed health to %d, want 0", enemy.CurrentHealth())
	}
}

// Straight path of length 100 at speed 50/s: two seconds reach the base.
func TestEnemy_Move_ReachesBase(t *testing.T) {
	enemy := NewEnemy("e1", newTestTemplate(50), newStraightPath(t, 100))

	enemy.Move(2 * time.Second)

	if enemy.Progress() != 1 {
		t.Errorf("Progress() = %f, want 1", enemy.Progress())
	}
	if !enemy.IsAtBase() {
		t.Error("IsAtBase() = false, want true")
	}
	if !pointsEqual(enemy.Position(), NewPoint(100, 0)) {
		t.Errorf("Position() = %+v, want {100 0}", enemy.Position())
	}
}

func TestEnemy_Move_Guards(t *testing.T) {
	path := newStraightPath(t, 100)

	destroyed := NewEnemy("e1", newTestTemplate(50), path)
	destroyed.Destroy()
	destroyed.Move(time.Second)
	if destroyed.Progress() != 0 {
		t.Errorf("destroyed enemy moved to progress %f, want 0", destroyed.Progress())
	}

	idle := NewEnemy("e2", newTestTemplate(50), path)
	idle.Move(0)
	idle.Move(-time.Second)
	if idle.Progress() != 0 {
		t.Errorf("enemy moved on non-positive delta to progress %f, want 0", idle.Progress())
	}

	arrived := NewEnemy("e3", newTestTemplate(50), path)
	arrived.Move(10 * time.Second)
	posAtBase := arrived.Position()
	arrived.Move(time.Second)
	if !pointsEqual(arrived.Position(), posAtBase) {
		t.Error("enemy at base moved again")
	}
}

func TestEnemy_Move_ProgressMonotonic(t *testing.T) {
	enemy := NewEnemy("e1", newTestTemplate(50), newStraightPath(t, 100))

	prev := enemy.Progress()
	for range 30 {
		enemy.Move(100 * time.Millisecond)
		if enemy.Progress() < prev {
			t.Fatalf("Progress() decreased from %f to %f", prev, enemy.Progress())
		}
		if enemy.Progress() > 1 {
			t.Fatalf("Progress() = %f, want <= 1", enemy.Progress())
		}
		prev = enemy.Progress()
	}
}

func TestEnemy_AttackBase_Pure(t *testing.T) {
	enemy := NewEnemy("e1", newTestTemplate(50), newStraightPath(t, 100))

	if got := enemy.AttackBase(); got != 10 {
		t.Errorf("AttackBase() = %d, want 10", got)
	}
	if enemy.CurrentHealth() != 100 || !enemy.IsAlive() {
		t.Error("AttackBase() mutated enemy state")
	}

	// Still pure after destruction: the caller reads the hit, then removes.
	enemy.Destroy()
	if got := enemy.AttackBase(); got != 10 {
		t.Errorf("AttackBase() after destroy = %d, want 10", got)
	}
}

func TestEnemy_Destroy_Idempotent(t *testing.T) {
	enemy := NewEnemy("e1", newTestTemplate(50), newStraightPath(t, 100))

	enemy.Destroy()
	enemy.Destroy()

	if enemy.IsAlive() {
		t.Error("IsAlive() = true after Destroy()")
	}
	if enemy.CurrentHealth() != 0 {
		t.Errorf("CurrentHealth() = %d after Destroy(), want 0", enemy.CurrentHealth())
	}
}

func TestEnemy_Snapshot(t *testing.T) {
	enemy := NewEnemy("e1", newTestTemplate(50), newStraightPath(t, 100))
	enemy.Move(time.Second)
	enemy.TakeDamage(40)

	snap := enemy.Snapshot()
	if snap.ID != "e1" || snap.Type != EnemyRaider {
		t.Errorf("Snapshot() identity = %q/%q, want e1/raider", snap.ID, snap.Type)
	}
	if snap.Health != 60 || snap.MaxHealth != 100 {
		t.Errorf("Snapshot() health = %d/%d, want 60/100", snap.Health, snap.MaxHealth)
	}
	if !almostEqual(snap.Progress, 0.5) {
		t.Errorf("Snapshot() progress = %f, want 0.5", snap.Progress)
	}
	if !snap.Alive || snap.AtBase {
		t.Errorf("Snapshot() alive/atBase = %v/%v, want true/false", snap.Alive, snap.AtBase)
	}
	if snap.Reward != 10 {
		t.Errorf("Snapshot() reward = %d, want 10", snap.Reward)
	}

	// Snapshot stays frozen after further mutation.
	enemy.TakeDamage(60)
	if snap.Health != 60 || !snap.Alive {
		t.Error("snapshot changed after enemy mutation")
	}
}
