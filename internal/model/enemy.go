package model

import "time"

// Enemy is a single hostile unit walking a MovementPath toward the base.
// State is mutated only by the owning wave on the engine goroutine; everyone
// else reads through Snapshot.
type Enemy struct {
	id       string
	template *EnemyTemplate
	path     *MovementPath

	currentHealth int32
	position      Point
	progress      float64
	alive         bool
}

// NewEnemy creates an alive enemy at the path's spawn point with full health.
func NewEnemy(id string, template *EnemyTemplate, path *MovementPath) *Enemy {
	return &Enemy{
		id:            id,
		template:      template,
		path:          path,
		currentHealth: template.MaxHealth(),
		position:      path.SpawnPoint(),
		alive:         true,
	}
}

// ID returns the enemy id ("wave-{n}-enemy-{k}").
func (e *Enemy) ID() string {
	return e.id
}

// Type returns the archetype identifier.
func (e *Enemy) Type() EnemyType {
	return e.template.Type()
}

// Template returns the shared stats template.
func (e *Enemy) Template() *EnemyTemplate {
	return e.template
}

// CurrentHealth returns current health in [0,maxHealth].
func (e *Enemy) CurrentHealth() int32 {
	return e.currentHealth
}

// MaxHealth returns max health from the template.
func (e *Enemy) MaxHealth() int32 {
	return e.template.MaxHealth()
}

// Position returns the current position on the path.
func (e *Enemy) Position() Point {
	return e.position
}

// Progress returns normalized path progress in [0,1].
func (e *Enemy) Progress() float64 {
	return e.progress
}

// IsAlive reports whether the enemy is still a live threat.
func (e *Enemy) IsAlive() bool {
	return e.alive
}

// IsAtBase reports whether the enemy has reached the terminus.
func (e *Enemy) IsAtBase() bool {
	return e.progress >= 1
}

// TakeDamage reduces health, clamped at 0. Non-positive amounts and hits on
// an already destroyed enemy are ignored. Reaching 0 destroys the enemy.
func (e *Enemy) TakeDamage(amount int32) {
	if amount <= 0 || !e.alive {
		return
	}

	e.currentHealth = max(e.currentHealth-amount, 0)
	if e.currentHealth == 0 {
		e.alive = false
	}
}

// Move advances the enemy along its path. No-op when destroyed, when delta is
// non-positive or when the terminus is already reached. Progress never
// decreases while alive.
func (e *Enemy) Move(delta time.Duration) {
	if !e.alive || delta <= 0 || e.progress >= 1 {
		return
	}
	e.position, e.progress = e.path.NextPosition(e.progress, e.template.MoveSpeed(), delta)
}

// AttackBase returns the damage this enemy deals to the base. Pure: the
// caller decides when to destroy the unit afterwards.
func (e *Enemy) AttackBase() int32 {
	return e.template.AttackPower()
}

// Destroy forces the destroyed state and zeroes health. Idempotent.
func (e *Enemy) Destroy() {
	e.alive = false
	e.currentHealth = 0
}

// Snapshot returns an immutable copy of the enemy's observable state.
func (e *Enemy) Snapshot() EnemySnapshot {
	return EnemySnapshot{
		ID:        e.id,
		Type:      e.template.Type(),
		Health:    e.currentHealth,
		MaxHealth: e.template.MaxHealth(),
		Position:  e.position,
		Progress:  e.progress,
		Alive:     e.alive,
		AtBase:    e.IsAtBase(),
		Reward:    e.template.Reward(),
	}
}
