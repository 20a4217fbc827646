package model

// EnemyTemplate represents type-derived enemy stats from the archetype table
type EnemyTemplate struct {
	enemyType   EnemyType
	name        string
	maxHealth   int32
	attackPower int32
	moveSpeed   float64 // units per second
	reward      int32   // score points
}

// NewEnemyTemplate creates a new enemy template
func NewEnemyTemplate(
	enemyType EnemyType,
	name string,
	maxHealth, attackPower int32,
	moveSpeed float64,
	reward int32,
) *EnemyTemplate {
	return &EnemyTemplate{
		enemyType:   enemyType,
		name:        name,
		maxHealth:   maxHealth,
		attackPower: attackPower,
		moveSpeed:   moveSpeed,
		reward:      reward,
	}
}

// Type returns the archetype identifier
func (t *EnemyTemplate) Type() EnemyType {
	return t.enemyType
}

// Name returns the display name
func (t *EnemyTemplate) Name() string {
	return t.name
}

// MaxHealth returns max health
func (t *EnemyTemplate) MaxHealth() int32 {
	return t.maxHealth
}

// AttackPower returns damage dealt to the base on arrival
func (t *EnemyTemplate) AttackPower() int32 {
	return t.attackPower
}

// MoveSpeed returns movement speed in units per second
func (t *EnemyTemplate) MoveSpeed() float64 {
	return t.moveSpeed
}

// Reward returns score points granted for a kill
func (t *EnemyTemplate) Reward() int32 {
	return t.reward
}
