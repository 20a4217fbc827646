package model

// EnemyType identifies an enemy archetype in the template registry.
type EnemyType string

// Enemy archetypes, weakest tier first.
const (
	EnemyRaider     EnemyType = "raider"
	EnemyStalker    EnemyType = "stalker"
	EnemyBrute      EnemyType = "brute"
	EnemyWarbringer EnemyType = "warbringer"
)

func (t EnemyType) String() string {
	return string(t)
}
