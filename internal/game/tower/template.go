// Package tower implements the defending side: tower archetypes, placed
// towers and the per-tick targeting loop. Towers only act on the wave
// through its exposed damage API.
package tower

import (
	"time"
)

// Type identifies a tower archetype.
type Type string

const (
	TypeWatchtower Type = "watchtower"
	TypeBallista   Type = "ballista"
	TypeFlamespire Type = "flamespire"
)

// String returns the archetype name.
func (t Type) String() string {
	return string(t)
}

// Template holds the immutable stats of a tower archetype.
type Template struct {
	towerType    Type
	name         string
	attackRange  float64
	damage       int32
	cooldown     time.Duration
	splashRadius float64
	cost         int32
}

// NewTemplate builds a tower archetype. A splash radius of 0 means the tower
// hits a single target.
func NewTemplate(towerType Type, name string, attackRange float64, damage int32, cooldown time.Duration, splashRadius float64, cost int32) *Template {
	return &Template{
		towerType:    towerType,
		name:         name,
		attackRange:  attackRange,
		damage:       damage,
		cooldown:     cooldown,
		splashRadius: splashRadius,
		cost:         cost,
	}
}

// Type returns the archetype.
func (t *Template) Type() Type {
	return t.towerType
}

// Name returns the display name.
func (t *Template) Name() string {
	return t.name
}

// Range returns the targeting range.
func (t *Template) Range() float64 {
	return t.attackRange
}

// Damage returns the damage per shot.
func (t *Template) Damage() int32 {
	return t.damage
}

// Cooldown returns the minimum time between shots.
func (t *Template) Cooldown() time.Duration {
	return t.cooldown
}

// SplashRadius returns the area-of-effect radius, 0 for single target.
func (t *Template) SplashRadius() float64 {
	return t.splashRadius
}

// Cost returns the mana cost of placing this tower.
func (t *Template) Cost() int32 {
	return t.cost
}
