package data

import (
	"time"

	"github.com/udisondev/stronghold/internal/game/tower"
)

// towerDef описывает один архетип башни для Go-литералов.
type towerDef struct {
	towerType    tower.Type
	name         string
	attackRange  float64
	damage       int32
	cooldown     time.Duration
	splashRadius float64 // 0 = single target
	cost         int32   // mana
}

// towerDefs is the static archetype table, cheapest first.
var towerDefs = []towerDef{
	{
		towerType:   tower.TypeWatchtower,
		name:        "Watchtower",
		attackRange: 120,
		damage:      15,
		cooldown:    800 * time.Millisecond,
		cost:        30,
	},
	{
		towerType:   tower.TypeBallista,
		name:        "Ballista",
		attackRange: 150,
		damage:      40,
		cooldown:    2 * time.Second,
		cost:        50,
	},
	{
		towerType:    tower.TypeFlamespire,
		name:         "Flamespire",
		attackRange:  90,
		damage:       12,
		cooldown:     1200 * time.Millisecond,
		splashRadius: 40,
		cost:         60,
	},
}
