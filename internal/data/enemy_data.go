package data

import "github.com/udisondev/stronghold/internal/model"

// enemyDef описывает один архетип врага для Go-литералов.
type enemyDef struct {
	enemyType   model.EnemyType
	name        string
	maxHealth   int32
	attackPower int32
	moveSpeed   float64 // units per second
	reward      int32   // score points
}

// enemyDefs is the static archetype table, weakest tier first.
var enemyDefs = []enemyDef{
	{
		enemyType:   model.EnemyRaider,
		name:        "Raider",
		maxHealth:   100,
		attackPower: 10,
		moveSpeed:   50,
		reward:      10,
	},
	{
		enemyType:   model.EnemyStalker,
		name:        "Stalker",
		maxHealth:   70,
		attackPower: 8,
		moveSpeed:   90,
		reward:      15,
	},
	{
		enemyType:   model.EnemyBrute,
		name:        "Brute",
		maxHealth:   250,
		attackPower: 20,
		moveSpeed:   30,
		reward:      30,
	},
	{
		enemyType:   model.EnemyWarbringer,
		name:        "Warbringer",
		maxHealth:   800,
		attackPower: 50,
		moveSpeed:   25,
		reward:      100,
	},
}
