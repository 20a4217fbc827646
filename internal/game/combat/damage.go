// Package combat holds the damage helpers shared by the wave scheduler and
// the targeting side.
package combat

import (
	"github.com/udisondev/stronghold/internal/model"
)

// Apply deals amount damage to the enemy. Returns true only when the enemy
// exists, is alive and amount is positive.
func Apply(e *model.Enemy, amount int32) bool {
	if e == nil || amount <= 0 || !e.IsAlive() {
		return false
	}
	e.TakeDamage(amount)
	return true
}

// ApplyArea deals amount damage to every living enemy within radius of
// center, boundary inclusive. Returns the enemies that were hit.
func ApplyArea(enemies []*model.Enemy, center model.Point, radius float64, amount int32) []*model.Enemy {
	if radius < 0 || amount <= 0 {
		return nil
	}
	maxDistSq := radius * radius
	var hit []*model.Enemy
	for _, e := range enemies {
		if e == nil || !e.IsAlive() {
			continue
		}
		if e.Position().DistanceSquared(center) <= maxDistSq {
			e.TakeDamage(amount)
			hit = append(hit, e)
		}
	}
	return hit
}

// TotalBaseAttack sums the base attack values of the given enemies.
func TotalBaseAttack(enemies []*model.Enemy) int32 {
	var total int32
	for _, e := range enemies {
		total += e.AttackBase()
	}
	return total
}
