// Package economy implements the mana pool and the card hand that gate
// tower placement.
package economy

import (
	"github.com/udisondev/stronghold/internal/game/tower"
)

// Card binds a tower archetype to a mana cost. Cards are reusable
// blueprints; playing one only spends mana, the card stays in hand.
type Card struct {
	ID    string
	Name  string
	Cost  int32
	Tower tower.Type
}
