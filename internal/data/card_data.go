package data

import (
	"github.com/udisondev/stronghold/internal/game/economy"
)

// DefaultHand builds one card per tower archetype. Card ids mirror the
// archetype names so configs can reference them directly.
func DefaultHand() []economy.Card {
	hand := make([]economy.Card, 0, len(towerDefs))
	for i := range towerDefs {
		d := &towerDefs[i]
		hand = append(hand, economy.Card{
			ID:    string(d.towerType),
			Name:  d.name,
			Cost:  d.cost,
			Tower: d.towerType,
		})
	}
	return hand
}
