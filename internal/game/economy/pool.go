package economy

import (
	"fmt"
	"time"
)

// Pool holds the player's mana and card hand. Mana accrues continuously
// with time and is spent by playing cards. The pool is not safe for
// concurrent use; the engine serializes access.
type Pool struct {
	mana     float64
	capacity float64
	regen    float64
	hand     []Card
}

// NewPool creates a mana pool with the given starting mana, capacity,
// regeneration rate per second and card hand.
func NewPool(initial, capacity, regenPerSecond float64, hand []Card) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("mana capacity must be positive, got %.2f", capacity)
	}
	if initial < 0 {
		return nil, fmt.Errorf("initial mana cannot be negative, got %.2f", initial)
	}
	if regenPerSecond < 0 {
		return nil, fmt.Errorf("mana regen cannot be negative, got %.2f", regenPerSecond)
	}
	if len(hand) == 0 {
		return nil, fmt.Errorf("card hand cannot be empty")
	}

	seen := make(map[string]struct{}, len(hand))
	for i, c := range hand {
		if c.ID == "" {
			return nil, fmt.Errorf("card %d has an empty id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
		if c.Cost < 0 {
			return nil, fmt.Errorf("card %q has negative cost %d", c.ID, c.Cost)
		}
	}

	cards := make([]Card, len(hand))
	copy(cards, hand)

	return &Pool{
		mana:     min(initial, capacity),
		capacity: capacity,
		regen:    regenPerSecond,
		hand:     cards,
	}, nil
}

// Mana returns the current mana.
func (p *Pool) Mana() float64 {
	return p.mana
}

// Capacity returns the mana ceiling.
func (p *Pool) Capacity() float64 {
	return p.capacity
}

// Hand returns a copy of the card hand.
func (p *Pool) Hand() []Card {
	out := make([]Card, len(p.hand))
	copy(out, p.hand)
	return out
}

// FindCard looks a card up by id.
func (p *Pool) FindCard(id string) (Card, bool) {
	for _, c := range p.hand {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Regen accrues mana for the elapsed duration, capped at capacity.
func (p *Pool) Regen(delta time.Duration) {
	if delta <= 0 {
		return
	}
	p.mana = min(p.mana+p.regen*delta.Seconds(), p.capacity)
}

// CanAfford reports whether the card exists and its cost is covered.
func (p *Pool) CanAfford(id string) bool {
	c, ok := p.FindCard(id)
	if !ok {
		return false
	}
	return p.mana >= float64(c.Cost)
}

// Play spends the card's cost and returns the card. It returns false
// when the card is unknown or the mana does not cover it; the pool is
// left untouched in both cases.
func (p *Pool) Play(id string) (Card, bool) {
	c, ok := p.FindCard(id)
	if !ok {
		return Card{}, false
	}
	if p.mana < float64(c.Cost) {
		return Card{}, false
	}

	p.mana -= float64(c.Cost)
	return c, true
}
