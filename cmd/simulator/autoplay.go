package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/udisondev/stronghold/internal/engine"
	"github.com/udisondev/stronghold/internal/game/economy"
	"github.com/udisondev/stronghold/internal/model"
)

// runAutoplay is the built-in bot. It rotates through the hand and the
// build slots, playing the current card as soon as mana covers it; an
// unaffordable card stalls the rotation instead of skipping, so the tower
// mix stays varied.
func runAutoplay(ctx context.Context, eng *engine.Engine, hand []economy.Card, slots []model.Point, interval time.Duration) error {
	if len(slots) == 0 {
		slog.Warn("autoplay enabled but no build slots configured")
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var card, slot int
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c := hand[card%len(hand)]
			if !eng.PlayCard(c.ID, slots[slot%len(slots)]) {
				continue
			}
			card++
			slot++
		}
	}
}
