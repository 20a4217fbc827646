package wave

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/udisondev/stronghold/internal/model"
)

// TypeWeight is one entry of a tier mix: an archetype and its relative
// weight within the tier.
type TypeWeight struct {
	Type   model.EnemyType
	Weight int32
}

// DistributionTier binds a weighted archetype mix to a minimum wave number.
// The tier applies from MinWave until a later tier takes over.
type DistributionTier struct {
	MinWave int32
	Mix     []TypeWeight
}

// Configuration is the pure wave policy: enemy count and type mix as
// functions of the wave number, plus spawn and wave cadence. Immutable after
// construction; it has no lifecycle beyond being read.
type Configuration struct {
	baseCount      int32
	countIncrement int32
	spawnInterval  time.Duration
	waveInterval   time.Duration
	tiers          []DistributionTier
}

// NewConfiguration validates and builds a wave policy. The tier table must
// be non-empty, sorted by MinWave and start at wave 1; weights must be
// positive. The tiers slice is deep-copied.
func NewConfiguration(
	baseCount, countIncrement int32,
	spawnInterval, waveInterval time.Duration,
	tiers []DistributionTier,
) (*Configuration, error) {
	if baseCount < 1 {
		return nil, fmt.Errorf("base enemy count must be >= 1, got %d", baseCount)
	}
	if countIncrement < 0 {
		return nil, fmt.Errorf("enemy count increment must be >= 0, got %d", countIncrement)
	}
	if spawnInterval <= 0 {
		return nil, fmt.Errorf("spawn interval must be positive, got %v", spawnInterval)
	}
	if waveInterval <= 0 {
		return nil, fmt.Errorf("wave interval must be positive, got %v", waveInterval)
	}
	if len(tiers) == 0 {
		return nil, errors.New("at least one distribution tier is required")
	}

	copied := make([]DistributionTier, len(tiers))
	for i, tier := range tiers {
		if i == 0 && tier.MinWave != 1 {
			return nil, fmt.Errorf("first distribution tier must start at wave 1, got %d", tier.MinWave)
		}
		if i > 0 && tier.MinWave <= tiers[i-1].MinWave {
			return nil, fmt.Errorf("distribution tiers must be sorted by min wave, got %d after %d", tier.MinWave, tiers[i-1].MinWave)
		}
		if len(tier.Mix) == 0 {
			return nil, fmt.Errorf("distribution tier for wave %d has an empty mix", tier.MinWave)
		}
		mix := make([]TypeWeight, len(tier.Mix))
		for j, tw := range tier.Mix {
			if tw.Weight < 1 {
				return nil, fmt.Errorf("weight for %q in tier %d must be >= 1, got %d", tw.Type, tier.MinWave, tw.Weight)
			}
			mix[j] = tw
		}
		copied[i] = DistributionTier{MinWave: tier.MinWave, Mix: mix}
	}

	return &Configuration{
		baseCount:      baseCount,
		countIncrement: countIncrement,
		spawnInterval:  spawnInterval,
		waveInterval:   waveInterval,
		tiers:          copied,
	}, nil
}

// DefaultTiers returns the standard four-tier distribution table.
func DefaultTiers() []DistributionTier {
	return []DistributionTier{
		{MinWave: 1, Mix: []TypeWeight{
			{Type: model.EnemyRaider, Weight: 100},
		}},
		{MinWave: 3, Mix: []TypeWeight{
			{Type: model.EnemyRaider, Weight: 70},
			{Type: model.EnemyStalker, Weight: 30},
		}},
		{MinWave: 6, Mix: []TypeWeight{
			{Type: model.EnemyRaider, Weight: 50},
			{Type: model.EnemyStalker, Weight: 30},
			{Type: model.EnemyBrute, Weight: 20},
		}},
		{MinWave: 10, Mix: []TypeWeight{
			{Type: model.EnemyRaider, Weight: 40},
			{Type: model.EnemyStalker, Weight: 25},
			{Type: model.EnemyBrute, Weight: 25},
			{Type: model.EnemyWarbringer, Weight: 10},
		}},
	}
}

// EnemyCountForWave returns baseCount + countIncrement*(n-1).
// Wave numbers start at 1.
func (c *Configuration) EnemyCountForWave(n int32) (int32, error) {
	if n < 1 {
		return 0, fmt.Errorf("wave number must be >= 1, got %d", n)
	}
	return c.baseCount + c.countIncrement*(n-1), nil
}

// TierForWave returns the distribution tier in effect for wave n: the last
// tier whose MinWave does not exceed n.
func (c *Configuration) TierForWave(n int32) DistributionTier {
	tier := c.tiers[0]
	for _, t := range c.tiers {
		if t.MinWave > n {
			break
		}
		tier = t
	}
	return DistributionTier{MinWave: tier.MinWave, Mix: append([]TypeWeight(nil), tier.Mix...)}
}

// EnemyTypesForWave returns the archetype sequence for wave n. The multiset
// is deterministic for a given wave number: per-type counts come from
// proportional rounding, deficits are padded with the tier's first type and
// surplus is trimmed from the end so the total is exact. The order is then
// shuffled with rng, so only the composition is stable.
func (c *Configuration) EnemyTypesForWave(n int32, rng *rand.Rand) ([]model.EnemyType, error) {
	count, err := c.EnemyCountForWave(n)
	if err != nil {
		return nil, err
	}

	tier := c.TierForWave(n)

	var totalWeight int32
	for _, tw := range tier.Mix {
		totalWeight += tw.Weight
	}

	types := make([]model.EnemyType, 0, count)
	for _, tw := range tier.Mix {
		share := int32(math.Round(float64(count) * float64(tw.Weight) / float64(totalWeight)))
		for range share {
			types = append(types, tw.Type)
		}
	}

	for int32(len(types)) < count {
		types = append(types, tier.Mix[0].Type)
	}
	if int32(len(types)) > count {
		types = types[:count]
	}

	rng.Shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})

	return types, nil
}

// BaseCount returns the enemy count of wave 1.
func (c *Configuration) BaseCount() int32 {
	return c.baseCount
}

// CountIncrement returns the per-wave enemy count growth.
func (c *Configuration) CountIncrement() int32 {
	return c.countIncrement
}

// SpawnInterval returns the minimum time between spawns within a wave.
func (c *Configuration) SpawnInterval() time.Duration {
	return c.spawnInterval
}

// WaveInterval returns the pause between wave starts.
func (c *Configuration) WaveInterval() time.Duration {
	return c.waveInterval
}

// Tiers returns a deep copy of the distribution table.
func (c *Configuration) Tiers() []DistributionTier {
	out := make([]DistributionTier, len(c.tiers))
	for i, tier := range c.tiers {
		out[i] = DistributionTier{MinWave: tier.MinWave, Mix: append([]TypeWeight(nil), tier.Mix...)}
	}
	return out
}
