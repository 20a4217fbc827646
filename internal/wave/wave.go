package wave

import (
	"errors"
	"fmt"
	"time"

	"github.com/udisondev/stronghold/internal/model"
)

// TemplateLookup resolves an enemy archetype to its stat template. A nil
// result means the archetype is unknown.
type TemplateLookup func(model.EnemyType) *model.EnemyTemplate

// Wave is a single enemy wave: a spawn plan resolved to templates at
// construction plus the enemies spawned so far. All methods are
// single-goroutine; the scheduler owns the wave.
type Wave struct {
	number        int32
	spawnInterval time.Duration
	templates     []*model.EnemyTemplate
	path          *model.MovementPath
	enemies       []*model.Enemy
	spawned       int32
	lastSpawn     time.Time
	complete      bool
}

// NewWave validates the spawn plan and resolves every archetype up front, so
// spawning later cannot fail.
func NewWave(number int32, types []model.EnemyType, lookup TemplateLookup, path *model.MovementPath, spawnInterval time.Duration) (*Wave, error) {
	if number < 1 {
		return nil, fmt.Errorf("wave number must be >= 1, got %d", number)
	}
	if len(types) == 0 {
		return nil, errors.New("wave requires at least one enemy")
	}
	if lookup == nil {
		return nil, errors.New("template lookup is required")
	}
	if path == nil {
		return nil, errors.New("movement path is required")
	}
	if spawnInterval <= 0 {
		return nil, fmt.Errorf("spawn interval must be positive, got %v", spawnInterval)
	}

	templates := make([]*model.EnemyTemplate, len(types))
	for i, enemyType := range types {
		tmpl := lookup(enemyType)
		if tmpl == nil {
			return nil, fmt.Errorf("no template for enemy type %q", enemyType)
		}
		templates[i] = tmpl
	}

	return &Wave{
		number:        number,
		spawnInterval: spawnInterval,
		templates:     templates,
		path:          path,
		enemies:       make([]*model.Enemy, 0, len(types)),
	}, nil
}

// Number returns the 1-based wave number.
func (w *Wave) Number() int32 {
	return w.number
}

// TotalCount returns the planned enemy count of the wave.
func (w *Wave) TotalCount() int32 {
	return int32(len(w.templates))
}

// SpawnedCount returns how many enemies have spawned so far.
func (w *Wave) SpawnedCount() int32 {
	return w.spawned
}

// AliveCount returns how many spawned enemies are still alive.
func (w *Wave) AliveCount() int32 {
	var count int32
	for _, e := range w.enemies {
		if e.IsAlive() {
			count++
		}
	}
	return count
}

// CanSpawn reports whether the next enemy may spawn at now: the plan is not
// exhausted and either nothing has spawned yet or the spawn interval has
// elapsed since the last spawn.
func (w *Wave) CanSpawn(now time.Time) bool {
	if w.spawned >= w.TotalCount() {
		return false
	}
	if w.spawned == 0 {
		return true
	}
	return now.Sub(w.lastSpawn) >= w.spawnInterval
}

// SpawnNext spawns the next planned enemy at the path's spawn point. Returns
// nil while spawning is not due.
func (w *Wave) SpawnNext(now time.Time) *model.Enemy {
	if !w.CanSpawn(now) {
		return nil
	}
	id := fmt.Sprintf("wave-%d-enemy-%d", w.number, w.spawned)
	e := model.NewEnemy(id, w.templates[w.spawned], w.path)
	w.enemies = append(w.enemies, e)
	w.spawned++
	w.lastSpawn = now
	return e
}

// MoveEnemies advances every enemy along the path by the elapsed tick time.
func (w *Wave) MoveEnemies(delta time.Duration) {
	for _, e := range w.enemies {
		e.Move(delta)
	}
}

// IsComplete reports whether the wave is finished: fully spawned and every
// enemy either dead or standing at the base. Once complete, always complete,
// regardless of later purges.
func (w *Wave) IsComplete() bool {
	if w.complete {
		return true
	}
	if w.spawned < w.TotalCount() {
		return false
	}
	for _, e := range w.enemies {
		if e.IsAlive() && !e.IsAtBase() {
			return false
		}
	}
	w.complete = true
	return true
}

// RemoveDead purges dead enemies from the wave and returns them.
func (w *Wave) RemoveDead() []*model.Enemy {
	return w.removeMatching(func(e *model.Enemy) bool {
		return !e.IsAlive()
	})
}

// RemoveAtBase purges enemies that reached the base and returns them.
// RemoveDead must run first: anything still at the base here is treated as a
// breach, not a kill.
func (w *Wave) RemoveAtBase() []*model.Enemy {
	return w.removeMatching(func(e *model.Enemy) bool {
		return e.IsAtBase()
	})
}

// ForceComplete abandons the remaining spawn plan and destroys every spawned
// enemy. The destroyed enemies stay in the wave until the next purge.
func (w *Wave) ForceComplete() {
	w.spawned = w.TotalCount()
	for _, e := range w.enemies {
		e.Destroy()
	}
	w.complete = true
}

// Snapshots returns value copies of every enemy still tracked by the wave,
// including dead ones awaiting purge.
func (w *Wave) Snapshots() []model.EnemySnapshot {
	out := make([]model.EnemySnapshot, 0, len(w.enemies))
	for _, e := range w.enemies {
		out = append(out, e.Snapshot())
	}
	return out
}

func (w *Wave) removeMatching(match func(*model.Enemy) bool) []*model.Enemy {
	var removed []*model.Enemy
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if match(e) {
			removed = append(removed, e)
		} else {
			kept = append(kept, e)
		}
	}
	w.enemies = kept
	return removed
}

func (w *Wave) live() []*model.Enemy {
	var out []*model.Enemy
	for _, e := range w.enemies {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

func (w *Wave) baseAttackers() []*model.Enemy {
	var out []*model.Enemy
	for _, e := range w.enemies {
		if e.IsAlive() && e.IsAtBase() {
			out = append(out, e)
		}
	}
	return out
}

func (w *Wave) find(id string) *model.Enemy {
	for _, e := range w.enemies {
		if e.ID() == id {
			return e
		}
	}
	return nil
}
