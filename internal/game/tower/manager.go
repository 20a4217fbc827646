package tower

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/stronghold/internal/model"
)

// Battlefield is the view of the enemy side a tower needs: who is out
// there and how to hurt them. *wave.Scheduler satisfies it.
type Battlefield interface {
	ActiveEnemies() []model.EnemySnapshot
	DamageEnemy(id string, amount int32) bool
	DamageArea(center model.Point, radius float64, amount int32) int32
}

// Snapshot is a read-only view of a placed tower.
type Snapshot struct {
	ID       string
	Type     Type
	Name     string
	Position model.Point
	Range    float64
}

// Manager owns all placed towers and runs their firing loop each tick.
// It is not safe for concurrent use; the engine serializes access.
type Manager struct {
	towers []*Tower
	placed int32
	log    *slog.Logger
}

// NewManager creates an empty tower roster.
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}

	return &Manager{log: log}
}

// Place adds a tower at the given position and returns it.
func (m *Manager) Place(template *Template, position model.Point) (*Tower, error) {
	if template == nil {
		return nil, fmt.Errorf("tower template cannot be nil")
	}

	id := fmt.Sprintf("tower-%d", m.placed)
	t, err := NewTower(id, template, position)
	if err != nil {
		return nil, fmt.Errorf("placing tower: %w", err)
	}

	m.towers = append(m.towers, t)
	m.placed++

	m.log.Info("tower placed",
		"id", t.ID(),
		"type", template.Type(),
		"x", position.X,
		"y", position.Y)

	return t, nil
}

// Count returns the number of placed towers.
func (m *Manager) Count() int32 {
	return int32(len(m.towers))
}

// Snapshots returns read-only views of all placed towers.
func (m *Manager) Snapshots() []Snapshot {
	snaps := make([]Snapshot, 0, len(m.towers))
	for _, t := range m.towers {
		snaps = append(snaps, Snapshot{
			ID:       t.ID(),
			Type:     t.Template().Type(),
			Name:     t.Template().Name(),
			Position: t.Position(),
			Range:    t.Template().Range(),
		})
	}
	return snaps
}

// Tick fires every ready tower at the nearest enemy in range and returns
// the number of shots taken. Enemies are refetched after each shot so a
// tower never wastes a shot on a target its neighbor already killed.
func (m *Manager) Tick(now time.Time, field Battlefield) int32 {
	var shots int32

	for _, t := range m.towers {
		if !t.CanFire(now) {
			continue
		}

		enemies := field.ActiveEnemies()
		if len(enemies) == 0 {
			break
		}

		target, ok := nearestInRange(t, enemies)
		if !ok {
			continue
		}

		tpl := t.Template()
		var hit bool
		if tpl.SplashRadius() > 0 {
			hit = field.DamageArea(target.Position, tpl.SplashRadius(), tpl.Damage()) > 0
		} else {
			hit = field.DamageEnemy(target.ID, tpl.Damage())
		}
		if !hit {
			continue
		}

		t.MarkFired(now)
		shots++

		m.log.Debug("tower fired",
			"id", t.ID(),
			"type", tpl.Type(),
			"target", target.ID)
	}

	return shots
}

// nearestInRange picks the closest enemy within the tower's range.
func nearestInRange(t *Tower, enemies []model.EnemySnapshot) (model.EnemySnapshot, bool) {
	maxDistSq := t.Template().Range() * t.Template().Range()

	var best model.EnemySnapshot
	bestDistSq := maxDistSq
	found := false

	for _, e := range enemies {
		distSq := t.Position().DistanceSquared(e.Position)
		if distSq > maxDistSq {
			continue
		}
		if !found || distSq < bestDistSq {
			best = e
			bestDistSq = distSq
			found = true
		}
	}

	return best, found
}
