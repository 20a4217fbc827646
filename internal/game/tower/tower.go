package tower

import (
	"fmt"
	"time"

	"github.com/udisondev/stronghold/internal/model"
)

// Tower is a placed instance of a template. It tracks only its own firing
// cooldown; target selection lives in the Manager.
type Tower struct {
	id        string
	template  *Template
	position  model.Point
	lastFired time.Time
}

// NewTower places a template at a position.
func NewTower(id string, template *Template, position model.Point) (*Tower, error) {
	if id == "" {
		return nil, fmt.Errorf("tower id cannot be empty")
	}
	if template == nil {
		return nil, fmt.Errorf("tower template cannot be nil")
	}

	return &Tower{
		id:       id,
		template: template,
		position: position,
	}, nil
}

// ID returns the tower identifier.
func (t *Tower) ID() string {
	return t.id
}

// Template returns the archetype stats.
func (t *Tower) Template() *Template {
	return t.template
}

// Position returns where the tower stands.
func (t *Tower) Position() model.Point {
	return t.position
}

// CanFire reports whether the cooldown has elapsed at the given time.
// A tower that has never fired is always ready.
func (t *Tower) CanFire(now time.Time) bool {
	if t.lastFired.IsZero() {
		return true
	}
	return now.Sub(t.lastFired) >= t.template.Cooldown()
}

// MarkFired records a shot at the given time.
func (t *Tower) MarkFired(now time.Time) {
	t.lastFired = now
}
