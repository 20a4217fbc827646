package feedback

import (
	"log/slog"

	"github.com/udisondev/stronghold/internal/model"
)

// Multi fans events out to several sinks. Deliveries are isolated: a sink
// that panics is logged and skipped while the rest still receive the event.
type Multi struct {
	sinks []Sink
}

// NewMulti builds a fan-out sink. Nil entries are dropped.
func NewMulti(sinks ...Sink) *Multi {
	m := &Multi{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

func (m *Multi) WaveStarted(wave, enemyCount int32) {
	for _, s := range m.sinks {
		deliver(func() { s.WaveStarted(wave, enemyCount) })
	}
}

func (m *Multi) WaveCompleted(wave int32) {
	for _, s := range m.sinks {
		deliver(func() { s.WaveCompleted(wave) })
	}
}

func (m *Multi) EnemySpawned(e model.EnemySnapshot) {
	for _, s := range m.sinks {
		deliver(func() { s.EnemySpawned(e) })
	}
}

func (m *Multi) EnemyMoved(e model.EnemySnapshot) {
	for _, s := range m.sinks {
		deliver(func() { s.EnemyMoved(e) })
	}
}

func (m *Multi) EnemyDamaged(e model.EnemySnapshot, amount int32) {
	for _, s := range m.sinks {
		deliver(func() { s.EnemyDamaged(e, amount) })
	}
}

func (m *Multi) EnemyRemoved(e model.EnemySnapshot) {
	for _, s := range m.sinks {
		deliver(func() { s.EnemyRemoved(e) })
	}
}

func deliver(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("feedback sink panicked", "panic", r)
		}
	}()
	fn()
}
