package feedback

import (
	"log/slog"

	"github.com/udisondev/stronghold/internal/model"
)

// SlogSink traces every wave event at debug level.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink builds a tracing sink. A nil logger means slog.Default().
func NewSlogSink(log *slog.Logger) *SlogSink {
	if log == nil {
		log = slog.Default()
	}
	return &SlogSink{log: log}
}

func (s *SlogSink) WaveStarted(wave, enemyCount int32) {
	s.log.Debug("wave started", "wave", wave, "enemies", enemyCount)
}

func (s *SlogSink) WaveCompleted(wave int32) {
	s.log.Debug("wave completed", "wave", wave)
}

func (s *SlogSink) EnemySpawned(e model.EnemySnapshot) {
	s.log.Debug("enemy spawned", "id", e.ID, "type", e.Type, "health", e.Health)
}

func (s *SlogSink) EnemyMoved(e model.EnemySnapshot) {
	s.log.Debug("enemy moved", "id", e.ID, "x", e.Position.X, "y", e.Position.Y, "progress", e.Progress)
}

func (s *SlogSink) EnemyDamaged(e model.EnemySnapshot, amount int32) {
	s.log.Debug("enemy damaged", "id", e.ID, "amount", amount, "health", e.Health)
}

func (s *SlogSink) EnemyRemoved(e model.EnemySnapshot) {
	s.log.Debug("enemy removed", "id", e.ID, "alive", e.Alive, "at_base", e.AtBase)
}
