package engine

import (
	"github.com/udisondev/stronghold/internal/game/session"
	"github.com/udisondev/stronghold/internal/model"
)

// sessionSink turns wave events into session bookkeeping. A removal of a
// dead enemy is a kill worth its reward; a removal of a live enemy at the
// base is a breach. It runs first in the sink chain so counters are
// current before any external observer fires.
type sessionSink struct {
	sess *session.Session
}

func (s *sessionSink) WaveStarted(wave, enemyCount int32) {}

func (s *sessionSink) WaveCompleted(wave int32) {
	s.sess.RecordWaveCompleted()
}

func (s *sessionSink) EnemySpawned(e model.EnemySnapshot) {}

func (s *sessionSink) EnemyMoved(e model.EnemySnapshot) {}

func (s *sessionSink) EnemyDamaged(e model.EnemySnapshot, amount int32) {}

func (s *sessionSink) EnemyRemoved(e model.EnemySnapshot) {
	if !e.Alive {
		s.sess.RecordKill(e.Reward)
		return
	}
	if e.AtBase {
		s.sess.RecordBreach()
	}
}
