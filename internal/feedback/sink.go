// Package feedback delivers wave events to user interfaces. Sinks are
// observers only: a panicking sink is recovered and logged and never affects
// the wave state.
package feedback

import (
	"github.com/udisondev/stronghold/internal/model"
)

// Sink receives wave lifecycle events. All payloads are value snapshots, so
// implementations may retain them. Implementations must not call back into
// the scheduler.
type Sink interface {
	WaveStarted(wave, enemyCount int32)
	WaveCompleted(wave int32)
	EnemySpawned(e model.EnemySnapshot)
	EnemyMoved(e model.EnemySnapshot)
	EnemyDamaged(e model.EnemySnapshot, amount int32)
	EnemyRemoved(e model.EnemySnapshot)
}
