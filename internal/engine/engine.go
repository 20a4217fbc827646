// Package engine wires the wave scheduler, towers, economy and session
// into a single tick-driven simulation. All entry points are serialized
// by one mutex; the collaborators themselves stay lock-free.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/udisondev/stronghold/internal/feedback"
	"github.com/udisondev/stronghold/internal/game/economy"
	"github.com/udisondev/stronghold/internal/game/session"
	"github.com/udisondev/stronghold/internal/game/tower"
	"github.com/udisondev/stronghold/internal/model"
	"github.com/udisondev/stronghold/internal/wave"
)

// TowerLookup resolves a tower archetype to its template.
type TowerLookup func(tower.Type) *tower.Template

// Snapshot is a full read-only view of the simulation, built under the
// engine mutex so all fields are from the same instant.
type Snapshot struct {
	State          string
	Elapsed        time.Duration
	Wave           int32
	WaveComplete   bool
	SpawnedInWave  int32
	TotalInWave    int32
	NextWaveTime   time.Time
	BaseHealth     int32
	MaxBaseHealth  int32
	Mana           float64
	ManaCapacity   float64
	Score          int32
	Kills          int32
	Breaches       int32
	WavesCompleted int32
	TotalWaves     int32
	Enemies        []model.EnemySnapshot
	Towers         []tower.Snapshot
}

// Engine orchestrates one simulation run.
type Engine struct {
	mu sync.Mutex

	sess        *session.Session
	pool        *economy.Pool
	towers      *tower.Manager
	sched       *wave.Scheduler
	towerLookup TowerLookup
	log         *slog.Logger

	lastTick time.Time
}

// New assembles an engine. The scheduler is built here so the session's
// wave cap and the bookkeeping sink are always wired in; extra sinks
// receive every wave event after the bookkeeping sink.
func New(
	sess *session.Session,
	pool *economy.Pool,
	towers *tower.Manager,
	waveCfg *wave.Configuration,
	path *model.MovementPath,
	enemyLookup wave.TemplateLookup,
	towerLookup TowerLookup,
	rng *rand.Rand,
	log *slog.Logger,
	sinks ...feedback.Sink,
) (*Engine, error) {
	if sess == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}
	if pool == nil {
		return nil, fmt.Errorf("mana pool cannot be nil")
	}
	if towers == nil {
		return nil, fmt.Errorf("tower manager cannot be nil")
	}
	if towerLookup == nil {
		return nil, fmt.Errorf("tower lookup cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	all := make([]feedback.Sink, 0, len(sinks)+1)
	all = append(all, &sessionSink{sess: sess})
	all = append(all, sinks...)

	sched, err := wave.NewScheduler(waveCfg, path, enemyLookup, rng, sess.TotalWaves(), feedback.NewMulti(all...), log)
	if err != nil {
		return nil, fmt.Errorf("building wave scheduler: %w", err)
	}

	return &Engine{
		sess:        sess,
		pool:        pool,
		towers:      towers,
		sched:       sched,
		towerLookup: towerLookup,
		log:         log,
	}, nil
}

// Start opens the session and activates the scheduler.
func (e *Engine) Start(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastTick = time.Time{}
	e.sess.Start(now)
	e.sched.Start()

	e.log.Info("session started",
		"seed", e.sess.Seed(),
		"base_health", e.sess.BaseHealth(),
		"total_waves", e.sess.TotalWaves())
}

// Tick advances the whole simulation to now. Order per tick: mana regen,
// wave update, tower fire, base attacks, outcome evaluation. Towers fire
// before the base-attack purge so a kill at the gate still counts.
func (e *Engine) Tick(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.sess.IsActive() {
		return
	}

	e.pool.Regen(e.tickDelta(now))
	e.sched.Update(now)
	e.towers.Tick(now, e.sched)

	if dmg := e.sched.ProcessBaseAttacks(); dmg > 0 {
		e.sess.DamageBase(dmg, now)
	}

	e.sess.EvaluateOutcome(now)

	if !e.sess.IsActive() {
		e.sched.Stop()
		e.log.Info("session ended",
			"outcome", e.sess.State(),
			"waves_completed", e.sess.WavesCompleted(),
			"score", e.sess.Score(),
			"kills", e.sess.Kills(),
			"breaches", e.sess.Breaches(),
			"base_health", e.sess.BaseHealth())
	}
}

// PlayCard spends a card's mana cost and places its tower at the given
// position. Returns false when the session is not running, the card is
// unknown or mana does not cover it.
func (e *Engine) PlayCard(id string, position model.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.sess.IsActive() {
		return false
	}

	card, ok := e.pool.FindCard(id)
	if !ok {
		return false
	}

	tpl := e.towerLookup(card.Tower)
	if tpl == nil {
		e.log.Warn("card references unknown tower archetype", "card", id, "tower", card.Tower)
		return false
	}

	if _, ok := e.pool.Play(id); !ok {
		return false
	}

	t, err := e.towers.Place(tpl, position)
	if err != nil {
		e.log.Error("placing tower", "card", id, "error", err)
		return false
	}

	e.log.Info("card played",
		"card", id,
		"tower", t.ID(),
		"mana_left", e.pool.Mana())

	return true
}

// Snapshot returns a consistent view of the simulation at now.
func (e *Engine) Snapshot(now time.Time) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := e.sched.Stats()

	return Snapshot{
		State:          e.sess.State().String(),
		Elapsed:        e.sess.Elapsed(now),
		Wave:           stats.WaveNumber,
		WaveComplete:   stats.WaveComplete,
		SpawnedInWave:  stats.SpawnedInWave,
		TotalInWave:    stats.TotalInWave,
		NextWaveTime:   stats.NextWaveTime,
		BaseHealth:     e.sess.BaseHealth(),
		MaxBaseHealth:  e.sess.MaxBaseHealth(),
		Mana:           e.pool.Mana(),
		ManaCapacity:   e.pool.Capacity(),
		Score:          e.sess.Score(),
		Kills:          e.sess.Kills(),
		Breaches:       e.sess.Breaches(),
		WavesCompleted: e.sess.WavesCompleted(),
		TotalWaves:     e.sess.TotalWaves(),
		Enemies:        e.sched.ActiveEnemies(),
		Towers:         e.towers.Snapshots(),
	}
}

// Result summarizes the session for persistence.
func (e *Engine) Result(now time.Time) model.SessionResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sess.Result(now)
}

// Active reports whether the session is still running.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sess.IsActive()
}

// tickDelta converts the wall-clock gap since the previous tick into the
// economy's elapsed time. The first tick only anchors.
func (e *Engine) tickDelta(now time.Time) time.Duration {
	if e.lastTick.IsZero() {
		e.lastTick = now
		return 0
	}

	delta := now.Sub(e.lastTick)
	e.lastTick = now
	if delta < 0 {
		return 0
	}
	return delta
}
