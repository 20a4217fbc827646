package wave

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/udisondev/stronghold/internal/feedback"
	"github.com/udisondev/stronghold/internal/game/combat"
	"github.com/udisondev/stronghold/internal/model"
)

// SchedulerStats is a value snapshot of the scheduler state.
type SchedulerStats struct {
	Active        bool
	WaveNumber    int32
	SpawnedInWave int32
	TotalInWave   int32
	AliveEnemies  int32
	WaveComplete  bool
	NextWaveTime  time.Time
}

// Scheduler owns the wave lifecycle for one session: it starts waves, spawns
// and moves their enemies, purges the dead and resolves base attacks. Time is
// polled: every entry point takes an explicit now and nothing runs between
// calls. The scheduler never touches base health; ProcessBaseAttacks returns
// the damage for the caller to apply.
//
// Methods are single-goroutine. Callers that share a scheduler across
// goroutines must serialize access themselves, as the engine does.
type Scheduler struct {
	cfg      *Configuration
	path     *model.MovementPath
	lookup   TemplateLookup
	rng      *rand.Rand
	maxWaves int32
	sink     feedback.Sink
	log      *slog.Logger

	active           bool
	waveNumber       int32
	current          *Wave
	nextWaveTime     time.Time
	lastUpdate       time.Time
	completeNotified bool
}

// NewScheduler builds a scheduler for one session. maxWaves caps how many
// waves will start; 0 means endless. A nil sink means no feedback, a nil
// logger means slog.Default().
func NewScheduler(
	cfg *Configuration,
	path *model.MovementPath,
	lookup TemplateLookup,
	rng *rand.Rand,
	maxWaves int32,
	sink feedback.Sink,
	log *slog.Logger,
) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("wave configuration is required")
	}
	if path == nil {
		return nil, errors.New("movement path is required")
	}
	if lookup == nil {
		return nil, errors.New("template lookup is required")
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if maxWaves < 0 {
		return nil, fmt.Errorf("max waves must be >= 0, got %d", maxWaves)
	}
	if sink == nil {
		sink = feedback.NewMulti()
	}
	if log == nil {
		log = slog.Default()
	}

	return &Scheduler{
		cfg:      cfg,
		path:     path,
		lookup:   lookup,
		rng:      rng,
		maxWaves: maxWaves,
		sink:     sink,
		log:      log,
	}, nil
}

// Start activates the scheduler. Idempotent. The first wave becomes due
// immediately; movement resumes from the next Update without a jump.
func (s *Scheduler) Start() {
	if s.active {
		return
	}
	s.active = true
	s.lastUpdate = time.Time{}
	s.log.Info("wave scheduler started", "wave", s.waveNumber)
}

// Stop deactivates the scheduler. Idempotent. Spawned enemies stay in place
// until a later Start resumes them.
func (s *Scheduler) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.log.Info("wave scheduler stopped", "wave", s.waveNumber)
}

// IsActive reports whether the scheduler is running.
func (s *Scheduler) IsActive() bool {
	return s.active
}

// WaveNumber returns the current wave number, 0 before the first wave.
func (s *Scheduler) WaveNumber() int32 {
	return s.waveNumber
}

// CanStartNextWave reports whether a new wave may begin at now: the scheduler
// is active, the wave cap is not reached, the current wave (if any) is
// complete and the inter-wave pause has elapsed.
func (s *Scheduler) CanStartNextWave(now time.Time) bool {
	if !s.active {
		return false
	}
	if s.maxWaves > 0 && s.waveNumber >= s.maxWaves {
		return false
	}
	if s.current != nil && !s.current.IsComplete() {
		return false
	}
	if !s.nextWaveTime.IsZero() && now.Before(s.nextWaveTime) {
		return false
	}
	return true
}

// StartNextWave begins the next wave at now, or returns nil while starting is
// not allowed. The following wave becomes due a full wave interval after now,
// so a late start shifts the whole schedule rather than compressing the gap.
func (s *Scheduler) StartNextWave(now time.Time) *Wave {
	if !s.CanStartNextWave(now) {
		return nil
	}

	n := s.waveNumber + 1
	types, err := s.cfg.EnemyTypesForWave(n, s.rng)
	if err != nil {
		s.log.Error("building wave composition", "wave", n, "error", err)
		return nil
	}
	w, err := NewWave(n, types, s.lookup, s.path, s.cfg.SpawnInterval())
	if err != nil {
		s.log.Error("building wave", "wave", n, "error", err)
		return nil
	}

	s.waveNumber = n
	s.current = w
	s.nextWaveTime = now.Add(s.cfg.WaveInterval())
	s.completeNotified = false
	s.log.Info("wave started", "wave", n, "enemies", w.TotalCount())
	s.notify(func(sink feedback.Sink) { sink.WaveStarted(n, w.TotalCount()) })
	return w
}

// Update advances the session by one tick: spawn attempt, movement by the
// time elapsed since the previous Update, purge of dead enemies, then a wave
// transition when one is due. No-op while inactive.
//
// Enemies standing at the base are not purged here; they wait for
// ProcessBaseAttacks.
func (s *Scheduler) Update(now time.Time) {
	if !s.active {
		return
	}
	delta := s.tickDelta(now)

	if s.current != nil {
		if e := s.current.SpawnNext(now); e != nil {
			snap := e.Snapshot()
			s.log.Debug("enemy spawned", "id", snap.ID, "type", snap.Type)
			s.notify(func(sink feedback.Sink) { sink.EnemySpawned(snap) })
		}

		if delta > 0 {
			s.current.MoveEnemies(delta)
			for _, e := range s.current.live() {
				snap := e.Snapshot()
				s.notify(func(sink feedback.Sink) { sink.EnemyMoved(snap) })
			}
		}

		for _, e := range s.current.RemoveDead() {
			snap := e.Snapshot()
			s.log.Debug("enemy removed", "id", snap.ID, "at_base", snap.AtBase)
			s.notify(func(sink feedback.Sink) { sink.EnemyRemoved(snap) })
		}

		s.checkWaveComplete()
	}

	if s.CanStartNextWave(now) {
		s.StartNextWave(now)
	}
}

// ProcessBaseAttacks resolves every enemy standing at the base: their attack
// values are summed, the attackers are destroyed and purged, and the total is
// returned for the caller to apply to its base health. A repeated call finds
// no attackers and returns zero.
func (s *Scheduler) ProcessBaseAttacks() int32 {
	if !s.active || s.current == nil {
		return 0
	}
	attackers := s.current.baseAttackers()
	if len(attackers) == 0 {
		return 0
	}

	total := combat.TotalBaseAttack(attackers)

	// Snapshots are taken before the destroy so breach removals report the
	// enemy as it arrived, alive at the base.
	breached := make(map[*model.Enemy]model.EnemySnapshot, len(attackers))
	for _, e := range attackers {
		breached[e] = e.Snapshot()
		e.Destroy()
	}

	removed := s.current.RemoveDead()
	removed = append(removed, s.current.RemoveAtBase()...)
	for _, e := range removed {
		snap, ok := breached[e]
		if !ok {
			snap = e.Snapshot()
		}
		s.notify(func(sink feedback.Sink) { sink.EnemyRemoved(snap) })
	}

	s.log.Info("base attacked", "attackers", len(attackers), "damage", total)
	s.checkWaveComplete()
	return total
}

// DamageEnemy applies damage to one enemy by id. Returns false for unknown
// ids, dead enemies and non-positive amounts. A kill stays in the wave until
// the next purge.
func (s *Scheduler) DamageEnemy(id string, amount int32) bool {
	if !s.active || s.current == nil {
		return false
	}
	e := s.current.find(id)
	if e == nil {
		return false
	}
	if !combat.Apply(e, amount) {
		return false
	}
	snap := e.Snapshot()
	s.notify(func(sink feedback.Sink) { sink.EnemyDamaged(snap, amount) })
	return true
}

// DamageArea applies damage to every living enemy within radius of center.
// Returns the number of enemies hit.
func (s *Scheduler) DamageArea(center model.Point, radius float64, amount int32) int32 {
	if !s.active || s.current == nil {
		return 0
	}
	hit := combat.ApplyArea(s.current.live(), center, radius, amount)
	for _, e := range hit {
		snap := e.Snapshot()
		s.notify(func(sink feedback.Sink) { sink.EnemyDamaged(snap, amount) })
	}
	return int32(len(hit))
}

// ActiveEnemies returns snapshots of every living enemy in the current wave,
// including enemies standing at the base.
func (s *Scheduler) ActiveEnemies() []model.EnemySnapshot {
	if s.current == nil {
		return nil
	}
	live := s.current.live()
	out := make([]model.EnemySnapshot, 0, len(live))
	for _, e := range live {
		out = append(out, e.Snapshot())
	}
	return out
}

// FindEnemy returns a snapshot of the enemy with the given id, dead or
// alive, as long as it has not been purged. The second result is false for
// unknown ids.
func (s *Scheduler) FindEnemy(id string) (model.EnemySnapshot, bool) {
	if s.current == nil {
		return model.EnemySnapshot{}, false
	}
	e := s.current.find(id)
	if e == nil {
		return model.EnemySnapshot{}, false
	}
	return e.Snapshot(), true
}

// Stats returns a value snapshot of the scheduler state.
func (s *Scheduler) Stats() SchedulerStats {
	stats := SchedulerStats{
		Active:       s.active,
		WaveNumber:   s.waveNumber,
		NextWaveTime: s.nextWaveTime,
	}
	if s.current != nil {
		stats.SpawnedInWave = s.current.SpawnedCount()
		stats.TotalInWave = s.current.TotalCount()
		stats.AliveEnemies = s.current.AliveCount()
		stats.WaveComplete = s.current.IsComplete()
	}
	return stats
}

// ForceCompleteCurrentWave abandons the current wave: the spawn plan is cut
// short and every spawned enemy is destroyed and purged.
func (s *Scheduler) ForceCompleteCurrentWave() {
	if !s.active || s.current == nil {
		return
	}
	s.current.ForceComplete()
	for _, e := range s.current.RemoveDead() {
		snap := e.Snapshot()
		s.notify(func(sink feedback.Sink) { sink.EnemyRemoved(snap) })
	}
	s.log.Info("wave force completed", "wave", s.waveNumber)
	s.checkWaveComplete()
}

// tickDelta returns the time elapsed since the previous Update. The first
// Update after a Start anchors the clock and reports zero.
func (s *Scheduler) tickDelta(now time.Time) time.Duration {
	if s.lastUpdate.IsZero() {
		s.lastUpdate = now
		return 0
	}
	delta := now.Sub(s.lastUpdate)
	s.lastUpdate = now
	if delta < 0 {
		return 0
	}
	return delta
}

func (s *Scheduler) checkWaveComplete() {
	if s.current == nil || s.completeNotified || !s.current.IsComplete() {
		return
	}
	s.completeNotified = true
	n := s.current.Number()
	s.log.Info("wave complete", "wave", n)
	s.notify(func(sink feedback.Sink) { sink.WaveCompleted(n) })
}

// notify delivers one event to the sink. A panicking sink is recovered and
// logged so feedback can never corrupt the wave state.
func (s *Scheduler) notify(fn func(feedback.Sink)) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("feedback sink panicked", "panic", r)
		}
	}()
	fn(s.sink)
}
