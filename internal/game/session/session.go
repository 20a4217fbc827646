// Package session tracks one defense run: its clock, score, base health and
// outcome.
package session

import (
	"fmt"
	"time"

	"github.com/udisondev/stronghold/internal/model"
)

// State is the lifecycle state of a session.
type State int32

const (
	StatePreparing State = iota
	StateRunning
	StateVictory
	StateDefeat
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StatePreparing:
		return "preparing"
	case StateRunning:
		return "running"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Session tracks one defense run. The session owns base health; wave code
// never writes it. Time is polled, every mutation that needs a clock takes
// an explicit now.
type Session struct {
	state          State
	seed           int64
	maxBaseHealth  int32
	baseHealth     int32
	totalWaves     int32
	score          int32
	kills          int32
	breaches       int32
	wavesCompleted int32
	startedAt      time.Time
	endedAt        time.Time
}

// NewSession builds a session in the preparing state. totalWaves 0 means an
// endless run that can only end in defeat.
func NewSession(seed int64, baseHealth, totalWaves int32) (*Session, error) {
	if baseHealth < 1 {
		return nil, fmt.Errorf("base health must be >= 1, got %d", baseHealth)
	}
	if totalWaves < 0 {
		return nil, fmt.Errorf("total waves must be >= 0, got %d", totalWaves)
	}
	return &Session{
		seed:          seed,
		maxBaseHealth: baseHealth,
		baseHealth:    baseHealth,
		totalWaves:    totalWaves,
	}, nil
}

// Start moves the session into the running state. Idempotent; a finished
// session cannot be restarted.
func (s *Session) Start(now time.Time) {
	if s.state != StatePreparing {
		return
	}
	s.state = StateRunning
	s.startedAt = now
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// IsActive reports whether the session is running.
func (s *Session) IsActive() bool {
	return s.state == StateRunning
}

// Seed returns the random seed the session was created with.
func (s *Session) Seed() int64 {
	return s.seed
}

// BaseHealth returns the remaining base health.
func (s *Session) BaseHealth() int32 {
	return s.baseHealth
}

// MaxBaseHealth returns the starting base health.
func (s *Session) MaxBaseHealth() int32 {
	return s.maxBaseHealth
}

// TotalWaves returns the configured wave count, 0 for endless runs.
func (s *Session) TotalWaves() int32 {
	return s.totalWaves
}

// Score returns the accumulated score.
func (s *Session) Score() int32 {
	return s.score
}

// Kills returns how many enemies were destroyed.
func (s *Session) Kills() int32 {
	return s.kills
}

// Breaches returns how many enemies reached the base.
func (s *Session) Breaches() int32 {
	return s.breaches
}

// WavesCompleted returns how many waves have finished.
func (s *Session) WavesCompleted() int32 {
	return s.wavesCompleted
}

// DamageBase reduces base health, clamped at zero. Reaching zero ends the
// session in defeat. Ignored unless the session is running.
func (s *Session) DamageBase(amount int32, now time.Time) {
	if s.state != StateRunning || amount <= 0 {
		return
	}
	s.baseHealth = max(s.baseHealth-amount, 0)
	if s.baseHealth == 0 {
		s.state = StateDefeat
		s.endedAt = now
	}
}

// RecordKill credits one kill and its score reward.
func (s *Session) RecordKill(reward int32) {
	if s.state != StateRunning {
		return
	}
	s.kills++
	if reward > 0 {
		s.score += reward
	}
}

// RecordBreach counts an enemy that reached the base.
func (s *Session) RecordBreach() {
	if s.state != StateRunning {
		return
	}
	s.breaches++
}

// RecordWaveCompleted counts one finished wave.
func (s *Session) RecordWaveCompleted() {
	if s.state != StateRunning {
		return
	}
	s.wavesCompleted++
}

// EvaluateOutcome promotes a running session to victory once the configured
// final wave is done and the base still stands. Defeat is decided by
// DamageBase. Returns the state after evaluation.
func (s *Session) EvaluateOutcome(now time.Time) State {
	if s.state != StateRunning {
		return s.state
	}
	if s.totalWaves > 0 && s.wavesCompleted >= s.totalWaves && s.baseHealth > 0 {
		s.state = StateVictory
		s.endedAt = now
	}
	return s.state
}

// Elapsed returns the running time of the session, frozen once it ends.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	end := now
	if !s.endedAt.IsZero() {
		end = s.endedAt
	}
	d := end.Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Result summarizes the session for persistence.
func (s *Session) Result(now time.Time) model.SessionResult {
	return model.SessionResult{
		Seed:           s.seed,
		Outcome:        s.state.String(),
		WavesCompleted: s.wavesCompleted,
		Score:          s.score,
		Kills:          s.kills,
		Breaches:       s.breaches,
		BaseHealth:     s.baseHealth,
		DurationMs:     s.Elapsed(now).Milliseconds(),
		CreatedAt:      now,
	}
}
