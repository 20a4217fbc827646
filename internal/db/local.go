package db

import (
	"context"
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/stronghold/internal/model"
)

const (
	resultsObject = "sessions"
	resultsProp   = "results"
)

// LocalResultStore implements ResultStore on top of a per-user data
// directory. Used when Postgres persistence is disabled.
type LocalResultStore struct {
	m *gdata.Manager
}

// Compile-time check.
var _ ResultStore = (*LocalResultStore)(nil)

// NewLocalResultStore opens the local data directory for appName.
func NewLocalResultStore(appName string) (*LocalResultStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("opening local result store: %w", err)
	}
	return &LocalResultStore{m: m}, nil
}

// localResult mirrors model.SessionResult with yaml tags; the model
// stays serialization-free.
type localResult struct {
	ID             int64     `yaml:"id"`
	Seed           int64     `yaml:"seed"`
	Outcome        string    `yaml:"outcome"`
	WavesCompleted int32     `yaml:"waves_completed"`
	Score          int32     `yaml:"score"`
	Kills          int32     `yaml:"kills"`
	Breaches       int32     `yaml:"breaches"`
	BaseHealth     int32     `yaml:"base_health"`
	DurationMs     int64     `yaml:"duration_ms"`
	CreatedAt      time.Time `yaml:"created_at"`
}

type localResults struct {
	Results []localResult `yaml:"results"`
}

// Save appends a result to the local store and returns its id.
func (s *LocalResultStore) Save(ctx context.Context, result model.SessionResult) (int64, error) {
	all, err := s.load()
	if err != nil {
		return 0, err
	}

	var id int64 = 1
	for _, r := range all.Results {
		if r.ID >= id {
			id = r.ID + 1
		}
	}

	all.Results = append(all.Results, localResult{
		ID:             id,
		Seed:           result.Seed,
		Outcome:        result.Outcome,
		WavesCompleted: result.WavesCompleted,
		Score:          result.Score,
		Kills:          result.Kills,
		Breaches:       result.Breaches,
		BaseHealth:     result.BaseHealth,
		DurationMs:     result.DurationMs,
		CreatedAt:      result.CreatedAt,
	})

	data, err := yaml.Marshal(all)
	if err != nil {
		return 0, fmt.Errorf("marshaling results: %w", err)
	}
	if err := s.m.SaveObjectProp(resultsObject, resultsProp, data); err != nil {
		return 0, fmt.Errorf("saving results: %w", err)
	}

	return id, nil
}

// Recent returns the newest results, most recent first.
func (s *LocalResultStore) Recent(ctx context.Context, limit int32) ([]model.SessionResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	n := len(all.Results)
	if int32(n) > limit {
		n = int(limit)
	}

	out := make([]model.SessionResult, 0, n)
	for i := len(all.Results) - 1; i >= 0 && len(out) < n; i-- {
		r := all.Results[i]
		out = append(out, model.SessionResult{
			ID:             r.ID,
			Seed:           r.Seed,
			Outcome:        r.Outcome,
			WavesCompleted: r.WavesCompleted,
			Score:          r.Score,
			Kills:          r.Kills,
			Breaches:       r.Breaches,
			BaseHealth:     r.BaseHealth,
			DurationMs:     r.DurationMs,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out, nil
}

func (s *LocalResultStore) load() (localResults, error) {
	var all localResults

	if !s.m.ObjectPropExists(resultsObject, resultsProp) {
		return all, nil
	}

	data, err := s.m.LoadObjectProp(resultsObject, resultsProp)
	if err != nil {
		return all, fmt.Errorf("loading results: %w", err)
	}
	if err := yaml.Unmarshal(data, &all); err != nil {
		return all, fmt.Errorf("parsing results: %w", err)
	}
	return all, nil
}
