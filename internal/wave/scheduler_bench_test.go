package wave

import (
	"testing"
	"time"

	"github.com/udisondev/stronghold/internal/data"
	"github.com/udisondev/stronghold/internal/model"
)

func benchPath(b *testing.B) *model.MovementPath {
	b.Helper()
	path, err := model.NewMovementPath([]model.Point{
		model.NewPoint(0, 0),
		model.NewPoint(400, 0),
		model.NewPoint(400, 300),
		model.NewPoint(0, 300),
		model.NewPoint(0, 600),
		model.NewPoint(400, 600),
	})
	if err != nil {
		b.Fatalf("NewMovementPath() error = %v", err)
	}
	return path
}

func BenchmarkSchedulerUpdate(b *testing.B) {
	if err := data.LoadEnemyTemplates(); err != nil {
		b.Fatalf("LoadEnemyTemplates() error = %v", err)
	}
	cfg, err := NewConfiguration(50, 0, time.Millisecond, time.Hour, DefaultTiers())
	if err != nil {
		b.Fatalf("NewConfiguration() error = %v", err)
	}
	s, err := NewScheduler(cfg, benchPath(b), data.GetEnemyTemplate, testRand(1), 0, nil, discardLogger())
	if err != nil {
		b.Fatalf("NewScheduler() error = %v", err)
	}

	s.Start()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		now = now.Add(2 * time.Millisecond)
		s.Update(now)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		now = now.Add(16 * time.Millisecond)
		s.Update(now)
	}
	// Expected: a few µs per tick for a 50-enemy wave.
}

func BenchmarkEnemyTypesForWave(b *testing.B) {
	cfg, err := NewConfiguration(10, 5, time.Second, 30*time.Second, DefaultTiers())
	if err != nil {
		b.Fatalf("NewConfiguration() error = %v", err)
	}
	rng := testRand(7)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if _, err := cfg.EnemyTypesForWave(12, rng); err != nil {
			b.Fatal(err)
		}
	}
	// Expected: ~2µs/op, dominated by the shuffle.
}
