package wave

import (
	"fmt"
	"testing"
	"time"

	"github.com/udisondev/stronghold/internal/data"
	"github.com/udisondev/stronghold/internal/model"
)

func testLookup(t *testing.T) TemplateLookup {
	t.Helper()
	if err := data.LoadEnemyTemplates(); err != nil {
		t.Fatalf("LoadEnemyTemplates() error = %v", err)
	}
	return data.GetEnemyTemplate
}

func testPath(t *testing.T) *model.MovementPath {
	t.Helper()
	path, err := model.NewMovementPath([]model.Point{
		model.NewPoint(0, 0),
		model.NewPoint(100, 0),
	})
	if err != nil {
		t.Fatalf("NewMovementPath() error = %v", err)
	}
	return path
}

func raiders(n int) []model.EnemyType {
	types := make([]model.EnemyType, n)
	for i := range types {
		types[i] = model.EnemyRaider
	}
	return types
}

func newTestWave(t *testing.T, count int) *Wave {
	t.Helper()
	w, err := NewWave(1, raiders(count), testLookup(t), testPath(t), time.Second)
	if err != nil {
		t.Fatalf("NewWave() error = %v", err)
	}
	return w
}

func TestNewWave_Validation(t *testing.T) {
	lookup := testLookup(t)
	path := testPath(t)

	tests := []struct {
		name          string
		number        int32
		types         []model.EnemyType
		lookup        TemplateLookup
		path          *model.MovementPath
		spawnInterval time.Duration
		wantErr       bool
	}{
		{"valid", 1, raiders(3), lookup, path, time.Second, false},
		{"zero wave number", 0, raiders(3), lookup, path, time.Second, true},
		{"empty plan", 1, nil, lookup, path, time.Second, true},
		{"nil lookup", 1, raiders(3), nil, path, time.Second, true},
		{"nil path", 1, raiders(3), lookup, nil, time.Second, true},
		{"zero spawn interval", 1, raiders(3), lookup, path, 0, true},
		{"unknown type", 1, []model.EnemyType{"ghost"}, lookup, path, time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWave(tt.number, tt.types, tt.lookup, tt.path, tt.spawnInterval)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewWave() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWave_SpawnCadence(t *testing.T) {
	w := newTestWave(t, 3)
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	if !w.CanSpawn(t0) {
		t.Fatal("CanSpawn() = false before first spawn, want true")
	}
	if e := w.SpawnNext(t0); e == nil {
		t.Fatal("SpawnNext() = nil for first spawn")
	}

	if w.CanSpawn(t0.Add(500 * time.Millisecond)) {
		t.Error("CanSpawn() = true before interval elapsed")
	}
	if e := w.SpawnNext(t0.Add(500 * time.Millisecond)); e != nil {
		t.Errorf("SpawnNext() = %v before interval elapsed, want nil", e.ID())
	}

	if e := w.SpawnNext(t0.Add(time.Second)); e == nil {
		t.Fatal("SpawnNext() = nil at exact interval boundary")
	}
	if e := w.SpawnNext(t0.Add(2 * time.Second)); e == nil {
		t.Fatal("SpawnNext() = nil for third spawn")
	}

	if w.CanSpawn(t0.Add(time.Hour)) {
		t.Error("CanSpawn() = true after plan exhausted")
	}
	if e := w.SpawnNext(t0.Add(time.Hour)); e != nil {
		t.Errorf("SpawnNext() = %v after plan exhausted, want nil", e.ID())
	}
	if got := w.SpawnedCount(); got != 3 {
		t.Errorf("SpawnedCount() = %d, want 3", got)
	}
}

func TestWave_SpawnNext_IDs(t *testing.T) {
	w, err := NewWave(7, raiders(3), testLookup(t), testPath(t), time.Second)
	if err != nil {
		t.Fatalf("NewWave() error = %v", err)
	}

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		e := w.SpawnNext(now.Add(time.Duration(i) * time.Second))
		if e == nil {
			t.Fatalf("SpawnNext() = nil for spawn %d", i)
		}
		want := fmt.Sprintf("wave-7-enemy-%d", i)
		if e.ID() != want {
			t.Errorf("spawn %d id = %q, want %q", i, e.ID(), want)
		}
	}
}

func TestWave_SpawnedNeverExceedsTotal(t *testing.T) {
	w := newTestWave(t, 5)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		w.SpawnNext(now.Add(time.Duration(i) * time.Second))
	}
	if got := w.SpawnedCount(); got != w.TotalCount() {
		t.Errorf("SpawnedCount() = %d, want %d", got, w.TotalCount())
	}
	if got := len(w.Snapshots()); got != 5 {
		t.Errorf("len(Snapshots()) = %d, want 5", got)
	}
}

func TestWave_MoveEnemies(t *testing.T) {
	w := newTestWave(t, 2)
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first := w.SpawnNext(t0)
	second := w.SpawnNext(t0.Add(time.Second))
	second.TakeDamage(1000)

	w.MoveEnemies(time.Second)

	// Raiders cover 50 units per second on a 100 unit path.
	if got := first.Progress(); got != 0.5 {
		t.Errorf("live enemy progress = %v, want 0.5", got)
	}
	if got := second.Progress(); got != 0 {
		t.Errorf("dead enemy progress = %v, want 0", got)
	}
}

func TestWave_IsComplete_Lifecycle(t *testing.T) {
	w := newTestWave(t, 2)
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	if w.IsComplete() {
		t.Fatal("IsComplete() = true before any spawn")
	}

	first := w.SpawnNext(t0)
	if w.IsComplete() {
		t.Fatal("IsComplete() = true while plan not exhausted")
	}

	second := w.SpawnNext(t0.Add(time.Second))
	if w.IsComplete() {
		t.Fatal("IsComplete() = true while enemies are mid-path")
	}

	first.TakeDamage(1000)
	if w.IsComplete() {
		t.Fatal("IsComplete() = true while one enemy is still walking")
	}

	second.Move(time.Minute)
	if !second.IsAtBase() {
		t.Fatal("enemy did not reach the base")
	}
	if !w.IsComplete() {
		t.Error("IsComplete() = false with one dead and one at the base")
	}

	// Purging afterwards must not reopen the wave.
	w.RemoveDead()
	w.RemoveAtBase()
	if !w.IsComplete() {
		t.Error("IsComplete() = false after purge, want cached true")
	}
}

func TestWave_RemoveDead(t *testing.T) {
	w := newTestWave(t, 3)
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		w.SpawnNext(t0.Add(time.Duration(i) * time.Second))
	}
	victim := w.find("wave-1-enemy-1")
	victim.TakeDamage(1000)

	removed := w.RemoveDead()
	if len(removed) != 1 || removed[0] != victim {
		t.Fatalf("RemoveDead() removed %d enemies, want the single dead one", len(removed))
	}
	if got := len(w.Snapshots()); got != 2 {
		t.Errorf("len(Snapshots()) after purge = %d, want 2", got)
	}
	if again := w.RemoveDead(); len(again) != 0 {
		t.Errorf("second RemoveDead() removed %d enemies, want 0", len(again))
	}
}

func TestWave_RemoveAtBase(t *testing.T) {
	w := newTestWave(t, 2)
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	w.SpawnNext(t0)
	w.SpawnNext(t0.Add(time.Second))
	w.MoveEnemies(time.Minute)

	if removed := w.RemoveDead(); len(removed) != 0 {
		t.Fatalf("RemoveDead() removed %d enemies, want 0", len(removed))
	}
	removed := w.RemoveAtBase()
	if len(removed) != 2 {
		t.Fatalf("RemoveAtBase() removed %d enemies, want 2", len(removed))
	}
	for _, e := range removed {
		if !e.IsAlive() {
			t.Errorf("breached enemy %s reported dead", e.ID())
		}
	}
	if got := len(w.Snapshots()); got != 0 {
		t.Errorf("len(Snapshots()) after purge = %d, want 0", got)
	}
}

func TestWave_ForceComplete(t *testing.T) {
	w := newTestWave(t, 3)
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	w.SpawnNext(t0)
	w.ForceComplete()

	if !w.IsComplete() {
		t.Error("IsComplete() = false after ForceComplete()")
	}
	if got := w.SpawnedCount(); got != 3 {
		t.Errorf("SpawnedCount() = %d, want the full plan %d", got, 3)
	}
	if got := w.AliveCount(); got != 0 {
		t.Errorf("AliveCount() = %d, want 0", got)
	}
	if removed := w.RemoveDead(); len(removed) != 1 {
		t.Errorf("RemoveDead() removed %d enemies, want 1", len(removed))
	}
	if e := w.SpawnNext(t0.Add(time.Hour)); e != nil {
		t.Errorf("SpawnNext() = %v after ForceComplete(), want nil", e.ID())
	}
}

func TestWave_Snapshots(t *testing.T) {
	w := newTestWave(t, 1)
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	e := w.SpawnNext(t0)
	e.TakeDamage(30)

	snaps := w.Snapshots()
	if len(snaps) != 1 {
		t.Fatalf("len(Snapshots()) = %d, want 1", len(snaps))
	}
	snap := snaps[0]
	if snap.ID != e.ID() || snap.Health != 70 || !snap.Alive || snap.Type != model.EnemyRaider {
		t.Errorf("Snapshots()[0] = %+v does not match enemy state", snap)
	}
}
