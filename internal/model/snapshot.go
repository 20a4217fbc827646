package model

// EnemySnapshot is an immutable copy of one enemy's observable state.
// Aggregate accessors hand out snapshots instead of live references so
// callers can never mutate owned state.
type EnemySnapshot struct {
	ID        string
	Type      EnemyType
	Health    int32
	MaxHealth int32
	Position  Point
	Progress  float64
	Alive     bool
	AtBase    bool
	Reward    int32
}
